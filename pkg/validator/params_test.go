package validator_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valkit/pkg/validator"
)

func TestNewParameterized(t *testing.T) {
	t.Parallel()

	t.Run("missing required key", func(t *testing.T) {
		t.Parallel()
		_, err := validator.NewParameterized("regex", validator.Params{"flags": "i"}, "pattern")
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrMissingParameter)
		assert.True(t, validator.IsConfigurationError(err))
		assert.Contains(t, err.Error(), "pattern")
	})

	t.Run("nil counts as missing", func(t *testing.T) {
		t.Parallel()
		_, err := validator.NewParameterized("regex", validator.Params{"pattern": nil}, "pattern")
		assert.ErrorIs(t, err, validator.ErrMissingParameter)
	})

	t.Run("params are copied", func(t *testing.T) {
		t.Parallel()
		params := validator.Params{"min": 1}
		p, err := validator.NewParameterized("length", params)
		require.NoError(t, err)

		params["min"] = 99
		out := p.Params()
		out["min"] = 42

		v, ok := p.Param("min")
		require.True(t, ok)
		assert.Equal(t, 1, v)
		assert.Equal(t, "length", p.Name())
	})
}

func TestParameterized_Resolve(t *testing.T) {
	t.Parallel()
	p, err := validator.NewParameterized("length", validator.Params{"min": 5})
	require.NoError(t, err)

	t.Run("context over params over default", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 5, p.Resolve("min", nil, 0))
		assert.Equal(t, 10, p.Resolve("min", validator.NewContext().Set("min", 10), 0))
		assert.Equal(t, 7, p.Resolve("max", nil, 7))
	})

	t.Run("nil context value unsets the key", func(t *testing.T) {
		t.Parallel()
		c := validator.NewContext().Set("min", nil)

		assert.Nil(t, p.Resolve("min", c, 3))
		n, err := p.ResolveInt("min", c, 3)
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		_, set, err := p.OptionalInt("min", c)
		require.NoError(t, err)
		assert.False(t, set)
	})
}

func TestParameterized_TypedResolvers(t *testing.T) {
	t.Parallel()
	p, err := validator.NewParameterized("test", nil)
	require.NoError(t, err)
	ctx := func(key string, value any) *validator.Context {
		return validator.NewContext().Set(key, value)
	}

	t.Run("int", func(t *testing.T) {
		t.Parallel()
		for _, raw := range []any{10, int64(10), uint8(10), 10.0, "10", " 10 ", json.Number("10")} {
			n, err := p.ResolveInt("n", ctx("n", raw), 0)
			require.NoError(t, err, "input %#v", raw)
			assert.Equal(t, 10, n)
		}
		for _, raw := range []any{10.5, "ten", true, []int{1}} {
			_, err := p.ResolveInt("n", ctx("n", raw), 0)
			assert.ErrorIs(t, err, validator.ErrInvalidParameter, "input %#v", raw)
		}
	})

	t.Run("int out of range", func(t *testing.T) {
		t.Parallel()
		outOfRange := []any{
			uint64(math.MaxUint64),
			uint(math.MaxUint64),
			uint64(math.MaxInt64) + 1,
			1e19,
			-1e19,
			float64(math.MaxInt64),
			math.Inf(1),
			json.Number("99999999999999999999"),
		}
		for _, raw := range outOfRange {
			_, err := p.ResolveInt("n", ctx("n", raw), 0)
			assert.ErrorIs(t, err, validator.ErrInvalidParameter, "input %#v", raw)
		}

		n, err := p.ResolveInt("n", ctx("n", uint64(math.MaxInt64)), 0)
		require.NoError(t, err)
		assert.Equal(t, math.MaxInt64, n)

		n, err = p.ResolveInt("n", ctx("n", float64(-1<<63)), 0)
		require.NoError(t, err)
		assert.Equal(t, math.MinInt64, n)
	})

	t.Run("float", func(t *testing.T) {
		t.Parallel()
		f, err := p.ResolveFloat("f", ctx("f", "2.5"), 0)
		require.NoError(t, err)
		assert.InDelta(t, 2.5, f, 1e-9)

		f, err = p.ResolveFloat("f", ctx("f", 3), 0)
		require.NoError(t, err)
		assert.InDelta(t, 3.0, f, 1e-9)

		_, err = p.ResolveFloat("f", ctx("f", "x"), 0)
		assert.ErrorIs(t, err, validator.ErrInvalidParameter)
	})

	t.Run("bool", func(t *testing.T) {
		t.Parallel()
		for raw, want := range map[any]bool{true: true, "true": true, "0": false, 1: true, 0: false} {
			b, err := p.ResolveBool("b", ctx("b", raw), !want)
			require.NoError(t, err, "input %#v", raw)
			assert.Equal(t, want, b)
		}
		_, err := p.ResolveBool("b", ctx("b", 2), false)
		assert.ErrorIs(t, err, validator.ErrInvalidParameter)
	})

	t.Run("strings", func(t *testing.T) {
		t.Parallel()
		list, err := p.ResolveStrings("s", ctx("s", "http, https ,,ftp"), nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"http", "https", "ftp"}, list)

		list, err = p.ResolveStrings("s", ctx("s", []any{"a", "b"}), nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, list)

		_, err = p.ResolveStrings("s", ctx("s", []any{"a", 1}), nil)
		assert.ErrorIs(t, err, validator.ErrInvalidParameter)
	})

	t.Run("duration", func(t *testing.T) {
		t.Parallel()
		d, err := p.ResolveDuration("d", ctx("d", "250ms"), time.Second)
		require.NoError(t, err)
		assert.Equal(t, 250*time.Millisecond, d)

		d, err = p.ResolveDuration("d", nil, time.Second)
		require.NoError(t, err)
		assert.Equal(t, time.Second, d)

		_, err = p.ResolveDuration("d", ctx("d", 5), time.Second)
		assert.ErrorIs(t, err, validator.ErrInvalidParameter)
	})

	t.Run("string", func(t *testing.T) {
		t.Parallel()
		s, err := p.ResolveString("s", ctx("s", time.Second), "")
		require.NoError(t, err)
		assert.Equal(t, "1s", s, "fmt.Stringer values are accepted")

		_, err = p.ResolveString("s", ctx("s", 1), "")
		assert.ErrorIs(t, err, validator.ErrInvalidParameter)
	})
}
