package validator_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valkit/pkg/validator"
)

func TestNewRegex(t *testing.T) {
	t.Parallel()

	t.Run("default name", func(t *testing.T) {
		t.Parallel()
		v, err := validator.NewRegex(validator.Params{"pattern": `^\d+$`})
		require.NoError(t, err)
		assert.Equal(t, "regex", v.Name())
	})

	t.Run("missing pattern", func(t *testing.T) {
		t.Parallel()
		_, err := validator.NewRegex(nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, validator.ErrMissingParameter))
		assert.True(t, validator.IsConfigurationError(err))
	})

	t.Run("invalid pattern", func(t *testing.T) {
		t.Parallel()
		_, err := validator.NewNamedRegex("broken", validator.Params{"pattern": "[a-"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, validator.ErrInvalidParameter))
		assert.Contains(t, err.Error(), "broken")
	})

	t.Run("pattern of wrong type", func(t *testing.T) {
		t.Parallel()
		_, err := validator.NewNamedRegex("num", validator.Params{"pattern": 42})
		assert.ErrorIs(t, err, validator.ErrInvalidParameter)
	})

	t.Run("precompiled pattern", func(t *testing.T) {
		t.Parallel()
		v, err := validator.NewNamedRegex("hex", validator.Params{"pattern": regexp.MustCompile(`^[0-9a-f]+$`)})
		require.NoError(t, err)
		assert.True(t, v.Validate("deadbeef", nil).Valid())
	})

	t.Run("must panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { validator.MustRegex("bad", validator.Params{"pattern": "("}) })
		assert.NotPanics(t, func() { validator.MustRegex("ok", validator.Params{"pattern": "x"}) })
	})
}

func TestRegexValidator(t *testing.T) {
	t.Parallel()
	sku := validator.MustRegex("sku", validator.Params{"pattern": `^[A-Z]{3}-\d{4}$`})

	t.Run("match", func(t *testing.T) {
		t.Parallel()
		assert.True(t, sku.Validate("ABC-1234", nil).Valid())
		assert.True(t, sku.Validate([]byte("XYZ-0000"), nil).Valid())

		r := sku.Validate("abc-1234", nil)
		require.False(t, r.Valid())
		assert.Equal(t, "pattern", r.Constraint())
		assert.Equal(t, validator.CategoryFormat, r.Category())
		pattern, _ := r.Detail("pattern")
		assert.Equal(t, `^[A-Z]{3}-\d{4}$`, pattern)
	})

	t.Run("type", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "type", sku.Validate(1234, nil).Constraint())
	})

	t.Run("negate", func(t *testing.T) {
		t.Parallel()
		forbidden, err := validator.NewNamedRegex("no_digits", validator.Params{"pattern": `\d`, "negate": true})
		require.NoError(t, err)
		assert.True(t, forbidden.Validate("abc", nil).Valid())
		r := forbidden.Validate("abc1", nil)
		assert.False(t, r.Valid())
		assert.Equal(t, "must not match the required pattern", r.Message())
		assert.True(t, forbidden.Validate("abc1", validator.NewContext().Set("negate", false)).Valid())
	})

	t.Run("context pattern overrides", func(t *testing.T) {
		t.Parallel()
		c := validator.NewContext().Set("pattern", `^[a-z]{3}-\d{4}$`)
		assert.True(t, sku.Validate("abc-1234", c).Valid())
		assert.False(t, sku.Validate("ABC-1234", c).Valid())
	})

	t.Run("bad context pattern", func(t *testing.T) {
		t.Parallel()
		r := sku.Validate("ABC-1234", validator.NewContext().Set("pattern", "[a-"))
		assert.False(t, r.Valid())
		assert.Equal(t, validator.CategoryParameter, r.Category())
	})

	t.Run("with", func(t *testing.T) {
		t.Parallel()
		lower, err := sku.With("pattern", `^[a-z]+$`)
		require.NoError(t, err)
		assert.Equal(t, "sku", lower.Name())
		assert.True(t, lower.Validate("abc", nil).Valid())
		assert.False(t, sku.Validate("abc", nil).Valid(), "receiver must be unchanged")

		_, err = sku.With("pattern", "(")
		assert.ErrorIs(t, err, validator.ErrInvalidParameter)

		negated, err := sku.With("negate", true)
		require.NoError(t, err)
		assert.True(t, negated.Validate("nope", nil).Valid())
	})
}
