package validator_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valkit/pkg/validator"
)

func TestNumberValidator(t *testing.T) {
	t.Parallel()
	v := validator.NewNumber(nil)
	assert.Equal(t, "number", v.Name())

	tests := []struct {
		name       string
		input      any
		constraint string
	}{
		{"int", 42, ""},
		{"negative int", -7, ""},
		{"uint8", uint8(200), ""},
		{"float", 3.14, ""},
		{"numeric string", "42", ""},
		{"signed string", "+42.5", ""},
		{"exponent string", "1e3", ""},
		{"leading dot", ".5", ""},
		{"json number", json.Number("2.5"), ""},
		{"padded string", "  12  ", ""},
		{"NaN", math.NaN(), "finite"},
		{"infinity", math.Inf(1), "finite"},
		{"word", "abc", "format"},
		{"hex", "0x1F", "format"},
		{"empty", "", "empty"},
		{"blank", "   ", "empty"},
		{"too large", "1e400", "overflow"},
		{"bool", true, "type"},
		{"nil", nil, "type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := v.Validate(tt.input, nil)
			assert.Equal(t, tt.constraint == "", r.Valid())
			assert.Equal(t, tt.constraint, r.Constraint())
		})
	}

	t.Run("strict rejects strings", func(t *testing.T) {
		t.Parallel()
		strict := validator.NewContext().Set("strict", true)
		assert.True(t, v.Validate(42, strict).Valid())
		assert.True(t, v.Validate(4.2, strict).Valid())
		assert.Equal(t, validator.CategoryType, v.Validate("42", strict).Category())
	})

	t.Run("range", func(t *testing.T) {
		t.Parallel()
		bounded := validator.NewNumber(validator.Params{"min": 0, "max": 10})
		assert.True(t, bounded.Validate(0, nil).Valid())
		assert.True(t, bounded.Validate("10", nil).Valid())
		assert.Equal(t, "min", bounded.Validate(-0.5, nil).Constraint())
		assert.Equal(t, "max", bounded.Validate(10.01, nil).Constraint())
		assert.Equal(t, validator.CategoryRange, bounded.Validate(11, nil).Category())
		assert.True(t, bounded.Validate(50, validator.NewContext().Set("max", 100)).Valid())
		assert.Equal(t, validator.CategoryParameter, bounded.Validate(5, validator.NewContext().Set("min", "low")).Category())
	})
}

func TestIntegerValidator(t *testing.T) {
	t.Parallel()
	v := validator.NewInteger(nil)
	assert.Equal(t, "integer", v.Name())

	tests := []struct {
		name       string
		input      any
		constraint string
	}{
		{"int", 42, ""},
		{"int64", int64(-9000), ""},
		{"whole float", 42.0, ""},
		{"string", "42", ""},
		{"signed string", "-17", ""},
		{"decimal string with zero fraction", "42.0", ""},
		{"exponent string", "4.2e1", ""},
		{"fraction", 42.5, "integer"},
		{"fraction string", "42.5", "integer"},
		{"overflow", "99999999999999999999", "overflow"},
		{"word", "forty-two", "format"},
		{"empty", "", "empty"},
		{"slice", []int{1}, "type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := v.Validate(tt.input, nil)
			assert.Equal(t, tt.constraint == "", r.Valid())
			assert.Equal(t, tt.constraint, r.Constraint())
		})
	}

	t.Run("value detail is int64", func(t *testing.T) {
		t.Parallel()
		for _, input := range []any{42, "42", 42.0, "4.2e1"} {
			r := v.Validate(input, nil)
			require.True(t, r.Valid())
			got, _ := r.Detail("value")
			assert.Equal(t, int64(42), got, "input %v", input)
		}
	})

	t.Run("strict", func(t *testing.T) {
		t.Parallel()
		strict := v.With("strict", true)
		assert.True(t, strict.Validate(42, nil).Valid())
		assert.Equal(t, "type", strict.Validate(42.0, nil).Constraint())
		assert.Equal(t, "type", strict.Validate("42", nil).Constraint())
	})

	t.Run("range", func(t *testing.T) {
		t.Parallel()
		bounded := validator.NewInteger(validator.Params{"min": 1, "max": 5})
		assert.True(t, bounded.Validate(1, nil).Valid())
		assert.True(t, bounded.Validate("5", nil).Valid())
		assert.Equal(t, "min", bounded.Validate(0, nil).Constraint())
		assert.Equal(t, "max", bounded.Validate(6, nil).Constraint())
	})
}

func TestFloatValidator(t *testing.T) {
	t.Parallel()
	v := validator.NewFloat(nil)
	assert.Equal(t, "float", v.Name())

	assert.True(t, v.Validate(3.14, nil).Valid())
	assert.True(t, v.Validate(float32(2.5), nil).Valid())
	assert.True(t, v.Validate("3.14", nil).Valid())
	assert.True(t, v.Validate(42, nil).Valid(), "integers are valid floats unless strict")
	assert.Equal(t, "format", v.Validate("3,14", nil).Constraint())

	t.Run("strict", func(t *testing.T) {
		t.Parallel()
		strict := validator.NewContext().Set("strict", true)
		assert.True(t, v.Validate(42.0, strict).Valid())
		assert.Equal(t, "type", v.Validate(42, strict).Constraint())
		assert.Equal(t, "type", v.Validate("4.2", strict).Constraint())
	})

	t.Run("precision", func(t *testing.T) {
		t.Parallel()
		money := validator.NewFloat(validator.Params{"precision": 2})
		tests := []struct {
			input any
			valid bool
		}{
			{"3.14", true},
			{"3.1", true},
			{"3", true},
			{"3.1400", true},
			{3.14, true},
			{"3.141", false},
			{0.125, false},
		}
		for _, tt := range tests {
			r := money.Validate(tt.input, nil)
			assert.Equal(t, tt.valid, r.Valid(), "input %v", tt.input)
		}

		r := money.Validate("3.141", nil)
		assert.Equal(t, "precision", r.Constraint())
		decimals, _ := r.Detail("decimals")
		assert.Equal(t, 3, decimals)
	})
}
