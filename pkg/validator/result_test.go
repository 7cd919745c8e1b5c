package validator_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valkit/pkg/validator"
)

func TestResult(t *testing.T) {
	t.Parallel()

	t.Run("zero result is a failure", func(t *testing.T) {
		t.Parallel()
		var r validator.Result
		assert.False(t, r.Valid())
		assert.Equal(t, validator.KindFailure, r.Kind())
		assert.NotNil(t, r.Errors())
	})

	t.Run("failure is tagged", func(t *testing.T) {
		t.Parallel()
		r := validator.Failure(validator.CategoryRange, "min", "too short", map[string]any{"min": 3})

		assert.False(t, r.Valid())
		assert.Equal(t, validator.KindFailure, r.Kind())
		assert.Equal(t, "too short", r.Message())
		assert.Equal(t, "min", r.Constraint())
		assert.Equal(t, validator.CategoryRange, r.Category())
		assert.Equal(t, map[string]any{
			"min":                   3,
			validator.KeyConstraint: "min",
			validator.KeyCategory:   "range",
		}, r.Errors())
	})

	t.Run("details are copied in and out", func(t *testing.T) {
		t.Parallel()
		details := map[string]any{"value": "abc"}
		r := validator.Success("ok", details)
		details["value"] = "changed"

		out := r.Errors()
		out["value"] = "mutated"

		v, ok := r.Detail("value")
		require.True(t, ok)
		assert.Equal(t, "abc", v)
	})

	t.Run("warning passes", func(t *testing.T) {
		t.Parallel()
		r := validator.Warning("dns unavailable", nil)
		assert.True(t, r.Valid())
		assert.Equal(t, validator.KindWarning, r.Kind())
		assert.Equal(t, "warning", r.Kind().String())
		assert.NoError(t, r.Error())
	})

	t.Run("error conversion", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Success("ok", nil).Error())

		err := validator.Failure(validator.CategoryChecksum, "checksum", "IBAN checksum failed", nil).Error()
		require.Error(t, err)
		assert.Equal(t, "checksum: IBAN checksum failed", err.Error())

		wrapped := fmt.Errorf("field iban: %w", err)
		ve, ok := validator.AsValidationError(wrapped)
		require.True(t, ok)
		assert.Equal(t, validator.CategoryChecksum, ve.Category)
		assert.True(t, validator.IsValidationError(wrapped))
		assert.False(t, validator.IsValidationError(fmt.Errorf("plain")))
		assert.Nil(t, validator.ExtractValidationError(nil))
	})

	t.Run("kind names", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "success", validator.KindSuccess.String())
		assert.Equal(t, "failure", validator.KindFailure.String())
		assert.Equal(t, "unknown", validator.Kind(42).String())
	})
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  validator.ValidationError
		want string
	}{
		{"full", validator.ValidationError{Validator: "length", Constraint: "min", Message: "too short"}, "length/min: too short"},
		{"constraint only", validator.ValidationError{Constraint: "min", Message: "too short"}, "min: too short"},
		{"bare", validator.ValidationError{}, "validation failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}
