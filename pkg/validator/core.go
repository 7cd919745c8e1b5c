package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Validator is implemented by every format checker.
//
// Validate must not panic on malformed or wrongly typed input; such input is
// reported as a failed Result. Implementations are immutable once built and
// safe for concurrent use.
type Validator interface {
	Name() string
	Validate(value any, c *Context) Result
}

// CheckFunc is the two-argument predicate accepted by Func.
type CheckFunc func(value any, c *Context) bool

// Func adapts a predicate into a Validator. A false return becomes a
// CategoryFormat failure carrying the given message.
func Func(name string, fn CheckFunc, message string) Validator {
	return &funcValidator{name: strings.ToLower(name), fn: fn, message: message}
}

// SimpleFunc adapts a single-argument predicate that ignores the context.
func SimpleFunc(name string, fn func(value any) bool, message string) Validator {
	if fn == nil {
		return Func(name, nil, message)
	}
	return Func(name, func(value any, _ *Context) bool { return fn(value) }, message)
}

type funcValidator struct {
	name    string
	fn      CheckFunc
	message string
}

func (f *funcValidator) Name() string { return f.name }

func (f *funcValidator) Validate(value any, c *Context) Result {
	if f.fn == nil {
		return Failure(CategoryParameter, "callback", "no callback configured", nil)
	}
	ok, panicked := safeCall(f.fn, value, c)
	if panicked != nil {
		return Failure(CategoryFormat, "callback", f.failMessage(), map[string]any{"panic": fmt.Sprint(panicked)})
	}
	if !ok {
		return Failure(CategoryFormat, "callback", f.failMessage(), nil)
	}
	return Success("value is valid", nil)
}

func (f *funcValidator) failMessage() string {
	if f.message != "" {
		return f.message
	}
	return "value is invalid"
}

// User callbacks are outside our control; a panic becomes a failure.
func safeCall(fn CheckFunc, value any, c *Context) (ok bool, recovered any) {
	defer func() {
		if r := recover(); r != nil {
			ok, recovered = false, r
		}
	}()
	return fn(value, c), nil
}

// ValidationError is the error form of a failed Result.
type ValidationError struct {
	Validator  string
	Constraint string
	Category   Category
	Message    string
	Details    map[string]any
}

func (e *ValidationError) Error() string {
	var parts []string
	if e.Validator != "" {
		parts = append(parts, e.Validator)
	}
	if e.Constraint != "" {
		parts = append(parts, e.Constraint)
	}
	msg := e.Message
	if msg == "" {
		msg = "validation failed"
	}
	if len(parts) == 0 {
		return msg
	}
	return fmt.Sprintf("%s: %s", strings.Join(parts, "/"), msg)
}

// ExtractValidationError extracts a *ValidationError from an error chain.
func ExtractValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

// AsValidationError is the two-value form of ExtractValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	ve := ExtractValidationError(err)
	return ve, ve != nil
}

func IsValidationError(err error) bool {
	return ExtractValidationError(err) != nil
}

// asString accepts the string-shaped inputs understood by text validators.
func asString(value any) (string, bool) {
	switch s := value.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	default:
		return "", false
	}
}

func typeFailure(expected string, value any) Result {
	return Failure(CategoryType, "type", "expected "+expected, map[string]any{
		"expected": expected,
		"actual":   fmt.Sprintf("%T", value),
	})
}
