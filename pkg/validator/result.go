package validator

import (
	"maps"
)

// Kind tags the outcome of a single validation call.
// The zero Kind is KindFailure so a zero Result never reads as a pass.
type Kind uint8

const (
	KindFailure Kind = iota
	KindSuccess
	KindWarning
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindFailure:
		return "failure"
	case KindWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Category classifies a failure. It is stored under the "category" key of
// Result.Errors for every failed result.
type Category string

const (
	CategoryType         Category = "type"
	CategoryFormat       Category = "format"
	CategoryRange        Category = "range"
	CategoryChecksum     Category = "checksum"
	CategoryUnsupported  Category = "unsupported"
	CategoryParameter    Category = "parameter"
	CategoryCollaborator Category = "collaborator"
)

// Keys reserved in Result.Errors.
const (
	KeyConstraint = "constraint"
	KeyCategory   = "category"
)

// Result is the immutable outcome of a validation call.
// A warning is a pass with caveats, so Valid reports true for KindWarning.
type Result struct {
	valid   bool
	message string
	errors  map[string]any
	kind    Kind
}

// Success builds a passing result. Details are copied.
func Success(message string, details map[string]any) Result {
	return Result{
		valid:   true,
		message: message,
		errors:  maps.Clone(details),
		kind:    KindSuccess,
	}
}

// Warning builds a passing result that carries caveats in details.
func Warning(message string, details map[string]any) Result {
	return Result{
		valid:   true,
		message: message,
		errors:  maps.Clone(details),
		kind:    KindWarning,
	}
}

// Failure builds a failing result tagged with a category and constraint.
func Failure(category Category, constraint, message string, details map[string]any) Result {
	errs := make(map[string]any, len(details)+2)
	maps.Copy(errs, details)
	errs[KeyConstraint] = constraint
	errs[KeyCategory] = string(category)
	return Result{
		valid:   false,
		message: message,
		errors:  errs,
		kind:    KindFailure,
	}
}

func (r Result) Valid() bool     { return r.valid }
func (r Result) Message() string { return r.message }
func (r Result) Kind() Kind      { return r.kind }

// Errors returns a copy of the diagnostic map. Never nil.
func (r Result) Errors() map[string]any {
	if r.errors == nil {
		return map[string]any{}
	}
	return maps.Clone(r.errors)
}

// Detail looks up a single diagnostic entry without copying the whole map.
func (r Result) Detail(key string) (any, bool) {
	v, ok := r.errors[key]
	return v, ok
}

// Constraint returns the constraint tag, or "" when none is recorded.
func (r Result) Constraint() string {
	c, _ := r.errors[KeyConstraint].(string)
	return c
}

// Category returns the failure category, or "" when none is recorded.
func (r Result) Category() Category {
	c, _ := r.errors[KeyCategory].(string)
	return Category(c)
}

// Error converts a failed result into a *ValidationError. Passing results return nil.
func (r Result) Error() error {
	if r.valid {
		return nil
	}
	return &ValidationError{
		Constraint: r.Constraint(),
		Category:   r.Category(),
		Message:    r.message,
		Details:    r.Errors(),
	}
}
