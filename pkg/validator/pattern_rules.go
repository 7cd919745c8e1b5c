package validator

import (
	"errors"
	"regexp"
)

// RegexValidator matches strings against a regular expression.
//
// Parameters:
//   - pattern: required; compiled at construction
//   - negate: pass when the pattern does NOT match
//
// A pattern supplied in the call Context is compiled per call.
type RegexValidator struct {
	Parameterized
	re *regexp.Regexp
}

// NewRegex builds a validator named "regex".
func NewRegex(params Params) (*RegexValidator, error) {
	return NewNamedRegex("regex", params)
}

// NewNamedRegex builds a regex validator registered under a custom name,
// so several patterns can live in one registry.
func NewNamedRegex(name string, params Params) (*RegexValidator, error) {
	p, err := NewParameterized(name, params, "pattern")
	if err != nil {
		return nil, err
	}
	re, err := compileParam(name, params["pattern"])
	if err != nil {
		return nil, err
	}
	return &RegexValidator{Parameterized: p, re: re}, nil
}

// MustRegex is like NewNamedRegex but panics on misconfiguration.
func MustRegex(name string, params Params) *RegexValidator {
	v, err := NewNamedRegex(name, params)
	if err != nil {
		panic(err)
	}
	return v
}

// With returns a copy of the validator with key set. Changing the pattern
// recompiles it and may fail.
func (v *RegexValidator) With(key string, value any) (*RegexValidator, error) {
	next := &RegexValidator{Parameterized: v.with(key, value), re: v.re}
	if key == "pattern" {
		re, err := compileParam(v.Name(), value)
		if err != nil {
			return nil, err
		}
		next.re = re
	}
	return next, nil
}

func (v *RegexValidator) Validate(value any, c *Context) Result {
	s, ok := asString(value)
	if !ok {
		return typeFailure("string", value)
	}

	re := v.re
	if raw, ok := c.Lookup("pattern"); ok {
		compiled, err := compileParam(v.Name(), raw)
		if err != nil {
			return Failure(CategoryParameter, "parameter", err.Error(), map[string]any{"parameter": "pattern", "value": raw})
		}
		re = compiled
	}

	negate, err := v.ResolveBool("negate", c, false)
	if err != nil {
		return parameterFailure(err)
	}

	details := map[string]any{"value": s, "pattern": re.String()}
	if re.MatchString(s) == negate {
		if negate {
			return Failure(CategoryFormat, "pattern", "must not match the required pattern", details)
		}
		return Failure(CategoryFormat, "pattern", "must match the required pattern", details)
	}
	return Success("value matches pattern", details)
}

func compileParam(name string, raw any) (*regexp.Regexp, error) {
	switch p := raw.(type) {
	case *regexp.Regexp:
		if p == nil {
			return nil, &ConfigurationError{Validator: name, Parameter: "pattern", Err: ErrMissingParameter}
		}
		return p, nil
	case string:
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, &ConfigurationError{Validator: name, Parameter: "pattern", Err: errors.Join(ErrInvalidParameter, err)}
		}
		return re, nil
	default:
		return nil, &ConfigurationError{Validator: name, Parameter: "pattern", Err: ErrInvalidParameter}
	}
}
