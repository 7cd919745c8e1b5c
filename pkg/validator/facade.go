package validator

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/valkit/pkg/logger"
)

// Facade validates values by registered name.
type Facade struct {
	registry *Registry
	defaults *Context
	logger   *slog.Logger
}

// FacadeOption configures a Facade.
type FacadeOption func(*Facade)

// WithRegistry sets the registry to look names up in. Defaults to Default().
func WithRegistry(r *Registry) FacadeOption {
	return func(f *Facade) {
		if r != nil {
			f.registry = r
		}
	}
}

// WithDefaultContext sets values applied to every call. Per-call context
// entries take precedence.
func WithDefaultContext(c *Context) FacadeOption {
	return func(f *Facade) { f.defaults = c.Clone() }
}

func WithFacadeLogger(l *slog.Logger) FacadeOption {
	return func(f *Facade) {
		if l != nil {
			f.logger = l
		}
	}
}

func NewFacade(opts ...FacadeOption) *Facade {
	f := &Facade{logger: discardLogger()}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	if f.registry == nil {
		f.registry = Default()
	}
	return f
}

// Registry exposes the registry backing the facade.
func (f *Facade) Registry() *Registry { return f.registry }

// Validate runs the validator registered under name. The only error is
// ErrValidatorNotFound; validation outcomes live in the Result.
func (f *Facade) Validate(name string, value any, c *Context) (Result, error) {
	v, ok := f.registry.Get(name)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrValidatorNotFound, name)
	}

	ctx := c
	if f.defaults.Len() > 0 {
		ctx = f.defaults.Merge(c)
	}

	res := v.Validate(value, ctx)
	if res.Kind() != KindSuccess {
		f.logger.Debug("validation did not pass cleanly",
			logger.Validator(name),
			logger.Kind(res.Kind().String()),
			logger.Constraint(res.Constraint()),
		)
	}
	return res, nil
}

// Check is Validate reduced to a bool. Unknown names report false.
func (f *Facade) Check(name string, value any, c *Context) bool {
	res, err := f.Validate(name, value, c)
	return err == nil && res.Valid()
}

func (f *Facade) IsEmail(value any) bool        { return f.Check("email", value, nil) }
func (f *Facade) IsURL(value any) bool          { return f.Check("url", value, nil) }
func (f *Facade) IsPhone(value any) bool        { return f.Check("phone", value, nil) }
func (f *Facade) IsAlpha(value any) bool        { return f.Check("alpha", value, nil) }
func (f *Facade) IsAlphanumeric(value any) bool { return f.Check("alphanumeric", value, nil) }
func (f *Facade) IsNumber(value any) bool       { return f.Check("number", value, nil) }
func (f *Facade) IsInteger(value any) bool      { return f.Check("integer", value, nil) }
func (f *Facade) IsFloat(value any) bool        { return f.Check("float", value, nil) }
func (f *Facade) IsIBAN(value any) bool         { return f.Check("iban", value, nil) }
func (f *Facade) IsUUID(value any) bool         { return f.Check("uuid", value, nil) }

// IsLength checks value against inclusive character bounds.
func (f *Facade) IsLength(value any, minLen, maxLen int) bool {
	return f.Check("length", value, NewContext().Set("min", minLen).Set("max", maxLen))
}
