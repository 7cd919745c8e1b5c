package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrValidatorNotFound is returned by the facade when a name has no registered validator.
	ErrValidatorNotFound = errors.New("validator not found")

	// ErrDuplicateValidator is returned when registering a name that is already taken.
	ErrDuplicateValidator = errors.New("validator already registered")

	// ErrInvalidValidator is returned when registering a nil validator or one with an empty name.
	ErrInvalidValidator = errors.New("invalid validator")

	// ErrMissingParameter is returned when a mandatory construction parameter is absent.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrInvalidParameter is returned when a construction parameter has an unusable value.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNoRecordChecker is reported when a DNS check is requested without a RecordChecker.
	ErrNoRecordChecker = errors.New("no DNS record checker configured")

	// ErrCollaboratorPanic wraps a panic raised inside a RecordChecker or DisposableSource.
	ErrCollaboratorPanic = errors.New("collaborator panicked")
)

// ConfigurationError reports programmer misuse: a validator built without its
// mandatory parameters, or a registry name collision. It is never produced
// from inside Validate.
type ConfigurationError struct {
	Validator string
	Parameter string
	Err       error
}

func (e *ConfigurationError) Error() string {
	switch {
	case e.Parameter != "":
		return fmt.Sprintf("validator %q: %v: %s", e.Validator, e.Err, e.Parameter)
	case e.Validator != "":
		return fmt.Sprintf("validator %q: %v", e.Validator, e.Err)
	default:
		return e.Err.Error()
	}
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// IsConfigurationError reports whether err carries a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}
