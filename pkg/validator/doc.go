// Package validator provides named, parameterized format validators for
// strings and numbers: IBAN, UUID, email, URL, phone, character classes,
// length, numeric kinds and regular expressions.
//
// Every check implements a two-method contract:
//
//	type Validator interface {
//	    Name() string
//	    Validate(value any, c *Context) Result
//	}
//
// Validate never panics and never returns a Go error for bad input. Wrongly
// typed or malformed input yields a failed Result tagged with a Category
// (type, format, range, checksum, unsupported, parameter, collaborator) and a
// constraint name such as "checksum" or "min", both stored in Result.Errors
// alongside validator-specific details.
//
// # Architecture
//
// Each source file groups a family of validators (`financial_rules.go` for
// IBAN, `format_rules.go` for email and URL, `numeric_rules.go`, and so on).
// Validators that take options embed Parameterized, which resolves every
// option in a fixed order: the per-call Context, then the construction-time
// Params, then a built-in default. Validators are immutable; With returns a
// modified copy.
//
// Core building blocks:
//   - Context           – ordered per-call parameter bag
//   - Result            – immutable outcome with Kind, message and details
//   - Registry          – name to Validator map guarded by a RWMutex
//   - Facade            – validation by name plus IsEmail-style shortcuts
//   - Func / SimpleFunc – adapt predicates into validators
//
// # Usage
//
//	f := validator.NewFacade()
//
//	res, err := f.Validate("iban", "DE89 3704 0044 0532 0130 00", nil)
//	if err != nil {
//	    // only validator.ErrValidatorNotFound
//	}
//	if !res.Valid() {
//	    log.Printf("%s: %s", res.Constraint(), res.Message())
//	}
//
//	f.Check("length", name, validator.NewContext().Set("min", 3).Set("max", 32))
//
// Custom validators join the same registry:
//
//	reg := validator.NewRegistry()
//	_ = validator.RegisterBuiltins(reg, validator.DefaultSettings())
//	_ = reg.Register(validator.MustRegex("sku", validator.Params{"pattern": `^[A-Z]{3}-\d{4}$`}))
//	f := validator.NewFacade(validator.WithRegistry(reg))
//
// # Collaborators
//
// Email and URL validators can consult DNS (RecordChecker) and a disposable
// domain list (DisposableSource). Both are injected with Option values; the
// built-ins default to pkg/dnscheck and pkg/disposable. A failed lookup is
// never returned as an error: depending on the dns_failure parameter it
// becomes a failure or a warning (a pass with caveats).
//
// # Configuration
//
// Default() builds a process-wide registry from VALIDATOR_* environment
// variables (see Settings). Tests can call ResetDefault to rebuild it.
//
// # Error Handling
//
// Go errors are reserved for programmer mistakes: *ConfigurationError for
// missing or invalid construction parameters and duplicate registrations, and
// ErrValidatorNotFound from the facade. Result.Error converts a failure into
// a *ValidationError for callers that prefer error plumbing.
package validator
