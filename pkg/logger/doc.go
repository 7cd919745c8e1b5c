// Package logger is a thin functional-options factory around log/slog plus
// helper attribute constructors that keep key names consistent.
//
// # Usage
//
//	import "github.com/dmitrymomot/valkit/pkg/logger"
//
//	log := logger.New(logger.WithDevelopment("signup"))
//	reg := validator.NewRegistry(validator.WithRegistryLogger(log))
//
//	log.Warn("dns lookup failed",
//	    logger.Validator("email"),
//	    logger.Domain("example.com"),
//	    logger.Error(err),
//	)
//
// # Configuration
//
//   • WithDevelopment / WithProduction / WithEnvironment – per-environment defaults.
//   • WithFormat / WithTextFormatter / WithJSONFormatter – output format.
//   • WithLevel / WithHandlerOptions – level and handler tuning.
//   • WithAttr – static attributes.
//
// Discard returns a logger that drops everything; library types use it when
// no logger is supplied.
//
// # Error Handling
//
// Error and Errors produce attributes only for non-nil errors, so
//
//	log.Info("lookup finished", logger.Error(err))
//
// needs no nil check.
package logger
