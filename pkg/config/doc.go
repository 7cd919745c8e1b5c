// Package config provides a type-safe, generic and cached way to load
// configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - The default `.env` in the working directory is loaded once, if present.
//   - Extra `.env` files can be requested per call with WithEnvFiles.
//   - Struct fields are populated from `env` tags, optionally under a shared
//     prefix (WithPrefix).
//   - Each configuration type and prefix pair is parsed once per process and
//     served from an in-memory cache afterwards.
//
// # Usage
//
//	type Settings struct {
//	    URLSchemes []string      `env:"URL_SCHEMES" envSeparator:","`
//	    DNSTimeout time.Duration `env:"DNS_TIMEOUT" envDefault:"3s"`
//	}
//
//	var s Settings
//	if err := config.Load(&s, config.WithPrefix("VALIDATOR_")); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// A failed load is not cached, so a later call retries the parse.
//
// # Error Handling
//
// Sentinel errors can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – an explicitly requested .env file could not be read.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
//
// # Testing Helpers
//
// Use `Reset()` to clear the cache between tests.
package config
