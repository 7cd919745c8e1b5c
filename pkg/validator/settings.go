package validator

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/dmitrymomot/valkit/pkg/config"
)

// SettingsPrefix namespaces the environment variables read by LoadSettings.
const SettingsPrefix = "VALIDATOR_"

// Settings holds process-wide defaults for the built-in validators.
// Every field maps to a VALIDATOR_* environment variable.
type Settings struct {
	URLSchemes     []string      `env:"URL_SCHEMES" envSeparator:"," envDefault:"http,https,ftp,ftps"`
	DNSTimeout     time.Duration `env:"DNS_TIMEOUT" envDefault:"3s"`
	DNSFailure     string        `env:"DNS_FAILURE" envDefault:"fail"`
	PhoneRegion    string        `env:"PHONE_REGION"`
	DisposableFile string        `env:"DISPOSABLE_FILE"`
	DNSCacheSize   int           `env:"DNS_CACHE_SIZE" envDefault:"1024"`
	DNSCacheTTL    time.Duration `env:"DNS_CACHE_TTL" envDefault:"10m"`
}

// DefaultSettings mirrors the envDefault tags.
func DefaultSettings() Settings {
	return Settings{
		URLSchemes:   slices.Clone(DefaultURLSchemes),
		DNSTimeout:   defaultDNSTimeout,
		DNSFailure:   DNSFailureFail,
		DNSCacheSize: 1024,
		DNSCacheTTL:  10 * time.Minute,
	}
}

// LoadSettings reads VALIDATOR_* variables (and a .env file, if present).
func LoadSettings(opts ...config.Option) (Settings, error) {
	var s Settings
	if err := config.Load(&s, append([]config.Option{config.WithPrefix(SettingsPrefix)}, opts...)...); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks enumerated fields and bounds.
func (s Settings) Validate() error {
	var errs []error
	switch strings.ToLower(s.DNSFailure) {
	case DNSFailureFail, DNSFailureWarn, "":
	default:
		errs = append(errs, settingsError("dns_failure"))
	}
	if s.PhoneRegion != "" && !isPhoneRegion(strings.ToLower(s.PhoneRegion)) {
		errs = append(errs, settingsError("phone_region"))
	}
	if s.DNSTimeout < 0 {
		errs = append(errs, settingsError("dns_timeout"))
	}
	if s.DNSCacheSize < 0 {
		errs = append(errs, settingsError("dns_cache_size"))
	}
	if s.DNSCacheTTL < 0 {
		errs = append(errs, settingsError("dns_cache_ttl"))
	}
	return errors.Join(errs...)
}

func settingsError(field string) error {
	return &ConfigurationError{Validator: "settings", Parameter: field, Err: ErrInvalidParameter}
}
