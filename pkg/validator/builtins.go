package validator

import (
	"errors"
	"maps"
	"strings"

	"github.com/dmitrymomot/valkit/pkg/disposable"
	"github.com/dmitrymomot/valkit/pkg/dnscheck"
)

// NewBuiltins constructs every built-in validator configured from s.
//
// Unless opts supply their own, the DNS checker is a live resolver behind an
// in-memory cache sized by s.DNSCacheSize, and the disposable list is the
// embedded default merged with s.DisposableFile.
func NewBuiltins(s Settings, opts ...Option) ([]Validator, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	supplied := newCollaborators(opts)
	base := []Option{WithDNSTimeout(s.DNSTimeout)}
	if supplied.records == nil {
		base = append(base, WithRecordChecker(dnscheck.NewCached(
			dnscheck.NewResolver(),
			dnscheck.NewMemoryStore(s.DNSCacheSize),
			dnscheck.WithTTL(s.DNSCacheTTL),
			dnscheck.WithLogger(supplied.logger),
		)))
	}
	if supplied.disposable == nil {
		list, err := disposableList(s.DisposableFile)
		if err != nil {
			return nil, err
		}
		base = append(base, WithDisposableSource(list))
	}
	all := append(base, opts...)

	dnsParams := Params{}
	if s.DNSFailure != "" {
		dnsParams["dns_failure"] = strings.ToLower(s.DNSFailure)
	}
	urlParams := Params{"schemes": s.URLSchemes}
	if len(s.URLSchemes) == 0 {
		urlParams["schemes"] = DefaultURLSchemes
	}
	maps.Copy(urlParams, dnsParams)
	phoneParams := Params{}
	if s.PhoneRegion != "" {
		phoneParams["region"] = strings.ToLower(s.PhoneRegion)
	}

	return []Validator{
		NewIBAN(nil),
		NewUUID(nil),
		NewEmail(dnsParams, all...),
		NewURL(urlParams, all...),
		NewPhone(phoneParams),
		NewAlpha(nil),
		NewAlphanumeric(nil),
		NewLength(nil),
		NewNumber(nil),
		NewInteger(nil),
		NewFloat(nil),
	}, nil
}

// RegisterBuiltins adds every built-in validator to r. Names already taken
// are reported in the joined error; the rest are still registered.
func RegisterBuiltins(r *Registry, s Settings, opts ...Option) error {
	validators, err := NewBuiltins(s, opts...)
	if err != nil {
		return err
	}
	var errs []error
	for _, v := range validators {
		if err := r.Register(v); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func disposableList(path string) (*disposable.List, error) {
	if path == "" {
		return disposable.Default(), nil
	}
	custom, err := disposable.LoadFile(path)
	if err != nil {
		return nil, &ConfigurationError{Validator: "settings", Parameter: "disposable_file", Err: errors.Join(ErrInvalidParameter, err)}
	}
	return custom.Merge(disposable.Default()), nil
}
