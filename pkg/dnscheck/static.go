package dnscheck

import (
	"context"
	"slices"
	"strings"
)

// Static is an in-memory Checker keyed by domain, listing the record types
// each domain has. Useful offline and in tests.
type Static map[string][]string

func (s Static) HasRecord(_ context.Context, domain, recordType string) (bool, error) {
	domain = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(domain), "."))
	if domain == "" {
		return false, ErrEmptyDomain
	}
	return slices.ContainsFunc(s[domain], func(rt string) bool {
		return strings.EqualFold(rt, recordType)
	}), nil
}

// Failing is a Checker whose every lookup returns Err.
type Failing struct {
	Err error
}

func (f Failing) HasRecord(context.Context, string, string) (bool, error) {
	if f.Err == nil {
		return false, ErrLookupFailed
	}
	return false, f.Err
}
