package dnscheck

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// Record types understood by Resolver.
const (
	TypeA     = "A"
	TypeAAAA  = "AAAA"
	TypeMX    = "MX"
	TypeCNAME = "CNAME"
	TypeTXT   = "TXT"
	TypeNS    = "NS"
)

// Checker reports whether a domain has at least one record of a type.
type Checker interface {
	HasRecord(ctx context.Context, domain, recordType string) (bool, error)
}

// LookupAPI is the subset of *net.Resolver used by Resolver.
type LookupAPI interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupIP(ctx context.Context, network, host string) ([]net.IP, error)
	LookupCNAME(ctx context.Context, host string) (string, error)
	LookupTXT(ctx context.Context, name string) ([]string, error)
	LookupNS(ctx context.Context, name string) ([]*net.NS, error)
}

// Resolver answers HasRecord with live DNS queries.
type Resolver struct {
	api LookupAPI
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithLookupAPI replaces the underlying resolver, e.g. with a custom
// *net.Resolver pointed at a specific nameserver.
func WithLookupAPI(api LookupAPI) ResolverOption {
	return func(r *Resolver) {
		if api != nil {
			r.api = api
		}
	}
}

// NewResolver uses net.DefaultResolver unless WithLookupAPI is given.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{api: net.DefaultResolver}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// HasRecord returns (false, nil) when the name or record does not exist and
// an error only when the lookup itself failed.
func (r *Resolver) HasRecord(ctx context.Context, domain, recordType string) (bool, error) {
	domain = strings.TrimSuffix(strings.TrimSpace(domain), ".")
	if domain == "" {
		return false, ErrEmptyDomain
	}

	var (
		found bool
		err   error
	)
	switch strings.ToUpper(recordType) {
	case TypeMX:
		var mx []*net.MX
		mx, err = r.api.LookupMX(ctx, domain)
		for _, m := range mx {
			// RFC 7505 null MX: the domain explicitly accepts no mail.
			if m != nil && m.Host != "." && m.Host != "" {
				found = true
				break
			}
		}
	case TypeA:
		var ips []net.IP
		ips, err = r.api.LookupIP(ctx, "ip4", domain)
		found = len(ips) > 0
	case TypeAAAA:
		var ips []net.IP
		ips, err = r.api.LookupIP(ctx, "ip6", domain)
		found = len(ips) > 0
	case TypeCNAME:
		var cname string
		cname, err = r.api.LookupCNAME(ctx, domain)
		cname = strings.TrimSuffix(cname, ".")
		found = cname != "" && !strings.EqualFold(cname, domain)
	case TypeTXT:
		var txt []string
		txt, err = r.api.LookupTXT(ctx, domain)
		found = len(txt) > 0
	case TypeNS:
		var ns []*net.NS
		ns, err = r.api.LookupNS(ctx, domain)
		found = len(ns) > 0
	default:
		return false, fmt.Errorf("%w: %q", ErrUnsupportedRecordType, recordType)
	}

	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, errors.Join(ErrLookupFailed, err)
	}
	return found, nil
}

func isNotFound(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.IsNotFound
	}
	return false
}
