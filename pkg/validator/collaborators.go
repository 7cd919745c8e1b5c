package validator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/valkit/pkg/logger"
)

// RecordChecker reports whether a DNS record of the given type exists.
// Implementations may block; they should honour ctx.
type RecordChecker interface {
	HasRecord(ctx context.Context, domain, recordType string) (bool, error)
}

// DisposableSource reports whether a domain belongs to a throwaway mail provider.
type DisposableSource interface {
	IsDisposable(domain string) bool
}

// DNS failure policies accepted by the dns_failure parameter.
const (
	DNSFailureFail = "fail"
	DNSFailureWarn = "warn"
)

const defaultDNSTimeout = 3 * time.Second

// Option wires collaborators into validators that use them.
type Option func(*collaborators)

type collaborators struct {
	records    RecordChecker
	disposable DisposableSource
	dnsTimeout time.Duration
	logger     *slog.Logger
}

func WithRecordChecker(rc RecordChecker) Option {
	return func(c *collaborators) { c.records = rc }
}

func WithDisposableSource(src DisposableSource) Option {
	return func(c *collaborators) { c.disposable = src }
}

// WithDNSTimeout sets the default lookup timeout. Non-positive values are ignored.
func WithDNSTimeout(d time.Duration) Option {
	return func(c *collaborators) {
		if d > 0 {
			c.dnsTimeout = d
		}
	}
}

// WithLogger sets the logger used to report collaborator failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *collaborators) {
		if l != nil {
			c.logger = l
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newCollaborators(opts []Option) collaborators {
	c := collaborators{
		dnsTimeout: defaultDNSTimeout,
		logger:     discardLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// resolves runs lookups for each record type in order and stops at the first hit.
// The last lookup error is returned only if no type produced an answer.
func (c collaborators) resolves(domain string, timeout time.Duration, recordTypes ...string) (bool, error) {
	if c.records == nil {
		return false, ErrNoRecordChecker
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var lastErr error
	for _, rt := range recordTypes {
		ok, err := safeHasRecord(ctx, c.records, domain, rt)
		if err != nil {
			lastErr = err
			continue
		}
		if ok {
			return true, nil
		}
	}
	return false, lastErr
}

// dnsCheck applies the lookup and the failure policy. A nil result means the domain resolved.
func (c collaborators) dnsCheck(p Parameterized, ctx *Context, validator, domain string, recordTypes ...string) *Result {
	policy, err := p.ResolveString("dns_failure", ctx, DNSFailureFail)
	if err != nil {
		r := parameterFailure(err)
		return &r
	}
	policy = strings.ToLower(policy)
	if policy != DNSFailureFail && policy != DNSFailureWarn {
		r := Failure(CategoryParameter, "parameter", "dns_failure must be fail or warn", map[string]any{
			"parameter": "dns_failure",
			"value":     policy,
		})
		return &r
	}
	timeout, err := p.ResolveDuration("dns_timeout", ctx, c.dnsTimeout)
	if err != nil {
		r := parameterFailure(err)
		return &r
	}

	found, lookupErr := c.resolves(domain, timeout, recordTypes...)
	if found {
		return nil
	}

	details := map[string]any{"domain": domain, "record_types": recordTypes}
	if lookupErr != nil {
		c.logger.Warn("dns lookup failed",
			logger.Validator(validator),
			logger.Domain(domain),
			logger.Error(lookupErr),
		)
		details["error"] = lookupErr.Error()
		var r Result
		if policy == DNSFailureWarn {
			details[KeyConstraint] = "dns_unavailable"
			details[KeyCategory] = string(CategoryCollaborator)
			r = Warning("DNS lookup unavailable", details)
		} else {
			r = Failure(CategoryCollaborator, "dns_unavailable", "DNS lookup unavailable", details)
		}
		return &r
	}

	r := Failure(CategoryFormat, "dns", "domain has no matching DNS record", details)
	return &r
}

// isDisposable checks the context-supplied list first, then the injected source.
// Parent domains are matched so sub.example.com hits an entry for example.com.
func (c collaborators) isDisposable(p Parameterized, ctx *Context, domain string) (bool, error) {
	domain = strings.ToLower(domain)
	if raw := p.Resolve("disposable_domains", ctx, nil); raw != nil {
		match, ok := disposableMatcher(raw)
		if !ok {
			return false, &paramError{key: "disposable_domains", value: raw}
		}
		hit, err := guardCall(func() bool { return matchDomainOrParent(domain, match) })
		if err != nil || hit {
			return hit, err
		}
	}
	if c.disposable != nil {
		return guardCall(func() bool { return c.disposable.IsDisposable(domain) })
	}
	return false, nil
}

// safeHasRecord turns a panicking RecordChecker into a lookup error.
func safeHasRecord(ctx context.Context, rc RecordChecker, domain, recordType string) (found bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			found, err = false, fmt.Errorf("%w: %v", ErrCollaboratorPanic, r)
		}
	}()
	return rc.HasRecord(ctx, domain, recordType)
}

func guardCall(fn func() bool) (result bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = false, fmt.Errorf("%w: %v", ErrCollaboratorPanic, r)
		}
	}()
	return fn(), nil
}

func disposableMatcher(raw any) (func(string) bool, bool) {
	switch list := raw.(type) {
	case DisposableSource:
		return list.IsDisposable, true
	case map[string]bool:
		return func(d string) bool { return list[d] }, true
	case map[string]struct{}:
		return func(d string) bool { _, ok := list[d]; return ok }, true
	default:
		domains, ok := toStrings(raw)
		if !ok {
			return nil, false
		}
		set := make(map[string]struct{}, len(domains))
		for _, d := range domains {
			set[strings.ToLower(d)] = struct{}{}
		}
		return func(d string) bool { _, ok := set[d]; return ok }, true
	}
}

func matchDomainOrParent(domain string, match func(string) bool) bool {
	for d := domain; d != ""; {
		if match(d) {
			return true
		}
		i := strings.IndexByte(d, '.')
		if i < 0 {
			break
		}
		d = d[i+1:]
	}
	return false
}
