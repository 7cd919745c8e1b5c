package validator

import (
	"errors"
	"maps"
	"net"
	"net/mail"
	"net/url"
	"slices"
	"strings"

	"github.com/dmitrymomot/valkit/pkg/logger"
)

const (
	emailMaxLength       = 320
	emailLocalMaxLength  = 64
	emailDomainMaxLength = 255
	urlMaxLength         = 2048
)

// DefaultURLSchemes is the scheme allow-list used when none is configured.
var DefaultURLSchemes = []string{"http", "https", "ftp", "ftps"}

// EmailValidator checks addresses with net/mail plus RFC 5321 length limits.
//
// Parameters:
//   - check_dns: require an MX or A record for the domain
//   - check_disposable: reject throwaway mail providers
//   - disposable_domains: per-call list (map, slice or DisposableSource)
//   - dns_failure: "fail" (default) or "warn" when the lookup itself fails
//   - dns_timeout: lookup timeout
type EmailValidator struct {
	Parameterized
	deps collaborators
}

func NewEmail(params Params, opts ...Option) *EmailValidator {
	return &EmailValidator{
		Parameterized: parameterized("email", params),
		deps:          newCollaborators(opts),
	}
}

// With returns a copy of the validator with key set.
func (v *EmailValidator) With(key string, value any) *EmailValidator {
	return &EmailValidator{Parameterized: v.with(key, value), deps: v.deps}
}

func (v *EmailValidator) Validate(value any, c *Context) Result {
	raw, ok := asString(value)
	if !ok {
		return typeFailure("string", value)
	}
	email := strings.TrimSpace(raw)
	if email == "" {
		return Failure(CategoryFormat, "empty", "email is empty", nil)
	}
	details := map[string]any{"value": email}

	if len(email) > emailMaxLength {
		details["max"] = emailMaxLength
		return Failure(CategoryRange, "length", "email is too long", details)
	}

	// Display names and comments are accepted by net/mail but not here.
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return Failure(CategoryFormat, "format", "must be a valid email address", details)
	}

	at := strings.LastIndexByte(email, '@')
	local, domain := email[:at], email[at+1:]
	if local == "" || len(local) > emailLocalMaxLength {
		details["max"] = emailLocalMaxLength
		return Failure(CategoryRange, "local_length", "email local part has an invalid length", details)
	}
	if len(domain) > emailDomainMaxLength {
		details["max"] = emailDomainMaxLength
		return Failure(CategoryRange, "domain_length", "email domain is too long", details)
	}
	if !validDomainLabels(domain) {
		return Failure(CategoryFormat, "domain", "email domain is invalid", details)
	}

	checkDisposable, err := v.ResolveBool("check_disposable", c, false)
	if err != nil {
		return parameterFailure(err)
	}
	if checkDisposable {
		disposable, err := v.deps.isDisposable(v.Parameterized, c, domain)
		if errors.Is(err, ErrCollaboratorPanic) {
			v.deps.logger.Warn("disposable check failed",
				logger.Validator(v.Name()),
				logger.Domain(domain),
				logger.Error(err),
			)
			details["domain"] = domain
			details["error"] = err.Error()
			return Failure(CategoryCollaborator, "disposable_unavailable", "disposable domain check unavailable", details)
		}
		if err != nil {
			return parameterFailure(err)
		}
		if disposable {
			details["domain"] = domain
			return Failure(CategoryFormat, "disposable", "disposable email domains are not allowed", details)
		}
	}

	checkDNS, err := v.ResolveBool("check_dns", c, false)
	if err != nil {
		return parameterFailure(err)
	}
	out := map[string]any{"email": email, "local": local, "domain": domain}
	if checkDNS {
		if r := v.deps.dnsCheck(v.Parameterized, c, v.Name(), domain, "MX", "A"); r != nil {
			if r.Kind() == KindWarning {
				return Warning(r.Message(), mergeDetails(out, r.Errors()))
			}
			return *r
		}
	}

	return Success("valid email address", out)
}

// URLValidator checks absolute URLs parsed with net/url.
//
// Parameters:
//   - schemes: scheme allow-list (default DefaultURLSchemes)
//   - require_path, require_query: demand a non-empty path or query
//   - check_dns, dns_failure, dns_timeout: as for EmailValidator
type URLValidator struct {
	Parameterized
	deps collaborators
}

func NewURL(params Params, opts ...Option) *URLValidator {
	return &URLValidator{
		Parameterized: parameterized("url", params),
		deps:          newCollaborators(opts),
	}
}

// With returns a copy of the validator with key set.
func (v *URLValidator) With(key string, value any) *URLValidator {
	return &URLValidator{Parameterized: v.with(key, value), deps: v.deps}
}

func (v *URLValidator) Validate(value any, c *Context) Result {
	raw, ok := asString(value)
	if !ok {
		return typeFailure("string", value)
	}
	rawURL := strings.TrimSpace(raw)
	if rawURL == "" {
		return Failure(CategoryFormat, "empty", "URL is empty", nil)
	}
	details := map[string]any{"value": rawURL}

	if len(rawURL) > urlMaxLength {
		details["max"] = urlMaxLength
		return Failure(CategoryRange, "length", "URL is too long", details)
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" || u.Hostname() == "" {
		return Failure(CategoryFormat, "format", "must be a valid URL", details)
	}
	if strings.ContainsAny(rawURL, " \t\r\n") {
		return Failure(CategoryFormat, "format", "URL must not contain whitespace", details)
	}

	schemes, err := v.ResolveStrings("schemes", c, DefaultURLSchemes)
	if err != nil {
		return parameterFailure(err)
	}
	scheme := strings.ToLower(u.Scheme)
	if !slices.ContainsFunc(schemes, func(s string) bool { return strings.EqualFold(s, scheme) }) {
		details["scheme"] = scheme
		details["allowed"] = schemes
		return Failure(CategoryUnsupported, "scheme", "URL scheme is not allowed", details)
	}

	requirePath, err := v.ResolveBool("require_path", c, false)
	if err != nil {
		return parameterFailure(err)
	}
	if requirePath && (u.Path == "" || u.Path == "/") {
		return Failure(CategoryFormat, "path", "URL must contain a path", details)
	}
	requireQuery, err := v.ResolveBool("require_query", c, false)
	if err != nil {
		return parameterFailure(err)
	}
	if requireQuery && u.RawQuery == "" {
		return Failure(CategoryFormat, "query", "URL must contain a query", details)
	}

	host := u.Hostname()
	out := map[string]any{"url": rawURL, "scheme": scheme, "host": host}

	checkDNS, err := v.ResolveBool("check_dns", c, false)
	if err != nil {
		return parameterFailure(err)
	}
	if checkDNS && net.ParseIP(host) == nil {
		if r := v.deps.dnsCheck(v.Parameterized, c, v.Name(), host, "A", "AAAA"); r != nil {
			if r.Kind() == KindWarning {
				return Warning(r.Message(), mergeDetails(out, r.Errors()))
			}
			return *r
		}
	}

	return Success("valid URL", out)
}

// validDomainLabels requires at least two non-empty labels.
func validDomainLabels(domain string) bool {
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for label := range strings.SplitSeq(domain, ".") {
		if label == "" || strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
	}
	return true
}

func mergeDetails(base, extra map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(extra))
	maps.Copy(out, base)
	maps.Copy(out, extra)
	return out
}
