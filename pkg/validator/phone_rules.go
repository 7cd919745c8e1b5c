package validator

import (
	"regexp"
	"strings"
)

// ITU E.164 bounds on the number of digits.
const (
	phoneMinDigits = 7
	phoneMaxDigits = 15
)

type phonePattern struct {
	region string
	re     *regexp.Regexp
}

// Patterns run against the normalized form: digits with an optional leading plus.
var phonePatterns = []phonePattern{
	{"intl", regexp.MustCompile(`^\+[1-9]\d{6,14}$`)},
	{"us", regexp.MustCompile(`^(\+?1)?[2-9]\d{2}[2-9]\d{6}$`)},
	{"gb", regexp.MustCompile(`^(\+44|0)\d{9,10}$`)},
	{"de", regexp.MustCompile(`^(\+49|0)\d{6,13}$`)},
	{"fr", regexp.MustCompile(`^(\+33|0)[1-9]\d{8}$`)},
	{"in", regexp.MustCompile(`^(\+91|0)?[6-9]\d{9}$`)},
	{"national", regexp.MustCompile(`^0\d{6,14}$`)},
	{"local", regexp.MustCompile(`^[1-9]\d{6,14}$`)},
}

// PhoneRegions lists the pattern names accepted by the region parameter.
func PhoneRegions() []string {
	out := make([]string, len(phonePatterns))
	for i, p := range phonePatterns {
		out[i] = p.region
	}
	return out
}

// PhoneValidator accepts permissive international and regional phone formats.
//
// Parameters:
//   - region: restrict matching to one pattern from PhoneRegions
type PhoneValidator struct {
	Parameterized
}

func NewPhone(params Params) *PhoneValidator {
	return &PhoneValidator{Parameterized: parameterized("phone", params)}
}

// With returns a copy of the validator with key set.
func (v *PhoneValidator) With(key string, value any) *PhoneValidator {
	return &PhoneValidator{Parameterized: v.with(key, value)}
}

func (v *PhoneValidator) Validate(value any, c *Context) Result {
	raw, ok := asString(value)
	if !ok {
		return typeFailure("string", value)
	}
	phone := strings.TrimSpace(raw)
	if phone == "" {
		return Failure(CategoryFormat, "empty", "phone number is empty", nil)
	}
	details := map[string]any{"value": phone}

	normalized, ok := normalizePhone(phone)
	if !ok {
		return Failure(CategoryFormat, "characters", "phone number contains invalid characters", details)
	}
	if strings.Count(normalized, "+") > 1 || strings.LastIndexByte(normalized, '+') > 0 {
		return Failure(CategoryFormat, "plus", "phone number may only start with a single plus", details)
	}

	digits := strings.TrimPrefix(normalized, "+")
	details["digits"] = len(digits)
	if len(digits) < phoneMinDigits || len(digits) > phoneMaxDigits {
		details["min"] = phoneMinDigits
		details["max"] = phoneMaxDigits
		return Failure(CategoryRange, "digits", "phone number must have between 7 and 15 digits", details)
	}

	region, err := v.ResolveString("region", c, "")
	if err != nil {
		return parameterFailure(err)
	}
	region = strings.ToLower(region)
	if region != "" && !isPhoneRegion(region) {
		return Failure(CategoryParameter, "parameter", "unknown phone region", map[string]any{
			"parameter": "region",
			"value":     region,
		})
	}

	matched := ""
	for _, p := range phonePatterns {
		if region != "" && p.region != region {
			continue
		}
		if p.re.MatchString(normalized) {
			matched = p.region
			break
		}
	}
	if matched == "" {
		return Failure(CategoryFormat, "pattern", "phone number does not match any known format", details)
	}

	return Success("valid phone number", map[string]any{
		"phone":  normalized,
		"digits": len(digits),
		"region": matched,
	})
}

// normalizePhone keeps digits and plus signs and drops common separators.
// Any other character makes the input invalid.
func normalizePhone(s string) (string, bool) {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '+':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '.', r == '(', r == ')':
		default:
			return "", false
		}
	}
	return b.String(), true
}

func isPhoneRegion(region string) bool {
	for _, p := range phonePatterns {
		if p.region == region {
			return true
		}
	}
	return false
}
