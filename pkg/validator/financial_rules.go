package validator

import (
	"slices"
	"strings"
	"unicode"
)

// NO is the shortest registered IBAN. The country table bounds the maximum.
const ibanMinLength = 15

// IBANValidator checks International Bank Account Numbers (ISO 13616) using
// the per-country length table and the ISO 7064 MOD-97 checksum.
//
// Parameters:
//   - countries: optional allow-list of country codes
type IBANValidator struct {
	Parameterized
}

func NewIBAN(params Params) *IBANValidator {
	return &IBANValidator{Parameterized: parameterized("iban", params)}
}

// With returns a copy of the validator with key set.
func (v *IBANValidator) With(key string, value any) *IBANValidator {
	return &IBANValidator{Parameterized: v.with(key, value)}
}

func (v *IBANValidator) Validate(value any, c *Context) Result {
	raw, ok := asString(value)
	if !ok {
		return typeFailure("string", value)
	}

	iban := normalizeIBAN(raw)
	if iban == "" {
		return Failure(CategoryFormat, "empty", "IBAN is empty", nil)
	}
	details := map[string]any{"value": iban}

	if !isUpperAlnum(iban) {
		return Failure(CategoryFormat, "invalid_characters", "IBAN contains invalid characters", details)
	}
	if len(iban) < ibanMinLength {
		return Failure(CategoryRange, "too_short", "IBAN is too short", details)
	}

	country, check := iban[:2], iban[2:4]
	if !isUpperAlpha(country) {
		return Failure(CategoryFormat, "country_code", "IBAN has an invalid country code", details)
	}
	if !isDigits(check) {
		return Failure(CategoryFormat, "check_digits", "IBAN has invalid check digits", details)
	}

	expected, known := ibanLengths[country]
	if !known {
		details["country"] = country
		return Failure(CategoryUnsupported, "unsupported_country", "IBAN country is not supported", details)
	}

	allowed, err := v.ResolveStrings("countries", c, nil)
	if err != nil {
		return parameterFailure(err)
	}
	if len(allowed) > 0 && !slices.ContainsFunc(allowed, func(s string) bool { return strings.EqualFold(s, country) }) {
		details["country"] = country
		details["allowed"] = allowed
		return Failure(CategoryUnsupported, "country_not_allowed", "IBAN country is not allowed", details)
	}

	if len(iban) != expected {
		details["country"] = country
		details["expected_length"] = expected
		details["length"] = len(iban)
		return Failure(CategoryRange, "country_length", "IBAN length does not match its country", details)
	}

	if ibanMod97(iban) != 1 {
		return Failure(CategoryChecksum, "checksum", "IBAN checksum failed", details)
	}

	return Success("valid IBAN", map[string]any{
		"iban":         iban,
		"country":      country,
		"check_digits": check,
		"length":       len(iban),
		"bban":         iban[4:],
	})
}

// FormatIBAN renders an IBAN in print format: groups of four separated by spaces.
func FormatIBAN(iban string) string {
	iban = normalizeIBAN(iban)
	var b strings.Builder
	b.Grow(len(iban) + len(iban)/4)
	for i, r := range iban {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// normalizeIBAN strips whitespace and uppercases ASCII letters only. Full
// Unicode case mapping would turn runes such as 'ſ' into 'S'.
func normalizeIBAN(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return -1
		case r >= 'a' && r <= 'z':
			return r - ('a' - 'A')
		default:
			return r
		}
	}, s)
}

// ibanMod97 moves the first four characters to the end, expands letters to
// A=10..Z=35 and reduces digit by digit so no big integer is needed.
// The input must be uppercase alphanumeric.
func ibanMod97(iban string) int {
	rearranged := iban[4:] + iban[:4]
	remainder := 0
	for i := 0; i < len(rearranged); i++ {
		ch := rearranged[i]
		if ch >= 'A' && ch <= 'Z' {
			n := int(ch-'A') + 10
			remainder = (remainder*10 + n/10) % 97
			remainder = (remainder*10 + n%10) % 97
			continue
		}
		remainder = (remainder*10 + int(ch-'0')) % 97
	}
	return remainder
}

func isUpperAlnum(s string) bool {
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if (ch < 'A' || ch > 'Z') && (ch < '0' || ch > '9') {
			return false
		}
	}
	return true
}

func isUpperAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return s != ""
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
