package validator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CharsetValidator backs both alpha and alphanumeric checks.
//
// Parameters:
//   - allow_spaces, allow_hyphens, allow_underscores: accept these separators
//   - unicode: accept any Unicode letter (and number, for alphanumeric)
//   - allow_diacritics: accept Latin letters carrying combining accents
type CharsetValidator struct {
	Parameterized
	digits bool
}

// NewAlpha accepts letters only.
func NewAlpha(params Params) *CharsetValidator {
	return &CharsetValidator{Parameterized: parameterized("alpha", params)}
}

// NewAlphanumeric accepts letters and digits.
func NewAlphanumeric(params Params) *CharsetValidator {
	return &CharsetValidator{Parameterized: parameterized("alphanumeric", params), digits: true}
}

// With returns a copy of the validator with key set.
func (v *CharsetValidator) With(key string, value any) *CharsetValidator {
	return &CharsetValidator{Parameterized: v.with(key, value), digits: v.digits}
}

type charsetOptions struct {
	spaces, hyphens, underscores, unicode, diacritics bool
}

func (v *CharsetValidator) Validate(value any, c *Context) Result {
	s, ok := asString(value)
	if !ok {
		return typeFailure("string", value)
	}
	if s == "" {
		return Failure(CategoryFormat, "empty", "value is empty", nil)
	}
	if !utf8.ValidString(s) {
		return Failure(CategoryFormat, "encoding", "value is not valid UTF-8", nil)
	}

	var opts charsetOptions
	for _, f := range []struct {
		key string
		dst *bool
	}{
		{"allow_spaces", &opts.spaces},
		{"allow_hyphens", &opts.hyphens},
		{"allow_underscores", &opts.underscores},
		{"unicode", &opts.unicode},
		{"allow_diacritics", &opts.diacritics},
	} {
		b, err := v.ResolveBool(f.key, c, false)
		if err != nil {
			return parameterFailure(err)
		}
		*f.dst = b
	}

	checked := s
	if opts.diacritics && !opts.unicode {
		folded, err := foldDiacritics(s)
		if err != nil {
			return Failure(CategoryFormat, "encoding", err.Error(), nil)
		}
		checked = folded
	}

	for i, r := range checked {
		if !v.allowed(r, opts) {
			return Failure(CategoryFormat, "charset", v.failMessage(), map[string]any{
				"value":    s,
				"position": i,
				"char":     string(r),
			})
		}
	}

	return Success("value matches "+v.Name()+" charset", map[string]any{"value": s})
}

func (v *CharsetValidator) allowed(r rune, o charsetOptions) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case v.digits && r >= '0' && r <= '9':
		return true
	case o.spaces && r == ' ':
		return true
	case o.hyphens && r == '-':
		return true
	case o.underscores && r == '_':
		return true
	case o.unicode:
		return unicode.IsLetter(r) || unicode.Is(unicode.Mn, r) || (v.digits && unicode.IsNumber(r))
	default:
		return false
	}
}

func (v *CharsetValidator) failMessage() string {
	if v.digits {
		return "must contain only letters and numbers"
	}
	return "must contain only letters"
}

// foldDiacritics strips combining marks after canonical decomposition, so
// "Crème" becomes "Creme". The transformer is stateful and built per call.
func foldDiacritics(s string) (string, error) {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	return out, err
}

// LengthValidator bounds the length of a string in characters or bytes.
//
// Parameters:
//   - min, max, exact: bounds (any subset)
//   - bytes: count bytes instead of Unicode code points
//
// A min greater than max rejects every value.
type LengthValidator struct {
	Parameterized
}

func NewLength(params Params) *LengthValidator {
	return &LengthValidator{Parameterized: parameterized("length", params)}
}

// With returns a copy of the validator with key set.
func (v *LengthValidator) With(key string, value any) *LengthValidator {
	return &LengthValidator{Parameterized: v.with(key, value)}
}

func (v *LengthValidator) Validate(value any, c *Context) Result {
	var s string
	switch t := value.(type) {
	case string:
		s = t
	case []byte:
		s = string(t)
	case fmt.Stringer:
		s = t.String()
	default:
		return typeFailure("string", value)
	}

	countBytes, err := v.ResolveBool("bytes", c, false)
	if err != nil {
		return parameterFailure(err)
	}
	length := utf8.RuneCountInString(s)
	unit := "characters"
	if countBytes {
		length = len(s)
		unit = "bytes"
	}
	details := map[string]any{"length": length, "unit": unit}

	exact, hasExact, err := v.OptionalInt("exact", c)
	if err != nil {
		return parameterFailure(err)
	}
	minLen, hasMin, err := v.OptionalInt("min", c)
	if err != nil {
		return parameterFailure(err)
	}
	maxLen, hasMax, err := v.OptionalInt("max", c)
	if err != nil {
		return parameterFailure(err)
	}

	if hasExact && length != exact {
		details["exact"] = exact
		return Failure(CategoryRange, "exact", fmt.Sprintf("must be exactly %d %s long", exact, unit), details)
	}
	if hasMin && length < minLen {
		details["min"] = minLen
		return Failure(CategoryRange, "min", fmt.Sprintf("must be at least %d %s long", minLen, unit), details)
	}
	if hasMax && length > maxLen {
		details["max"] = maxLen
		return Failure(CategoryRange, "max", fmt.Sprintf("must be at most %d %s long", maxLen, unit), details)
	}

	return Success("length is valid", details)
}

// trimmedLower is shared by validators that compare case-insensitively.
func trimmedLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
