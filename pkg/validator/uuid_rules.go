package validator

import (
	"strings"

	"github.com/google/uuid"
)

const uuidLength = 36

// Offsets in the canonical 8-4-4-4-12 form.
const (
	uuidVersionOffset = 14
	uuidVariantOffset = 19
)

var uuidHyphens = [...]int{8, 13, 18, 23}

// UUIDValidator checks the RFC 4122 textual form.
//
// Parameters:
//   - version: required version (1, 3, 4 or 5)
//   - allow_nil: accept 00000000-0000-0000-0000-000000000000
type UUIDValidator struct {
	Parameterized
}

func NewUUID(params Params) *UUIDValidator {
	return &UUIDValidator{Parameterized: parameterized("uuid", params)}
}

// With returns a copy of the validator with key set.
func (v *UUIDValidator) With(key string, value any) *UUIDValidator {
	return &UUIDValidator{Parameterized: v.with(key, value)}
}

func (v *UUIDValidator) Validate(value any, c *Context) Result {
	var raw string
	switch u := value.(type) {
	case uuid.UUID:
		raw = u.String()
	default:
		s, ok := asString(value)
		if !ok {
			return typeFailure("string", value)
		}
		raw = s
	}

	id := trimmedLower(raw)
	if id == "" {
		return Failure(CategoryFormat, "empty", "UUID is empty", nil)
	}
	details := map[string]any{"value": id}

	if !isCanonicalUUID(id) {
		return Failure(CategoryFormat, "format", "UUID must be 32 hex digits in 8-4-4-4-12 groups", details)
	}

	allowNil, err := v.ResolveBool("allow_nil", c, false)
	if err != nil {
		return parameterFailure(err)
	}
	if allowNil && id == uuid.Nil.String() {
		// A required version still applies; the nil UUID has none.
		required, set, res := v.requiredVersion(c)
		if res != nil {
			return *res
		}
		if set {
			details["version"] = 0
			details["expected_version"] = required
			return Failure(CategoryUnsupported, "version_mismatch", "nil UUID does not match the required version", details)
		}
		return Success("nil UUID", map[string]any{
			"uuid":    id,
			"version": 0,
			"variant": "0",
			"parsed":  uuid.Nil,
		})
	}

	version := int(id[uuidVersionOffset] - '0')
	if !isSupportedUUIDVersion(version) {
		details["version"] = string(id[uuidVersionOffset])
		return Failure(CategoryUnsupported, "version", "UUID version is not supported", details)
	}

	variant := id[uuidVariantOffset]
	if !strings.ContainsRune("89ab", rune(variant)) {
		details["variant"] = string(variant)
		return Failure(CategoryUnsupported, "variant", "UUID variant is not RFC 4122", details)
	}

	required, set, res := v.requiredVersion(c)
	if res != nil {
		return *res
	}
	if set && required != version {
		details["version"] = version
		details["expected_version"] = required
		return Failure(CategoryUnsupported, "version_mismatch", "UUID version does not match", details)
	}

	// Cannot fail once isCanonicalUUID holds.
	parsed, err := uuid.Parse(id)
	if err != nil {
		return Failure(CategoryFormat, "format", err.Error(), details)
	}

	return Success("valid UUID", map[string]any{
		"uuid":    id,
		"version": version,
		"variant": string(variant),
		"parsed":  parsed,
	})
}

// requiredVersion resolves the version parameter. A non-nil Result reports a
// bad parameter.
func (v *UUIDValidator) requiredVersion(c *Context) (int, bool, *Result) {
	required, set, err := v.OptionalInt("version", c)
	if err != nil {
		r := parameterFailure(err)
		return 0, false, &r
	}
	if set && !isSupportedUUIDVersion(required) {
		r := Failure(CategoryParameter, "parameter", "required UUID version must be 1, 3, 4 or 5", map[string]any{
			"parameter": "version",
			"value":     required,
		})
		return 0, false, &r
	}
	return required, set, nil
}

// isCanonicalUUID checks length, hyphen positions and hex digits of a lowercased UUID.
func isCanonicalUUID(s string) bool {
	if len(s) != uuidLength {
		return false
	}
	next := 0
	for i := 0; i < len(s); i++ {
		if next < len(uuidHyphens) && i == uuidHyphens[next] {
			if s[i] != '-' {
				return false
			}
			next++
			continue
		}
		if !isLowerHex(s[i]) {
			return false
		}
	}
	return true
}

func isLowerHex(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f')
}

func isSupportedUUIDVersion(v int) bool {
	switch v {
	case 1, 3, 4, 5:
		return true
	default:
		return false
	}
}
