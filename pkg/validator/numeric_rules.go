package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	integerStringRegex = regexp.MustCompile(`^[+-]?\d+$`)
	decimalStringRegex = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
)

type numericKind uint8

const (
	numericAny numericKind = iota
	numericInteger
	numericFloat
)

// NumericValidator backs the number, integer and float checks.
//
// Parameters:
//   - strict: accept only native Go numeric values, never strings
//   - min, max: inclusive range
//   - precision: (float) maximum significant fractional digits
type NumericValidator struct {
	Parameterized
	kind numericKind
}

func NewNumber(params Params) *NumericValidator {
	return &NumericValidator{Parameterized: parameterized("number", params), kind: numericAny}
}

func NewInteger(params Params) *NumericValidator {
	return &NumericValidator{Parameterized: parameterized("integer", params), kind: numericInteger}
}

func NewFloat(params Params) *NumericValidator {
	return &NumericValidator{Parameterized: parameterized("float", params), kind: numericFloat}
}

// With returns a copy of the validator with key set.
func (v *NumericValidator) With(key string, value any) *NumericValidator {
	return &NumericValidator{Parameterized: v.with(key, value), kind: v.kind}
}

// numeric is a parsed input: its float value, whether it is whole and its
// plain decimal text.
type numeric struct {
	value float64
	whole bool
	text  string
}

func (v *NumericValidator) Validate(value any, c *Context) Result {
	strict, err := v.ResolveBool("strict", c, false)
	if err != nil {
		return parameterFailure(err)
	}

	n, res := v.parse(value, strict)
	if res != nil {
		return *res
	}

	if v.kind == numericInteger && !n.whole {
		return Failure(CategoryFormat, "integer", "must be an integer", map[string]any{"value": n.text})
	}

	details := map[string]any{"value": n.value}
	if v.kind == numericInteger {
		text := n.text
		if !integerStringRegex.MatchString(text) {
			text = strconv.FormatFloat(n.value, 'f', -1, 64)
		}
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Failure(CategoryRange, "overflow", "integer is out of the 64-bit range", map[string]any{"value": n.text})
		}
		details["value"] = i
	}

	minVal, hasMin, err := v.OptionalFloat("min", c)
	if err != nil {
		return parameterFailure(err)
	}
	if hasMin && n.value < minVal {
		details["min"] = minVal
		return Failure(CategoryRange, "min", fmt.Sprintf("must be at least %v", minVal), details)
	}
	maxVal, hasMax, err := v.OptionalFloat("max", c)
	if err != nil {
		return parameterFailure(err)
	}
	if hasMax && n.value > maxVal {
		details["max"] = maxVal
		return Failure(CategoryRange, "max", fmt.Sprintf("must be at most %v", maxVal), details)
	}

	if v.kind == numericFloat {
		precision, hasPrecision, err := v.OptionalInt("precision", c)
		if err != nil {
			return parameterFailure(err)
		}
		if hasPrecision {
			digits := fractionalDigits(n.text)
			details["decimals"] = digits
			if digits > precision {
				details["precision"] = precision
				return Failure(CategoryRange, "precision", fmt.Sprintf("must have at most %d decimal places", precision), details)
			}
		}
	}

	return Success("valid "+v.Name(), details)
}

func (v *NumericValidator) parse(value any, strict bool) (numeric, *Result) {
	fail := func(r Result) (numeric, *Result) { return numeric{}, &r }
	expected := "number"
	switch v.kind {
	case numericInteger:
		expected = "integer"
	case numericFloat:
		expected = "float"
	}

	switch n := value.(type) {
	case int, int8, int16, int32, int64:
		if strict && v.kind == numericFloat {
			return fail(typeFailure(expected, value))
		}
		i := int64Of(n)
		return numeric{value: float64(i), whole: true, text: strconv.FormatInt(i, 10)}, nil
	case uint, uint8, uint16, uint32, uint64:
		if strict && v.kind == numericFloat {
			return fail(typeFailure(expected, value))
		}
		u := uint64Of(n)
		return numeric{value: float64(u), whole: true, text: strconv.FormatUint(u, 10)}, nil
	case float32:
		return v.fromFloat(float64(n), 32, strict, expected, value)
	case float64:
		return v.fromFloat(n, 64, strict, expected, value)
	case json.Number:
		return v.fromString(n.String(), expected)
	case string:
		if strict {
			return fail(typeFailure(expected, value))
		}
		return v.fromString(n, expected)
	default:
		return fail(typeFailure(expected, value))
	}
}

func (v *NumericValidator) fromFloat(f float64, bits int, strict bool, expected string, raw any) (numeric, *Result) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		r := Failure(CategoryFormat, "finite", "must be a finite number", nil)
		return numeric{}, &r
	}
	if strict && v.kind == numericInteger {
		r := typeFailure(expected, raw)
		return numeric{}, &r
	}
	return numeric{
		value: f,
		whole: f == math.Trunc(f),
		text:  strconv.FormatFloat(f, 'f', -1, bits),
	}, nil
}

func (v *NumericValidator) fromString(s, expected string) (numeric, *Result) {
	s = strings.TrimSpace(s)
	details := map[string]any{"value": s}
	if s == "" {
		r := Failure(CategoryFormat, "empty", "value is empty", nil)
		return numeric{}, &r
	}

	if v.kind == numericInteger {
		if integerStringRegex.MatchString(s) {
			f, _ := strconv.ParseFloat(s, 64)
			return numeric{value: f, whole: true, text: strings.TrimPrefix(s, "+")}, nil
		}
		if !decimalStringRegex.MatchString(s) {
			r := Failure(CategoryFormat, "format", "must be an "+expected, details)
			return numeric{}, &r
		}
	} else if !decimalStringRegex.MatchString(s) {
		r := Failure(CategoryFormat, "format", "must be a "+expected, details)
		return numeric{}, &r
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		r := Failure(CategoryRange, "overflow", "number is out of range", details)
		return numeric{}, &r
	}
	text := strings.TrimPrefix(s, "+")
	if strings.ContainsAny(text, "eE") {
		text = strconv.FormatFloat(f, 'f', -1, 64)
	}
	return numeric{value: f, whole: f == math.Trunc(f), text: text}, nil
}

// fractionalDigits counts digits after the decimal point, ignoring trailing zeros.
func fractionalDigits(text string) int {
	dot := strings.IndexByte(text, '.')
	if dot < 0 {
		return 0
	}
	return len(strings.TrimRight(text[dot+1:], "0"))
}

func int64Of(v any) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	default:
		return v.(int64)
	}
}

func uint64Of(v any) uint64 {
	switch n := v.(type) {
	case uint:
		return uint64(n)
	case uint8:
		return uint64(n)
	case uint16:
		return uint64(n)
	case uint32:
		return uint64(n)
	default:
		return v.(uint64)
	}
}
