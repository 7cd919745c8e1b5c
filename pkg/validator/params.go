package validator

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"strconv"
	"strings"
	"time"
)

// Params holds construction-time parameter defaults for a validator.
type Params map[string]any

// Parameterized is embedded by validators that take named parameters.
// Resolution order for every key: per-call Context, then construction-time
// Params, then the caller-supplied default. A key present in the Context with
// a nil value still wins and reads as "unset".
type Parameterized struct {
	name   string
	params Params
}

// NewParameterized copies params and checks that every required key is present.
func NewParameterized(name string, params Params, required ...string) (Parameterized, error) {
	for _, key := range required {
		if v, ok := params[key]; !ok || v == nil {
			return Parameterized{}, &ConfigurationError{Validator: name, Parameter: key, Err: ErrMissingParameter}
		}
	}
	return Parameterized{name: name, params: maps.Clone(params)}, nil
}

// parameterized builds a base for validators without mandatory keys.
func parameterized(name string, params Params) Parameterized {
	return Parameterized{name: name, params: maps.Clone(params)}
}

func (p Parameterized) Name() string { return p.name }

// Params returns a copy of the construction-time parameters.
func (p Parameterized) Params() Params {
	return maps.Clone(p.params)
}

// Param returns a construction-time parameter.
func (p Parameterized) Param(key string) (any, bool) {
	v, ok := p.params[key]
	return v, ok
}

// Resolve returns the effective value of key.
func (p Parameterized) Resolve(key string, c *Context, def any) any {
	if v, ok := p.lookup(key, c); ok {
		return v
	}
	return def
}

// with returns a copy with key set. The receiver is left untouched.
func (p Parameterized) with(key string, value any) Parameterized {
	params := maps.Clone(p.params)
	if params == nil {
		params = make(Params, 1)
	}
	params[key] = value
	return Parameterized{name: p.name, params: params}
}

func (p Parameterized) lookup(key string, c *Context) (any, bool) {
	if v, ok := c.Lookup(key); ok {
		return v, true
	}
	v, ok := p.params[key]
	return v, ok
}

// ResolveInt resolves key as an int. Unset keys yield def.
func (p Parameterized) ResolveInt(key string, c *Context, def int) (int, error) {
	n, ok, err := p.OptionalInt(key, c)
	if err != nil || !ok {
		return def, err
	}
	return n, nil
}

// OptionalInt resolves key as an int and reports whether it is set.
func (p Parameterized) OptionalInt(key string, c *Context) (int, bool, error) {
	v, ok := p.lookup(key, c)
	if !ok || v == nil {
		return 0, false, nil
	}
	n, ok := toInt(v)
	if !ok {
		return 0, false, &paramError{key: key, value: v}
	}
	return n, true, nil
}

// OptionalFloat resolves key as a float64 and reports whether it is set.
func (p Parameterized) OptionalFloat(key string, c *Context) (float64, bool, error) {
	v, ok := p.lookup(key, c)
	if !ok || v == nil {
		return 0, false, nil
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, false, &paramError{key: key, value: v}
	}
	return f, true, nil
}

// ResolveFloat resolves key as a float64. Unset keys yield def.
func (p Parameterized) ResolveFloat(key string, c *Context, def float64) (float64, error) {
	f, ok, err := p.OptionalFloat(key, c)
	if err != nil || !ok {
		return def, err
	}
	return f, nil
}

// ResolveBool resolves key as a bool. Unset keys yield def.
func (p Parameterized) ResolveBool(key string, c *Context, def bool) (bool, error) {
	v, ok := p.lookup(key, c)
	if !ok || v == nil {
		return def, nil
	}
	b, ok := toBool(v)
	if !ok {
		return def, &paramError{key: key, value: v}
	}
	return b, nil
}

// ResolveString resolves key as a string. Unset keys yield def.
func (p Parameterized) ResolveString(key string, c *Context, def string) (string, error) {
	v, ok := p.lookup(key, c)
	if !ok || v == nil {
		return def, nil
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case fmt.Stringer:
		return s.String(), nil
	default:
		return def, &paramError{key: key, value: v}
	}
}

// ResolveStrings resolves key as a string list. A plain string is split on commas.
func (p Parameterized) ResolveStrings(key string, c *Context, def []string) ([]string, error) {
	v, ok := p.lookup(key, c)
	if !ok || v == nil {
		return def, nil
	}
	list, ok := toStrings(v)
	if !ok {
		return def, &paramError{key: key, value: v}
	}
	return list, nil
}

// ResolveDuration resolves key as a time.Duration. Strings use time.ParseDuration.
func (p Parameterized) ResolveDuration(key string, c *Context, def time.Duration) (time.Duration, error) {
	v, ok := p.lookup(key, c)
	if !ok || v == nil {
		return def, nil
	}
	switch d := v.(type) {
	case time.Duration:
		return d, nil
	case string:
		parsed, err := time.ParseDuration(d)
		if err != nil {
			return def, &paramError{key: key, value: v}
		}
		return parsed, nil
	default:
		return def, &paramError{key: key, value: v}
	}
}

type paramError struct {
	key   string
	value any
}

func (e *paramError) Error() string {
	return fmt.Sprintf("%v: %s=%v", ErrInvalidParameter, e.key, e.value)
}

func (e *paramError) Unwrap() error { return ErrInvalidParameter }

// parameterFailure converts a resolution error into a failed Result.
func parameterFailure(err error) Result {
	details := map[string]any{}
	if pe, ok := err.(*paramError); ok {
		details["parameter"] = pe.key
		details["value"] = pe.value
	}
	return Failure(CategoryParameter, "parameter", err.Error(), details)
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int64ToInt(n)
	case uint:
		return uint64ToInt(uint64(n))
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return uint64ToInt(uint64(n))
	case uint64:
		return uint64ToInt(n)
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int64ToInt(i)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	default:
		return 0, false
	}
}

func int64ToInt(i int64) (int, bool) {
	if i < math.MinInt || i > math.MaxInt {
		return 0, false
	}
	return int(i), true
}

func uint64ToInt(u uint64) (int, bool) {
	if u > math.MaxInt {
		return 0, false
	}
	return int(u), true
}

// intRange is 2^(IntSize-1): the first float64 outside the int range.
const intRange = float64(1 << (strconv.IntSize - 1))

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f >= intRange || f < -intRange {
		return 0, false
	}
	return int(f), true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		if i, ok := toInt(v); ok {
			return float64(i), true
		}
		return 0, false
	}
}

func toBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		return parsed, err == nil
	default:
		if i, ok := toInt(v); ok && (i == 0 || i == 1) {
			return i == 1, true
		}
		return false, false
	}
}

func toStrings(v any) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		return list, true
	case string:
		var out []string
		for part := range strings.SplitSeq(list, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out, true
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}
