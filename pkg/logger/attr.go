package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Validator records a validator name under the key "validator".
func Validator(name string) slog.Attr {
	return slog.String("validator", name)
}

// Constraint records a failed constraint tag under the key "constraint".
// An empty tag yields an empty Attr.
func Constraint(tag string) slog.Attr {
	if tag == "" {
		return slog.Attr{}
	}
	return slog.String("constraint", tag)
}

// Kind records a result kind under the key "kind".
func Kind(kind any) slog.Attr {
	return slog.Any("kind", kind)
}

// Domain records a DNS domain under the key "domain".
func Domain(domain string) slog.Attr {
	return slog.String("domain", domain)
}

// RecordType records a DNS record type under the key "record_type".
func RecordType(rt string) slog.Attr {
	return slog.String("record_type", rt)
}

// Attempt records a retry attempt under the key "attempt".
func Attempt(n int) slog.Attr {
	return slog.Int("attempt", n)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
