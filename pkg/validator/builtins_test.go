package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valkit/pkg/dnscheck"
	"github.com/dmitrymomot/valkit/pkg/validator"
)

func builtinsByName(t *testing.T, s validator.Settings, opts ...validator.Option) map[string]validator.Validator {
	t.Helper()
	list, err := validator.NewBuiltins(s, opts...)
	require.NoError(t, err)
	out := make(map[string]validator.Validator, len(list))
	for _, v := range list {
		out[v.Name()] = v
	}
	return out
}

func TestNewBuiltins(t *testing.T) {
	t.Parallel()

	t.Run("names", func(t *testing.T) {
		t.Parallel()
		got := builtinsByName(t, validator.DefaultSettings())
		assert.Len(t, got, 11)
		for _, name := range []string{"iban", "uuid", "email", "url", "phone", "alpha", "alphanumeric", "length", "number", "integer", "float"} {
			assert.Contains(t, got, name)
		}
	})

	t.Run("invalid settings", func(t *testing.T) {
		t.Parallel()
		s := validator.DefaultSettings()
		s.DNSFailure = "maybe"
		_, err := validator.NewBuiltins(s)
		assert.ErrorIs(t, err, validator.ErrInvalidParameter)
	})

	t.Run("missing disposable file", func(t *testing.T) {
		t.Parallel()
		s := validator.DefaultSettings()
		s.DisposableFile = "testdata/missing.yaml"
		_, err := validator.NewBuiltins(s)
		require.Error(t, err)
		assert.True(t, validator.IsConfigurationError(err))
		assert.ErrorIs(t, err, validator.ErrInvalidParameter)
		assert.Contains(t, err.Error(), "disposable_file")
	})

	t.Run("custom disposable file extends the default list", func(t *testing.T) {
		t.Parallel()
		s := validator.DefaultSettings()
		s.DisposableFile = "testdata/disposable.yaml"
		email := builtinsByName(t, s)["email"]
		c := validator.NewContext().Set("check_disposable", true)

		assert.Equal(t, "disposable", email.Validate("user@throwaway.test", c).Constraint())
		assert.Equal(t, "disposable", email.Validate("user@mail.burner.example", c).Constraint())
		assert.Equal(t, "disposable", email.Validate("user@mailinator.com", c).Constraint())
		assert.True(t, email.Validate("user@example.com", c).Valid())
	})

	t.Run("supplied disposable source wins", func(t *testing.T) {
		t.Parallel()
		src := &MockDisposableSource{}
		src.On("IsDisposable", "mailinator.com").Return(false).Once()

		email := builtinsByName(t, validator.DefaultSettings(), validator.WithDisposableSource(src))["email"]
		assert.True(t, email.Validate("user@mailinator.com", validator.NewContext().Set("check_disposable", true)).Valid())
		src.AssertExpectations(t)
	})

	t.Run("phone region", func(t *testing.T) {
		t.Parallel()
		s := validator.DefaultSettings()
		s.PhoneRegion = "GB"
		phone := builtinsByName(t, s)["phone"]
		assert.True(t, phone.Validate("020 7946 0958", nil).Valid())
		assert.Equal(t, "pattern", phone.Validate("(415) 555-2671", nil).Constraint())
	})

	t.Run("url schemes", func(t *testing.T) {
		t.Parallel()
		s := validator.DefaultSettings()
		s.URLSchemes = []string{"https"}
		u := builtinsByName(t, s)["url"]
		assert.True(t, u.Validate("https://example.com", nil).Valid())
		assert.Equal(t, "scheme", u.Validate("ftp://example.com", nil).Constraint())

		s.URLSchemes = nil
		u = builtinsByName(t, s)["url"]
		assert.True(t, u.Validate("ftp://example.com", nil).Valid())
	})

	t.Run("dns failure policy", func(t *testing.T) {
		t.Parallel()
		s := validator.DefaultSettings()
		s.DNSFailure = "warn"
		got := builtinsByName(t, s, validator.WithRecordChecker(dnscheck.Failing{}))
		c := validator.NewContext().Set("check_dns", true)

		for _, tc := range []struct{ name, value string }{
			{"email", "user@example.com"},
			{"url", "https://example.com"},
		} {
			r := got[tc.name].Validate(tc.value, c)
			assert.True(t, r.Valid(), tc.name)
			assert.Equal(t, validator.KindWarning, r.Kind(), tc.name)
		}
	})
}

func TestBuiltins_Deterministic(t *testing.T) {
	t.Parallel()
	got := builtinsByName(t, validator.DefaultSettings(), validator.WithRecordChecker(dnscheck.Static{}))

	inputs := []any{
		"", "abc", "Hello World", "42", "4.2", "user@example.com", "https://example.com",
		"+14155552671", "DE89 3704 0044 0532 0130 00", sampleUUIDv4, 17, 3.5, nil, []byte("x"),
	}
	for name, v := range got {
		for _, in := range inputs {
			first := v.Validate(in, nil)
			second := v.Validate(in, nil)
			assert.Equal(t, first, second, "%s(%v)", name, in)
		}
	}
}
