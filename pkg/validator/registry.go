package validator

import (
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/valkit/pkg/logger"
)

// Registry maps validator names to instances. Names are unique and
// case-sensitive as returned by Validator.Name.
type Registry struct {
	mu         sync.RWMutex
	validators map[string]Validator
	logger     *slog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRegistryLogger sets the logger for registry mutations.
func WithRegistryLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		validators: make(map[string]Validator),
		logger:     discardLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Register adds v under its name. It fails if the name is taken.
func (r *Registry) Register(v Validator) error {
	name, err := validatorName(v)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.validators[name]; exists {
		return &ConfigurationError{Validator: name, Err: ErrDuplicateValidator}
	}
	r.validators[name] = v
	r.logger.Debug("validator registered", logger.Validator(name))
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(v Validator) {
	if err := r.Register(v); err != nil {
		panic(err)
	}
}

// Replace stores v under its name, returning the validator it displaced.
// Like Register, it rejects a nil or unnamed validator with ErrInvalidValidator.
func (r *Registry) Replace(v Validator) (Validator, bool, error) {
	name, err := validatorName(v)
	if err != nil {
		return nil, false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	prev, replaced := r.validators[name]
	r.validators[name] = v
	r.logger.Debug("validator replaced", logger.Validator(name), slog.Bool("existed", replaced))
	return prev, replaced, nil
}

func (r *Registry) Get(name string) (Validator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.validators[name]
	return v, ok
}

func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Unregister removes name. Removing an unknown name is a no-op.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.validators[name]; !ok {
		return
	}
	delete(r.validators, name)
	r.logger.Debug("validator unregistered", logger.Validator(name))
}

// All returns a snapshot of the registry contents.
func (r *Registry) All() map[string]Validator {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.validators)
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.validators))
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.validators)
}

func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.validators)
	clear(r.validators)
	r.logger.Debug("registry cleared", slog.Int("removed", n))
}

func validatorName(v Validator) (string, error) {
	if v == nil {
		return "", &ConfigurationError{Err: ErrInvalidValidator}
	}
	name := v.Name()
	if strings.TrimSpace(name) == "" {
		return "", &ConfigurationError{Err: ErrInvalidValidator}
	}
	return name, nil
}

var (
	defaultMu       sync.Mutex
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, building it on first use with
// every built-in validator. Settings come from the environment (VALIDATOR_*)
// and fall back to DefaultSettings when they cannot be loaded. Fallbacks are
// logged at Warn through slog.Default.
func Default() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultOnce.Do(func() {
		l := slog.Default().With(logger.Component("validator.registry"))

		settings, err := LoadSettings()
		if err != nil {
			l.Warn("invalid validator settings, using defaults", logger.Error(err))
			settings = DefaultSettings()
		}
		r := NewRegistry(WithRegistryLogger(l))
		if err := RegisterBuiltins(r, settings); err != nil {
			// Only a broken disposable file gets here; retry without it.
			l.Warn("built-in validators failed, retrying without disposable file",
				slog.String("disposable_file", settings.DisposableFile),
				logger.Error(err),
			)
			settings.DisposableFile = ""
			r = NewRegistry(WithRegistryLogger(l))
			if err := RegisterBuiltins(r, settings); err != nil {
				l.Warn("built-in validators partially registered", logger.Error(err))
			}
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// ResetDefault drops the process-wide registry so the next Default call
// rebuilds it. Intended for tests.
func ResetDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultOnce = sync.Once{}
	defaultRegistry = nil
}
