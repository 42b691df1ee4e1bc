package constraints

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrUnknownValidator reports an identifier with no registered factory.
	ErrUnknownValidator = errors.New("constraints: unknown validator")

	// ErrInvalidConfig reports configuration a factory refused.
	ErrInvalidConfig = errors.New("constraints: invalid configuration")
)

// Factory builds a constraint from its configuration. Factories must not keep
// or mutate the supplied map.
type Factory func(config map[string]any) (Constraint, error)

// Registry stores constraint factories by identifier. It is safe for
// concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry constructs a registry with the built-in constraints registered.
func NewRegistry() *Registry {
	reg := NewEmptyRegistry()
	reg.registerBuiltins()
	return reg
}

// NewEmptyRegistry constructs a registry without any factories.
func NewEmptyRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under name. Empty and duplicate names are rejected.
func (r *Registry) Register(name string, factory Factory) error {
	if factory == nil {
		return errors.New("constraints: factory is required")
	}
	key := Normalize(name)
	if key == "" {
		return errors.New("constraints: validator name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[key]; exists {
		return fmt.Errorf("constraints: validator %q already registered", key)
	}
	r.factories[key] = factory
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name string, factory Factory) {
	if err := r.Register(name, factory); err != nil {
		panic(err)
	}
}

// Has reports whether an identifier resolves to a factory.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[Normalize(name)]
	return ok
}

// List returns the registered identifiers in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New instantiates the constraint registered under name. The configuration is
// deep-copied before the factory sees it.
func (r *Registry) New(name string, config map[string]any) (Constraint, error) {
	key := Normalize(name)

	r.mu.RLock()
	factory, ok := r.factories[key]
	r.mu.RUnlock()
	if !ok {
		return Constraint{}, fmt.Errorf("%w: %q", ErrUnknownValidator, name)
	}

	constraint, err := factory(cloneConfig(config))
	if err != nil {
		return Constraint{}, fmt.Errorf("constraints: validator %q: %w", key, err)
	}
	return constraint, nil
}

// Normalize reduces an identifier to its registry key. Namespaced identifiers
// such as `Symfony\Component\Validator\Constraints\Email` resolve by their
// last segment.
func Normalize(name string) string {
	trimmed := strings.TrimSpace(name)
	if idx := strings.LastIndex(trimmed, `\`); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	return trimmed
}
