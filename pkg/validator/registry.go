package validator

import (
	"fmt"
	"maps"
	"slices"
	"sync"
	"sync/atomic"
)

// Registry maps entity kinds to schemas. It is populated once at startup and
// sealed; after Seal every read is lock-free and safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	schemas map[string]*Schema
	sealed  atomic.Bool
}

// NewRegistry returns an empty, unsealed registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*Schema)}
}

// Register adds schema under its kind. Registering a kind twice is a
// configuration error.
func (r *Registry) Register(schema *Schema) error {
	if schema == nil {
		return fmt.Errorf("%w: nil schema", ErrSchemaConfiguration)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed.Load() {
		return fmt.Errorf("%w: cannot register %q", ErrRegistrySealed, schema.kind)
	}
	if _, exists := r.schemas[schema.kind]; exists {
		return fmt.Errorf("%w: entity kind %q already registered", ErrSchemaConfiguration, schema.kind)
	}

	r.schemas[schema.kind] = schema
	return nil
}

// MustRegister registers every schema and panics on the first error.
func (r *Registry) MustRegister(schemas ...*Schema) {
	for _, s := range schemas {
		if err := r.Register(s); err != nil {
			panic(err)
		}
	}
}

// Seal makes the registry read-only. It is safe to call more than once.
func (r *Registry) Seal() {
	r.mu.Lock()
	r.sealed.Store(true)
	r.mu.Unlock()
}

// Sealed reports whether Seal was called.
func (r *Registry) Sealed() bool {
	return r.sealed.Load()
}

// Schema returns the schema registered for kind.
func (r *Registry) Schema(kind string) (*Schema, error) {
	s, ok := r.lookup(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntityKind, kind)
	}
	return s, nil
}

// Kinds returns the registered kinds sorted alphabetically.
func (r *Registry) Kinds() []string {
	if !r.sealed.Load() {
		r.mu.Lock()
		defer r.mu.Unlock()
	}
	return slices.Sorted(maps.Keys(r.schemas))
}

// Validate validates payload against the schema of kind. An unregistered kind
// yields ErrUnknownEntityKind; field errors are reported inside the Result.
func (r *Registry) Validate(kind string, payload map[string]any) (Result, error) {
	s, err := r.Schema(kind)
	if err != nil {
		return Result{Kind: kind}, err
	}
	return s.Validate(payload), nil
}

func (r *Registry) lookup(kind string) (*Schema, bool) {
	if !r.sealed.Load() {
		r.mu.Lock()
		defer r.mu.Unlock()
	}
	s, ok := r.schemas[kind]
	return s, ok
}
