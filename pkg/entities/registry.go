package entities

import (
	"errors"
	"sync"

	"github.com/dmitrymomot/entityforms/pkg/validator"
)

// NewRegistry builds every entity schema, registers it and seals the
// registry. Any error is a configuration defect and should abort startup.
func NewRegistry() (*validator.Registry, error) {
	reg := validator.NewRegistry()

	var errs []error
	for _, define := range definitions {
		schema, err := define()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := reg.Register(schema); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	reg.Seal()
	return reg, nil
}

// MustRegistry is NewRegistry that panics on configuration errors.
func MustRegistry() *validator.Registry {
	reg, err := NewRegistry()
	if err != nil {
		panic(err)
	}
	return reg
}

var (
	defaultOnce     sync.Once
	defaultRegistry *validator.Registry
)

// Default returns the process-wide registry, built on first use.
func Default() *validator.Registry {
	defaultOnce.Do(func() {
		defaultRegistry = MustRegistry()
	})
	return defaultRegistry
}
