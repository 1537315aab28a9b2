package validator

import "errors"

var (
	// ErrValidationFailed matches any ValidationErrors via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrSchemaConfiguration is returned when a schema or the registry is
	// declared incorrectly: duplicate field names, an empty enumerated set,
	// or an entity kind registered twice. It is a startup-time defect.
	ErrSchemaConfiguration = errors.New("invalid schema configuration")

	// ErrUnknownEntityKind is returned when validation is requested for a
	// kind that was never registered.
	ErrUnknownEntityKind = errors.New("unknown entity kind")

	// ErrRegistrySealed is returned when registering into a sealed registry.
	ErrRegistrySealed = errors.New("registry is sealed")
)
