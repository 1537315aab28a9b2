// Package validator validates structured form payloads against declarative,
// per-entity schemas and reports every field error at once in a shape the
// dashboard UI can render beneath each form field.
//
// A Schema is an ordered list of field descriptors. Each descriptor binds a
// field name either to a Rule (a leaf check) or to a nested Schema, which is
// how localized names such as {"en": "...", "ar": "..."} are expressed.
// Rules are small immutable values built by constructor functions:
//
//   - Text      – required, non-blank string; optional MinLen
//   - String    – declared string without constraints, coerces scalars
//   - Number    – numeric value or numeric string; optional Min and Integer
//   - OneOf     – one of a fixed set of literal values
//   - PassThrough – accepts anything unchanged
//   - Optional  – skips the wrapped rule when the value is absent
//
// Schemas are registered in a Registry at startup, sealed, and then read
// concurrently without locks.
//
// # Usage
//
//	city := validator.MustSchema("city",
//	    validator.Localized("name"),
//	    validator.Field("country_id", validator.Number(validator.Integer(), validator.Min(1))),
//	    validator.Field("status", validator.OneOf("Published", "Draft")),
//	)
//
//	reg := validator.NewRegistry()
//	reg.MustRegister(city)
//	reg.Seal()
//
//	res, err := reg.Validate("city", payload)
//	if err != nil {
//	    // ErrUnknownEntityKind: a wiring bug in the caller
//	}
//	if !res.Valid() {
//	    for _, e := range res.Errors {
//	        // e.Field is a dotted path such as "name.ar"
//	    }
//	}
//
// # Error Handling
//
// Field errors never surface as Go errors from Validate; they are returned in
// bulk inside Result. ErrSchemaConfiguration marks declaration defects and is
// meant to abort startup (see MustSchema and MustRegister).
// ErrUnknownEntityKind is returned for unregistered kinds rather than a valid
// result. ValidationErrors carries translation keys and values so messages can
// be localized by the caller with Translate.
package validator
