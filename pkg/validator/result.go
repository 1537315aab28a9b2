package validator

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// ErrDecode is returned when a normalized record cannot be decoded into a target.
var ErrDecode = errors.New("failed to decode normalized record")

// Result is the outcome of validating one payload: either a normalized record
// (Value) or a non-empty list of field errors (Errors), never both.
type Result struct {
	Kind   string
	Value  map[string]any
	Errors ValidationErrors
}

func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Err returns the field errors as an error, or nil for a valid result.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return r.Errors
}

// Decode copies the normalized record into target, a pointer to a struct
// whose fields are matched by their json tag names.
func (r Result) Decode(target any) error {
	if !r.Valid() {
		return r.Errors
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  target,
	})
	if err != nil {
		return errors.Join(ErrDecode, err)
	}
	if err := dec.Decode(r.Value); err != nil {
		return errors.Join(ErrDecode, fmt.Errorf("%s: %w", r.Kind, err))
	}
	return nil
}
