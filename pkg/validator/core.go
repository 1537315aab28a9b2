package validator

import (
	"errors"
	"fmt"
	"maps"
	"net/url"
	"strings"
)

// ValidationError represents a single field validation error with translation support.
// Field holds the dotted path of the field inside the payload, e.g. "name.en".
type ValidationError struct {
	Field             string         `json:"field"`
	Message           string         `json:"message"`
	TranslationKey    string         `json:"key,omitempty"`
	TranslationValues map[string]any `json:"values,omitempty"`
}

// ValidationErrors represents a collection of validation errors in the order they were found.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports ErrValidationFailed so callers can use errors.Is without a type assertion.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

// Fields returns the distinct field paths with errors, in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Values groups messages by field path, the shape form-field wrappers render inline.
func (ve ValidationErrors) Values() url.Values {
	values := make(url.Values, len(ve))
	for _, err := range ve {
		values.Add(err.Field, err.Message)
	}
	return values
}

// Translate returns a copy of the errors with every Message replaced by fn's result.
// An empty result from fn keeps the original message.
func (ve ValidationErrors) Translate(fn func(ValidationError) string) ValidationErrors {
	if fn == nil || len(ve) == 0 {
		return ve
	}

	out := make(ValidationErrors, len(ve))
	for i, err := range ve {
		out[i] = err
		if msg := fn(err); msg != "" {
			out[i].Message = msg
		}
	}
	return out
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

// at binds a rule failure to a field path.
func (e ValidationError) at(path string) ValidationError {
	e.Field = path
	values := make(map[string]any, len(e.TranslationValues)+1)
	maps.Copy(values, e.TranslationValues)
	values["field"] = path
	e.TranslationValues = values
	return e
}
