package validator_test

import (
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/entityforms/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "name.en", Message: "field is required"})
		assert.Equal(t, "validation failed: name.en: field is required", errs.Error())
	})

	t.Run("keeps declaration order of multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "name.ar", Message: "field is required"})
		errs.Add(validator.ValidationError{Field: "country_id", Message: "must be at least 1"})

		assert.Equal(t,
			"validation failed: name.ar: field is required; country_id: must be at least 1",
			errs.Error(),
		)
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	var errs validator.ValidationErrors
	required := validator.ValidationError{
		Field:             "status",
		Message:           "field is required",
		TranslationKey:    "validation.required",
		TranslationValues: map[string]any{"field": "status"},
	}
	inList := validator.ValidationError{
		Field:          "status",
		Message:        "must be one of: Published, Draft",
		TranslationKey: "validation.in_list",
	}
	errs.Add(required)
	errs.Add(inList)
	errs.Add(validator.ValidationError{Field: "name.en", Message: "field is required"})

	t.Run("has", func(t *testing.T) {
		assert.True(t, errs.Has("status"))
		assert.True(t, errs.Has("name.en"))
		assert.False(t, errs.Has("name"))
	})

	t.Run("get returns messages for field", func(t *testing.T) {
		assert.Equal(t, []string{"field is required", "must be one of: Published, Draft"}, errs.Get("status"))
		assert.Empty(t, errs.Get("country_id"))
	})

	t.Run("get errors returns full error values", func(t *testing.T) {
		result := errs.GetErrors("status")
		require.Len(t, result, 2)
		assert.Equal(t, required, result[0])
		assert.Equal(t, inList, result[1])
	})

	t.Run("fields are unique and ordered", func(t *testing.T) {
		assert.Equal(t, []string{"status", "name.en"}, errs.Fields())
	})

	t.Run("is empty", func(t *testing.T) {
		var empty validator.ValidationErrors
		assert.True(t, empty.IsEmpty())
		assert.False(t, errs.IsEmpty())
	})
}

func TestValidationErrors_Values(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "name.ar", Message: "field is required"})
	errs.Add(validator.ValidationError{Field: "code", Message: "must be at least 2 characters long"})

	assert.Equal(t, url.Values{
		"name.ar": {"field is required"},
		"code":    {"must be at least 2 characters long"},
	}, errs.Values())
}

func TestValidationErrors_Translate(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "name.ar", Message: "field is required", TranslationKey: "validation.required"})
	errs.Add(validator.ValidationError{Field: "note", Message: "custom text"})

	translated := errs.Translate(func(e validator.ValidationError) string {
		if e.TranslationKey == "validation.required" {
			return "هذا الحقل مطلوب"
		}
		return ""
	})

	t.Run("replaces messages with translated text", func(t *testing.T) {
		assert.Equal(t, "هذا الحقل مطلوب", translated[0].Message)
	})

	t.Run("keeps literal message when translator returns empty", func(t *testing.T) {
		assert.Equal(t, "custom text", translated[1].Message)
	})

	t.Run("does not modify the original", func(t *testing.T) {
		assert.Equal(t, "field is required", errs[0].Message)
	})

	t.Run("nil translator returns errors unchanged", func(t *testing.T) {
		assert.Equal(t, errs, errs.Translate(nil))
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("extracts from wrapped error", func(t *testing.T) {
		var original validator.ValidationErrors
		original.Add(validator.ValidationError{Field: "title.en", Message: "field is required"})

		wrapped := fmt.Errorf("submit todo: %w", original)
		extracted := validator.ExtractValidationErrors(wrapped)
		require.NotNil(t, extracted)
		assert.True(t, extracted.Has("title.en"))
		assert.True(t, validator.IsValidationError(wrapped))
		assert.ErrorIs(t, wrapped, validator.ErrValidationFailed)
	})

	t.Run("returns nil for other errors", func(t *testing.T) {
		err := errors.New("regular error")
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.False(t, validator.IsValidationError(err))
		assert.NotErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})
}
