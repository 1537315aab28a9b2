package formapi

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrBodyTooLarge         = errors.New("request body too large")
)

// Error codes returned in ErrorDetail.Code.
const (
	CodeValidation           = "validation_error"
	CodeUnknownEntityKind    = "unknown_entity_kind"
	CodeInvalidJSON          = "invalid_json"
	CodeUnsupportedMediaType = "unsupported_media_type"
	CodeBodyTooLarge         = "request_too_large"
	CodeNotFound             = "not_found"
	CodeMethodNotAllowed     = "method_not_allowed"
)
