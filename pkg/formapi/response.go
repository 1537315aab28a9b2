package formapi

import (
	"encoding/json"
	"net/http"
)

// JSONResponse is the envelope of every API response.
type JSONResponse struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request. Details maps field paths to their
// messages; Fields lists the same errors in validation order with their
// translation keys.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
	Fields  []FieldError        `json:"fields,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Key     string `json:"key,omitempty"`
}

// EntityDescription is the body of GET /v1/entities/{kind}.
type EntityDescription struct {
	Kind   string `json:"kind"`
	Fields any    `json:"fields"`
}

func writeJSON(w http.ResponseWriter, status int, body JSONResponse) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}
