package formapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// decodePayload reads a single JSON object from the request body. Numbers are
// kept as json.Number so integer identifiers survive without float rounding.
func decodePayload(w http.ResponseWriter, r *http.Request, maxBytes int64) (map[string]any, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, fmt.Errorf("%w: expected application/json", ErrUnsupportedMediaType)
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "application/json" {
		return nil, fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, contentType)
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBytes))
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return nil, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, maxErr.Limit)
		case errors.Is(err, io.EOF):
			return nil, fmt.Errorf("%w: empty body", ErrInvalidJSON)
		default:
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
	}
	if payload == nil {
		return nil, fmt.Errorf("%w: body must be a JSON object", ErrInvalidJSON)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
	}
	return payload, nil
}
