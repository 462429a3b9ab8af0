package web

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Param returns a path parameter from the request.
func Param(r *http.Request, key string) string {
	return r.PathValue(key)
}

// QueryParam returns a query parameter from the request.
func QueryParam(r *http.Request, key string) string {
	return r.URL.Query().Get(key)
}

// validator is implemented by request models that can validate themselves.
type validator interface {
	Validate() error
}

// Decode reads the body of an HTTP request and JSON-decodes it into the given
// model. If the model implements the validator interface, Validate is called
// after decoding.
func Decode(r *http.Request, v any) error {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("unable to read request body: %w", err)
	}

	if len(data) == 0 {
		return fmt.Errorf("request body is empty")
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("json decode: %w", err)
	}

	if val, ok := v.(validator); ok {
		if err := val.Validate(); err != nil {
			return fmt.Errorf("validation: %w", err)
		}
	}

	return nil
}
