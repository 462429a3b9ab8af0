package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

// NoResponse tells Respond not to write anything; the handler already has.
type NoResponse struct{}

func NewNoResponse() NoResponse {
	return NoResponse{}
}

// Encode implements the Encoder interface.
func (NoResponse) Encode() ([]byte, string, error) {
	return nil, "", nil
}

// ErrorResponse is a minimal JSON error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

func NewError(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

func (e ErrorResponse) Encode() ([]byte, string, error) {
	data, err := json.Marshal(e)
	return data, "application/json", err
}

func (e ErrorResponse) HTTPStatus() int {
	return http.StatusInternalServerError
}

// JSONResponse represents a JSON response with a generic data type.
type JSONResponse[T any] struct {
	Data   T
	Status int
}

func NewJSONResponse[T any](data T) *JSONResponse[T] {
	return &JSONResponse[T]{Data: data}
}

func NewJSONResponseWithStatus[T any](data T, status int) *JSONResponse[T] {
	return &JSONResponse[T]{Data: data, Status: status}
}

func (j *JSONResponse[T]) Encode() ([]byte, string, error) {
	data, err := json.Marshal(j.Data)
	if err != nil {
		return nil, "", err
	}
	return data, "application/json; charset=utf-8", nil
}

func (j *JSONResponse[T]) HTTPStatus() int {
	if j.Status == 0 {
		return http.StatusOK
	}
	return j.Status
}

type httpStatus interface {
	HTTPStatus() int
}

// Respond sends a response to the client.
func Respond(ctx context.Context, w http.ResponseWriter, resp Encoder) error {
	if _, ok := resp.(NoResponse); ok {
		return nil
	}

	// A canceled context means the client is no longer waiting.
	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.Canceled) {
			return errors.New("client disconnected, do not send response")
		}
	}

	statusCode := http.StatusOK
	switch v := resp.(type) {
	case httpStatus:
		statusCode = v.HTTPStatus()
	case error:
		statusCode = http.StatusInternalServerError
	}

	data, contentType, err := resp.Encode()
	if err != nil {
		return err
	}

	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(statusCode)

	if statusCode == http.StatusNoContent || len(data) == 0 {
		return nil
	}

	if _, err := w.Write(data); err != nil {
		return err
	}

	return nil
}
