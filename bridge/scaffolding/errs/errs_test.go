package errs_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cultivarhq/cultivar/bridge/scaffolding/errs"
)

func TestNewf(t *testing.T) {
	err := errs.Newf(errs.NotFound, "task %s not found", "task-1")

	assert.Equal(t, "task task-1 not found", err.Error())
	assert.Equal(t, errs.NotFound, err.Code)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus())
	assert.NotEmpty(t, err.FileName)
	assert.NotEmpty(t, err.FuncName)
}

func TestEncode(t *testing.T) {
	err := errs.Newf(errs.InvalidArgument, "start_date is required")

	data, contentType, encErr := err.Encode()
	require.NoError(t, encErr)
	assert.Equal(t, "application/json", contentType)

	var body struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, "start_date is required", body.Error)
	assert.Equal(t, "invalid_argument", body.Code)
}

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		code errs.ErrCode
		want int
	}{
		{errs.InvalidArgument, http.StatusBadRequest},
		{errs.NotFound, http.StatusNotFound},
		{errs.Internal, http.StatusInternalServerError},
		{errs.InternalOnlyLog, http.StatusInternalServerError},
		{errs.AlreadyExists, http.StatusConflict},
		{errs.Unauthenticated, http.StatusUnauthorized},
		{errs.PermissionDenied, http.StatusForbidden},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, errs.Newf(tt.code, "x").HTTPStatus())
	}
}

func TestIsErrorAndGetError(t *testing.T) {
	appErr := errs.New(errs.NotFound, errors.New("missing"))
	wrapped := fmt.Errorf("handler: %w", appErr)

	assert.True(t, errs.IsError(wrapped))
	assert.False(t, errs.IsError(errors.New("plain")))

	got := errs.GetError(wrapped)
	assert.Equal(t, errs.NotFound, got.Code)
	assert.Equal(t, "missing", got.Message)

	assert.Equal(t, &errs.Error{}, errs.GetError(errors.New("plain")))
}
