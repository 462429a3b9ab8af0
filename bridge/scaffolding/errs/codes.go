package errs

import "net/http"

// ErrCode represents a code for a handled error.
type ErrCode int

// Set of error codes the bridge layer responds with.
const (
	OK ErrCode = iota
	Internal
	InternalOnlyLog
	InvalidArgument
	NotFound
	AlreadyExists
	FailedPrecondition
	Unauthenticated
	PermissionDenied
	Unavailable
)

var codeNames = map[ErrCode]string{
	OK:                 "ok",
	Internal:           "internal",
	InternalOnlyLog:    "internal",
	InvalidArgument:    "invalid_argument",
	NotFound:           "not_found",
	AlreadyExists:      "already_exists",
	FailedPrecondition: "failed_precondition",
	Unauthenticated:    "unauthenticated",
	PermissionDenied:   "permission_denied",
	Unavailable:        "unavailable",
}

var httpStatus = map[ErrCode]int{
	OK:                 http.StatusOK,
	Internal:           http.StatusInternalServerError,
	InternalOnlyLog:    http.StatusInternalServerError,
	InvalidArgument:    http.StatusBadRequest,
	NotFound:           http.StatusNotFound,
	AlreadyExists:      http.StatusConflict,
	FailedPrecondition: http.StatusBadRequest,
	Unauthenticated:    http.StatusUnauthorized,
	PermissionDenied:   http.StatusForbidden,
	Unavailable:        http.StatusServiceUnavailable,
}

// String returns the snake_case name for the code.
func (c ErrCode) String() string {
	name, ok := codeNames[c]
	if !ok {
		return "unknown"
	}
	return name
}
