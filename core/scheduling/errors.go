package scheduling

import (
	"errors"
	"fmt"
)

// ValidationError reports a request rejected before any store call. It is
// never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// Set of validation errors the engine can reject a request with.
var (
	ErrNoTargets         = &ValidationError{Field: "targets", Reason: "no plant or space selected"}
	ErrInvalidTarget     = &ValidationError{Field: "targets", Reason: "target must reference a plant or a space"}
	ErrMissingTitle      = &ValidationError{Field: "title", Reason: "the task must have a name"}
	ErrMissingStartDate  = &ValidationError{Field: "start_date", Reason: "a start date is required"}
	ErrNoRecurrence      = &ValidationError{Field: "recurrence_id", Reason: "task is not part of a recurring series"}
	ErrNoIDs             = &ValidationError{Field: "ids", Reason: "no task ids supplied"}
	ErrUnknownScope      = &ValidationError{Field: "scope", Reason: "unknown edit scope"}
	ErrUnknownDeleteMode = &ValidationError{Field: "scope", Reason: "unknown delete scope"}
)

// IsValidation reports whether err is a request validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
