package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors forming the service-wide taxonomy. Handlers translate
// these to HTTP statuses; anything unrecognized is an internal error
// answered with a generic message.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNoDraft      = errors.New("no draft profile")
	ErrNotPublished = errors.New("profile is not published")
)

// ValidationError carries a user-facing message for malformed input or
// policy violations (duplicate video, video cap, bad token).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
