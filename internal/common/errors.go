// Package common defines shared sentinel errors and the validation error type
// used across the client layers. Callers should use errors.Is to match these
// values and errors.As to extract *ValidationError.
package common

import (
	"errors"
	"fmt"
)

var (
	// Error classes.
	ErrValidation = errors.New("validation error")
	ErrTransport  = errors.New("transport error")

	// File selection / upload errors.
	ErrNotCSV            = errors.New("file is not a csv")
	ErrNoFileSelected    = errors.New("no file selected")
	ErrUploadInProgress  = errors.New("upload in progress")
	ErrUploadSuperseded  = errors.New("upload superseded by a newer selection")
	ErrUnexpectedPayload = errors.New("unexpected response payload")

	// Month query errors.
	ErrEmptyMonth   = errors.New("empty month")
	ErrInvalidMonth = errors.New("invalid month")

	// Report form errors.
	ErrMissingField  = errors.New("missing required field")
	ErrInvalidNumber = errors.New("invalid number")
	ErrNegativeValue = errors.New("negative value")
)

// ValidationError is returned for bad user input that is rejected before any
// network call is made. Message is shown to the user as is.
type ValidationError struct {
	Message string
	Err     error
}

// NewValidationError builds a ValidationError for the given sentinel with a
// formatted user-facing message.
func NewValidationError(err error, format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...), Err: err}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap exposes both ErrValidation and the specific sentinel so either can be
// matched with errors.Is.
func (e *ValidationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Err}
}
