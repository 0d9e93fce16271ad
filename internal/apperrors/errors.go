package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnbalanced indicates that a journal entry's debit and credit totals differ
// beyond the accepted tolerance.
var ErrUnbalanced = errors.New("journal entry is not balanced")

// ErrRateUnavailable indicates that no exchange rate could be resolved for a
// currency pair while the lookup policy forbids falling back to 1:1.
var ErrRateUnavailable = errors.New("exchange rate unavailable")

// ErrDateOutOfWindow indicates a document date outside its financial year window.
var ErrDateOutOfWindow = errors.New("date outside financial year window")

// ErrYearClosed indicates an attempt to post a document into a closed financial year.
var ErrYearClosed = errors.New("financial year is closed")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code alongside a message and cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping an underlying cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError creates an AppError tagged as a validation failure.
func NewValidationError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}
