package errorqueue

import (
	"errors"
	"fmt"
)

// AppError is a user-visible failure with an optional chained cause.
// Transient errors mark expected non-failures such as a cancelled dialog.
type AppError struct {
	Message   string
	Cause     error
	Transient bool
}

// New creates an AppError from a message
func New(message string) *AppError {
	return &AppError{Message: message}
}

// Newf creates an AppError from a format string
func Newf(format string, args ...any) *AppError {
	return &AppError{Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an AppError with a message and its cause
func Wrap(message string, cause error) *AppError {
	return &AppError{Message: message, Cause: cause}
}

// Transient creates an error that never reaches the visible queue
func Transient(message string) *AppError {
	return &AppError{Message: message, Transient: true}
}

// FromError converts any error into an AppError, keeping an existing one as is.
func FromError(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{Message: err.Error(), Cause: err}
}

// Error implements error
func (e *AppError) Error() string {
	if e.Cause != nil && e.Cause.Error() != e.Message {
		return fmt.Sprintf("%s (caused by: %v)", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the cause
func (e *AppError) Unwrap() error {
	return e.Cause
}

// IsTransient reports whether err carries a transient AppError.
func IsTransient(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Transient
	}
	return false
}
