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

// ErrCantConvert indicates that no exchange rate could be resolved for a
// currency pair, even though the individual currencies may exist.
var ErrCantConvert = errors.New("cannot convert between currencies")

// ErrUnavailable indicates that the underlying data store could not be
// reached or failed transiently. This is the only kind callers may retry.
var ErrUnavailable = errors.New("data store unavailable")

// AppError carries an HTTP-like status code and a human-readable reason.
// It unwraps to one of the sentinel errors above (or to the underlying cause)
// so errors.Is keeps working across layers.
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

// NewAppError wraps an underlying error with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError creates an AppError that matches ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}

// NewNotFoundError creates an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewDuplicateError creates an AppError that matches ErrDuplicate.
func NewDuplicateError(message string) *AppError {
	return &AppError{Code: 409, Message: message, Err: ErrDuplicate}
}

// NewCantConvertError creates an AppError that matches ErrCantConvert.
func NewCantConvertError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrCantConvert}
}
