// Package apperror defines the error taxonomy shared by services and the
// HTTP layer: not-found, invalid identifiers, validation failures and
// internal/store failures.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeInternal   = "INTERNAL_ERROR"
	CodeDatabase   = "DATABASE_ERROR"
	CodeValidation = "VALIDATION_ERROR"
	CodeInvalidID  = "INVALID_ID"
	CodeNotFound   = "NOT_FOUND"
)

// AppError is the standard error type crossing service boundaries. The
// HTTPStatus is a suggestion for the transport layer; services never
// inspect it.
type AppError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	HTTPStatus int            `json:"-"`
	Err        error          `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a key-value pair to the error details.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// NewNotFound reports that no row with the given id exists.
func NewNotFound(entity string, id any) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", entity),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"entity": entity, "id": id},
	}
}

// NewInvalidID reports a malformed textual id that could not be parsed.
func NewInvalidID(entity, raw string) *AppError {
	return &AppError{
		Code:       CodeInvalidID,
		Message:    fmt.Sprintf("invalid %s id", entity),
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"entity": entity, "id": raw},
	}
}

// NewValidation creates a request validation error.
func NewValidation(message string) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewDatabase wraps a store failure.
func NewDatabase(err error) *AppError {
	return &AppError{
		Code:       CodeDatabase,
		Message:    "storage failure",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewInternal wraps any other unexpected failure.
func NewInternal(err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "internal error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// AsAppError extracts an AppError from the error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == CodeNotFound
	}
	return false
}

// IsInvalidID reports whether err is a malformed-id error.
func IsInvalidID(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == CodeInvalidID
	}
	return false
}

// HTTPStatus returns the status for any error, defaulting to 500.
func HTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}
