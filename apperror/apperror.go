// Package apperror defines the application error taxonomy and its mapping to
// HTTP status codes. Handlers translate any error reaching them through
// FromError and respond with the client-safe message only.
package apperror

import (
	"errors"
	"net/http"
)

type ErrorType int

const (
	// Internal is an unspecified server-side failure.
	Internal ErrorType = iota
	// Database is a failure of the underlying store.
	Database
	// Auth covers invalid credentials and invalid or missing tokens.
	Auth
	// Forbidden is a valid identity acting outside its own records.
	Forbidden
	// NotFound means no record exists with the given identifier.
	NotFound
	// Validation is a missing or malformed request field.
	Validation
	// Conflict means the resource already exists, e.g. a taken username.
	Conflict
)

type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps the error type to its HTTP status. Credential failures map
// to 400 rather than 401 to match the public API contract.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case Database, Internal:
		return http.StatusInternalServerError
	case Auth:
		return http.StatusBadRequest
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Validation, Conflict:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func New(errType ErrorType, message string, err error) *AppError {
	return &AppError{Type: errType, Message: message, Err: err}
}

func NewDatabase(message string, err error) *AppError {
	return New(Database, message, err)
}

func NewAuth(message string, err error) *AppError {
	return New(Auth, message, err)
}

func NewForbidden(message string) *AppError {
	return New(Forbidden, message, nil)
}

func NewNotFound(message string) *AppError {
	return New(NotFound, message, nil)
}

func NewValidation(message string, err error) *AppError {
	return New(Validation, message, err)
}

func NewConflict(message string) *AppError {
	return New(Conflict, message, nil)
}

func NewInternal(message string, err error) *AppError {
	return New(Internal, message, err)
}

// FromError extracts an *AppError from err's chain, or wraps err as Internal
// so no raw error detail leaks to clients.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternal("internal server error", err)
}

// IsNotFound reports whether err is a NotFound application error.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == NotFound
}

// IsConflict reports whether err is a Conflict application error.
func IsConflict(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == Conflict
}
