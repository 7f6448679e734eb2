// Package errors is the error taxonomy shared by the backend client, the
// services and the handlers. Handlers pick status codes and banners by Code.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	ErrCodeNotFound     ErrorCode = "not_found"
	ErrCodeConflict     ErrorCode = "conflict"
	ErrCodeValidation   ErrorCode = "validation"
	ErrCodeUnauthorized ErrorCode = "unauthorized" // missing or rejected bearer credential
	ErrCodeForbidden    ErrorCode = "forbidden"
	ErrCodeUpstream     ErrorCode = "upstream" // backend failed or answered unexpectedly
	ErrCodeInternal     ErrorCode = "internal"
	ErrCodeTimeout      ErrorCode = "timeout"
	ErrCodeCanceled     ErrorCode = "canceled"
)

// AppError carries a code, a message safe to show in the browser, and an optional cause.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
	// Field names the offending form field for single-field validation errors.
	Field string
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Cause }

// New builds an AppError without a cause.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// NotFound is a missing resource.
func NotFound(message string) *AppError { return New(ErrCodeNotFound, message) }

// Validation is a form-level validation failure.
func Validation(message string) *AppError { return New(ErrCodeValidation, message) }

// ValidationField is a validation failure tied to one form field.
func ValidationField(field, message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Field: field}
}

// Unauthorized means the bearer credential is gone; callers end the session.
func Unauthorized(message string) *AppError { return New(ErrCodeUnauthorized, message) }

// Forbidden means the acting role may not do this.
func Forbidden(message string) *AppError { return New(ErrCodeForbidden, message) }

// Upstream wraps a backend failure.
func Upstream(message string, cause error) *AppError {
	return &AppError{Code: ErrCodeUpstream, Message: message, Cause: cause}
}

// GetCode returns the code of the outermost AppError in err's chain, or "".
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// GetField returns the Field of the AppError in err's chain, or "".
func GetField(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Field
	}
	return ""
}

func IsNotFound(err error) bool     { return GetCode(err) == ErrCodeNotFound }
func IsConflict(err error) bool     { return GetCode(err) == ErrCodeConflict }
func IsValidation(err error) bool   { return GetCode(err) == ErrCodeValidation }
func IsUnauthorized(err error) bool { return GetCode(err) == ErrCodeUnauthorized }
func IsForbidden(err error) bool    { return GetCode(err) == ErrCodeForbidden }
func IsUpstream(err error) bool     { return GetCode(err) == ErrCodeUpstream }
func IsTimeout(err error) bool      { return GetCode(err) == ErrCodeTimeout }
func IsCanceled(err error) bool     { return GetCode(err) == ErrCodeCanceled }
