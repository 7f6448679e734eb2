package errors

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// FromStatus maps a backend HTTP status and its error message to an AppError.
// message is shown to the user; a blank message falls back to a generic one.
func FromStatus(status int, message string, cause error) *AppError {
	message = strings.TrimSpace(message)
	withDefault := func(def string) string {
		if message == "" {
			return def
		}
		return message
	}

	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return &AppError{Code: ErrCodeValidation, Message: withDefault("The request was rejected."), Cause: cause}
	case status == http.StatusUnauthorized:
		return &AppError{Code: ErrCodeUnauthorized, Message: withDefault("Your session has expired. Please sign in again."), Cause: cause}
	case status == http.StatusForbidden:
		return &AppError{Code: ErrCodeForbidden, Message: withDefault("You are not allowed to do that."), Cause: cause}
	case status == http.StatusNotFound:
		return &AppError{Code: ErrCodeNotFound, Message: withDefault("Resource not found"), Cause: cause}
	case status == http.StatusConflict:
		return &AppError{Code: ErrCodeConflict, Message: withDefault("This value already exists."), Cause: cause}
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		return &AppError{Code: ErrCodeTimeout, Message: withDefault("Request timed out. Please try again."), Cause: cause}
	default:
		return &AppError{Code: ErrCodeUpstream, Message: withDefault("The salon service is unavailable. Please try again."), Cause: cause}
	}
}

// MapTransportError maps context and transport failures to AppError instances.
// Errors that are already AppErrors are returned unchanged.
func MapTransportError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &AppError{
			Code:    ErrCodeTimeout,
			Message: "Request timed out. Please try again.",
			Cause:   err,
		}
	}
	if errors.Is(err, context.Canceled) {
		return &AppError{
			Code:    ErrCodeCanceled,
			Message: "Request was canceled.",
			Cause:   err,
		}
	}
	return &AppError{
		Code:    ErrCodeUpstream,
		Message: "The salon service is unavailable. Please try again.",
		Cause:   err,
	}
}

// HTTPStatus returns the status code this service answers with for err.
func HTTPStatus(err error) int {
	switch GetCode(err) {
	case ErrCodeValidation:
		return http.StatusBadRequest
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case ErrCodeUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
