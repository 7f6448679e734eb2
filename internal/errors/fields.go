package errors

import (
	"errors"
	"sort"
	"strings"
)

// FieldErrors collects per-field validation messages for form re-rendering.
type FieldErrors map[string]string

// Add records msg for field, keeping the first message per field.
func (fe FieldErrors) Add(field, msg string) {
	if _, ok := fe[field]; !ok {
		fe[field] = msg
	}
}

// Required records "<label> is required" when value is blank.
func (fe FieldErrors) Required(field, value, label string) {
	if strings.TrimSpace(value) == "" {
		fe.Add(field, label+" is required")
	}
}

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return strings.Join(parts, "; ")
}

// Err returns nil when no field failed, otherwise a Validation AppError wrapping fe.
func (fe FieldErrors) Err() error {
	if len(fe) == 0 {
		return nil
	}
	msg := "Please fix the highlighted fields."
	if len(fe) == 1 {
		for _, m := range fe {
			msg = m
		}
	}
	return &AppError{Code: ErrCodeValidation, Message: msg, Cause: fe}
}

// Fields extracts per-field messages from err. A single-field AppError
// yields a one-entry map; anything else yields nil.
func Fields(err error) FieldErrors {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Field != "" {
		return FieldErrors{appErr.Field: appErr.Message}
	}
	return nil
}
