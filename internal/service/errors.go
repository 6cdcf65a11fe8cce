package service

import (
	"errors"
	"strings"
)

// ValidationError reports client input that cannot be accepted. Message is
// safe to return to the caller as is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err carries a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// trimmed returns the trimmed value of s and false when s is nil or blank.
func trimmed(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	v := strings.TrimSpace(*s)
	return v, v != ""
}

func outcomeOf(err error, notFound error) string {
	switch {
	case err == nil:
		return "success"
	case IsValidationError(err):
		return "bad_request"
	case notFound != nil && errors.Is(err, notFound):
		return "not_found"
	default:
		return "error"
	}
}
