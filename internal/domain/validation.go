package domain

import (
	"fmt"
	"strings"
)

// ValidationError represents a validation error on a single field
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(message string) error {
	return NewError(ErrInvalidInput, message, nil)
}

// ValidationErrors collects field errors for one request
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "is required"}
}

func NewInvalidFormatError(field string, value any) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("has invalid format: %v", value)}
}

func NewOutOfRangeError(field string, value any, min, max int) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("%v is out of range [%d,%d]", value, min, max)}
}
