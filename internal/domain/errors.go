package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrUnauthorized ErrorCode = "UNAUTHORIZED"

	// Persistence errors
	ErrPersistence ErrorCode = "PERSISTENCE_FAILURE"

	// Session errors
	ErrAlreadyAnswered   ErrorCode = "ALREADY_ANSWERED"
	ErrIncompleteSession ErrorCode = "INCOMPLETE_SESSION"
	ErrNoQuestions       ErrorCode = "NO_QUESTIONS"

	// Progression errors
	ErrUnitLocked           ErrorCode = "UNIT_LOCKED"
	ErrOnboardingIncomplete ErrorCode = "ONBOARDING_INCOMPLETE"
	ErrOutcomeNotPassed     ErrorCode = "OUTCOME_NOT_PASSED"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// CodeOf returns the code of the first DomainError in err's chain, or ErrInternal.
func CodeOf(err error) ErrorCode {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ErrInternal
}

// HasCode reports whether err carries a DomainError with the given code.
func HasCode(err error, code ErrorCode) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Code == code
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(ErrNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(ErrUnauthorized, message, nil)
}

func NewPersistenceError(message string, err error) *DomainError {
	return NewError(ErrPersistence, message, err)
}

func NewAlreadyAnsweredError(questionID string) *DomainError {
	return NewError(ErrAlreadyAnswered, fmt.Sprintf("question already answered: %s", questionID), nil)
}

func NewIncompleteSessionError(answered, total int) *DomainError {
	return NewError(ErrIncompleteSession, fmt.Sprintf("session incomplete: %d of %d questions answered", answered, total), nil)
}

func NewNoQuestionsError(pos Position) *DomainError {
	return NewError(ErrNoQuestions, fmt.Sprintf("no approved questions for %s", pos), nil)
}

func NewUnitLockedError(pos Position) *DomainError {
	return NewError(ErrUnitLocked, fmt.Sprintf("unit %s is not available", pos), nil)
}

func NewOnboardingIncompleteError(step OnboardingStep) *DomainError {
	return NewError(ErrOnboardingIncomplete, fmt.Sprintf("onboarding incomplete, next step: %s", step), nil)
}

func NewOutcomeNotPassedError(mistakes int) *DomainError {
	return NewError(ErrOutcomeNotPassed, fmt.Sprintf("session not passed: %d mistakes, at most %d allowed", mistakes, MaxMistakes), nil)
}
