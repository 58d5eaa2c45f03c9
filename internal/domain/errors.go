package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"

	// Request validation
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Assessment errors
	CodeInvalidSelection     ErrorCode = "INVALID_SELECTION_REQUEST"
	CodeDanglingReference    ErrorCode = "DANGLING_RESPONSE_REFERENCE"
	CodeInvalidSubmission    ErrorCode = "INVALID_SUBMISSION"
	CodeTestSessionNotFound  ErrorCode = "TEST_SESSION_NOT_FOUND"
	CodeLearnerNotFound      ErrorCode = "LEARNER_NOT_FOUND"
	CodeAttemptNotFound      ErrorCode = "ATTEMPT_NOT_FOUND"
	CodeTaskNotFound         ErrorCode = "TASK_NOT_FOUND"
	CodeDrivingLogNotFound   ErrorCode = "DRIVING_LOG_NOT_FOUND"
	CodePersistenceFailure   ErrorCode = "PERSISTENCE_FAILURE"
	CodeCatalogNotConfigured ErrorCode = "CATALOG_NOT_CONFIGURED"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// WithContext attaches a key/value pair reported alongside the error.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Context map[string]interface{} `json:"context,omitempty"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
		Context: e.Context,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// HasCode reports whether err is, or wraps, a DomainError with the given code.
func HasCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewValidationError(message string) *DomainError {
	return NewError(CodeValidation, message, nil)
}

// NewInvalidSelectionError reports a non-positive count or an unknown group filter.
func NewInvalidSelectionError(message string) *DomainError {
	return NewError(CodeInvalidSelection, message, nil)
}

// NewDanglingReferenceError reports a response whose item does not exist.
// It is a data-integrity fault and is kept distinct from validation errors.
func NewDanglingReferenceError(itemID string) *DomainError {
	return NewError(CodeDanglingReference, fmt.Sprintf("response references unknown item: %s", itemID), nil).
		WithContext("item_id", itemID)
}

func NewInvalidSubmissionError(message string) *DomainError {
	return NewError(CodeInvalidSubmission, message, nil)
}

func NewTestSessionNotFoundError(testID string) *DomainError {
	return NewError(CodeTestSessionNotFound, fmt.Sprintf("test session not found or expired: %s", testID), nil)
}

func NewLearnerNotFoundError(learnerID string) *DomainError {
	return NewError(CodeLearnerNotFound, fmt.Sprintf("learner not found with ID: %s", learnerID), nil)
}

func NewAttemptNotFoundError(attemptID string) *DomainError {
	return NewError(CodeAttemptNotFound, fmt.Sprintf("attempt not found with ID: %s", attemptID), nil)
}

func NewTaskNotFoundError(taskID string) *DomainError {
	return NewError(CodeTaskNotFound, fmt.Sprintf("task not found with ID: %s", taskID), nil)
}

func NewDrivingLogNotFoundError(logID string) *DomainError {
	return NewError(CodeDrivingLogNotFound, fmt.Sprintf("driving log not found with ID: %s", logID), nil)
}

// NewPersistenceError wraps a failed store write. Callers propagate it; no retry happens here.
func NewPersistenceError(message string, err error) *DomainError {
	return NewError(CodePersistenceFailure, message, err)
}

// ValidationError describes one invalid request field.
type ValidationError struct {
	Field   string    `json:"field"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every field problem found in a request.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Code: CodeMissingField, Message: "field is required"}
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{Field: field, Code: CodeInvalidFormat, Message: fmt.Sprintf("invalid format: %v", value)}
}

func NewOutOfRangeError(field string, value interface{}, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeOutOfRange,
		Message: fmt.Sprintf("value %v out of range [%d, %d]", value, min, max),
	}
}
