package apperrors

import (
	"errors"
	"strings"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrJobNotFound      = errors.New("job not found")
	ErrEventNotFound    = errors.New("event not found")
	ErrMessageNotFound  = errors.New("message not found")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")
	ErrAdminProtected   = errors.New("admin accounts cannot be modified")

	// Validation errors
	ErrValidationFailed      = errors.New("validation failed")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrInvalidEmail          = errors.New("invalid email format")
	ErrInvalidDate           = errors.New("invalid date format")
	ErrInvalidGraduationYear = errors.New("invalid graduation year")
	ErrBadRequest            = errors.New("bad request")
)

// FieldError describes a single violated rule on a submission field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every violated rule for one submission so the
// caller can report the complete list rather than the first failure.
type ValidationError struct {
	Violations []FieldError
}

// NewValidationError creates an empty validation error accumulator
func NewValidationError() *ValidationError {
	return &ValidationError{Violations: make([]FieldError, 0)}
}

// Add records a violated rule
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Violations = append(e.Violations, FieldError{Field: field, Message: message})
	return e
}

// HasErrors reports whether any rule was violated
func (e *ValidationError) HasErrors() bool {
	return len(e.Violations) > 0
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return ErrValidationFailed.Error()
	}
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Unwrap lets errors.Is match ErrValidationFailed
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
