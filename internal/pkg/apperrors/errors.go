package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrActivityNotFound = errors.New("activity not found")
	ErrUserNotFound     = errors.New("user not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrBadRequest       = errors.New("bad request")

	// Participation errors
	ErrCapacityExceeded = errors.New("activity is at capacity")
	ErrNotParticipant   = errors.New("user is not a participant of this activity")

	// Collaborator errors. Recovered internally via fallback text; this
	// sentinel never crosses the suggestion provider boundary.
	ErrCollaboratorUnavailable = errors.New("suggestion collaborator unavailable")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewValidationError creates a new custom error for rejected input with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewCapacityExceededError creates a new custom error for joins on full activities
func NewCapacityExceededError(message string) error {
	return &CustomError{
		Err:     ErrCapacityExceeded,
		Message: message,
	}
}

// NewNotParticipantError creates a new custom error for chat policy violations
func NewNotParticipantError(message string) error {
	return &CustomError{
		Err:     ErrNotParticipant,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
