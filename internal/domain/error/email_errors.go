// Package error defines domain-specific errors for the Atelier CRM application.
package error

import "errors"

// Email domain errors.
var (
	// ErrInvalidTemplate is returned when a queued job names an unknown template.
	ErrInvalidTemplate = errors.New("invalid email template")

	// ErrEmailJobNotFound is returned when an email job is not found.
	ErrEmailJobNotFound = errors.New("email job not found")
)

// EmailErrorCode defines error codes for email errors.
// Format: EMAIL-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	// Queue errors (01XXXX)
	ErrCodeEmailQueueFailed EmailErrorCode = "EMAIL-010001"

	// Send errors (02XXXX). Permanent failures are never retried;
	// temporary ones go back to the queue with backoff.
	ErrCodePermanentEmailFailure EmailErrorCode = "EMAIL-020001"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EMAIL-020002"

	// Template errors (03XXXX)
	ErrCodeInvalidTemplate EmailErrorCode = "EMAIL-030001"
)

// EmailError represents an email error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
