// Package error defines domain-specific errors for the Atelier CRM application.
package error

import "errors"

// Client domain errors.
var (
	// ErrClientNotFound is returned when a client is not found in the system.
	ErrClientNotFound = errors.New("client not found")

	// ErrClientPhoneExists is returned when a client with the phone number already exists.
	ErrClientPhoneExists = errors.New("client phone number already exists")

	// ErrMissingClientFields is returned when required client fields are missing.
	ErrMissingClientFields = errors.New("missing required client fields")

	// ErrNotAuthorizedToModifyClient is returned when the user does not own the client.
	ErrNotAuthorizedToModifyClient = errors.New("not authorized to modify client")
)

// ClientErrorCode defines error codes for client errors.
// Format: CLI-XXYYYY where XX is category and YYYY is specific error.
type ClientErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingClientFields ClientErrorCode = "CLI-010001"
	ErrCodeClientPhoneExists   ClientErrorCode = "CLI-010002"

	// Lookup errors (02XXXX)
	ErrCodeClientNotFound      ClientErrorCode = "CLI-020001"
	ErrCodeNotAuthorizedClient ClientErrorCode = "CLI-020002"
)

// ClientError represents a client error with code and message.
type ClientError struct {
	Code    ClientErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ClientError) Unwrap() error {
	return e.Err
}

// NewClientError creates a new ClientError with the given code and message.
func NewClientError(code ClientErrorCode, message string, err error) *ClientError {
	return &ClientError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
