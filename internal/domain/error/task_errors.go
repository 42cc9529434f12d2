// Package error defines domain-specific errors for the Atelier CRM application.
package error

import "errors"

// Task domain errors.
var (
	// ErrTaskNotFound is returned when a task is not found in the system.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidTaskStatus is returned when the task status is not a known value.
	ErrInvalidTaskStatus = errors.New("invalid task status")

	// ErrInvalidTaskPriority is returned when the task priority is not a known value.
	ErrInvalidTaskPriority = errors.New("invalid task priority")

	// ErrMissingTaskFields is returned when required task fields are missing.
	ErrMissingTaskFields = errors.New("missing required task fields")

	// ErrInvalidDueDate is returned when the due date cannot be parsed.
	ErrInvalidDueDate = errors.New("invalid due date")
)

// TaskErrorCode defines error codes for task errors.
// Format: TSK-XXYYYY where XX is category and YYYY is specific error.
type TaskErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingTaskFields   TaskErrorCode = "TSK-010001"
	ErrCodeInvalidTaskStatus   TaskErrorCode = "TSK-010002"
	ErrCodeInvalidTaskPriority TaskErrorCode = "TSK-010003"
	ErrCodeInvalidDueDate      TaskErrorCode = "TSK-010004"

	// Lookup errors (02XXXX)
	ErrCodeTaskNotFound TaskErrorCode = "TSK-020001"
)

// TaskError represents a task error with code and message.
type TaskError struct {
	Code    TaskErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TaskError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TaskError) Unwrap() error {
	return e.Err
}

// NewTaskError creates a new TaskError with the given code and message.
func NewTaskError(code TaskErrorCode, message string, err error) *TaskError {
	return &TaskError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
