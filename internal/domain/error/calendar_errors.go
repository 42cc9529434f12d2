// Package error defines domain-specific errors for the Atelier CRM application.
package error

import "errors"

// Calendar domain errors.
var (
	// ErrInvalidDateKey is returned when a date key is not a valid YYYY-MM-DD string.
	ErrInvalidDateKey = errors.New("invalid date key")

	// ErrInvalidMonth is returned when a month query parameter is out of range.
	ErrInvalidMonth = errors.New("invalid month")

	// ErrMonthFetchFailed is returned when the month-level item fetch fails.
	ErrMonthFetchFailed = errors.New("failed to load month items")

	// ErrDateFetchFailed is returned when the day-level item fetch fails.
	ErrDateFetchFailed = errors.New("failed to load items for date")
)

// CalendarErrorCode defines error codes for calendar errors.
// Format: CAL-XXYYYY where XX is category and YYYY is specific error.
type CalendarErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDateKey CalendarErrorCode = "CAL-010001"
	ErrCodeInvalidMonth   CalendarErrorCode = "CAL-010002"

	// Fetch errors (02XXXX)
	ErrCodeMonthFetchFailed CalendarErrorCode = "CAL-020001"
	ErrCodeDateFetchFailed  CalendarErrorCode = "CAL-020002"
)

// CalendarError represents a calendar error with code and message.
type CalendarError struct {
	Code    CalendarErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CalendarError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CalendarError) Unwrap() error {
	return e.Err
}

// NewCalendarError creates a new CalendarError with the given code and message.
func NewCalendarError(code CalendarErrorCode, message string, err error) *CalendarError {
	return &CalendarError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
