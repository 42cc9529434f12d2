// Package error defines domain-specific errors for the Atelier CRM application.
package error

import "errors"

// Order domain errors.
var (
	// ErrOrderNotFound is returned when an order is not found in the system.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidOrderStatus is returned when the order status is not a known value.
	ErrInvalidOrderStatus = errors.New("invalid order status")

	// ErrInvalidOrderAmount is returned when the order amount is not positive.
	ErrInvalidOrderAmount = errors.New("invalid order amount")

	// ErrMissingOrderFields is returned when required order fields are missing.
	ErrMissingOrderFields = errors.New("missing required order fields")

	// ErrNotAuthorizedToModifyOrder is returned when the user does not own the order.
	ErrNotAuthorizedToModifyOrder = errors.New("not authorized to modify order")
)

// OrderErrorCode defines error codes for order errors.
// Format: ORD-XXYYYY where XX is category and YYYY is specific error.
type OrderErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingOrderFields OrderErrorCode = "ORD-010001"
	ErrCodeInvalidOrderStatus OrderErrorCode = "ORD-010002"
	ErrCodeInvalidOrderAmount OrderErrorCode = "ORD-010003"

	// Lookup errors (02XXXX)
	ErrCodeOrderNotFound      OrderErrorCode = "ORD-020001"
	ErrCodeNotAuthorizedOrder OrderErrorCode = "ORD-020002"
)

// OrderError represents an order error with code and message.
type OrderError struct {
	Code    OrderErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *OrderError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *OrderError) Unwrap() error {
	return e.Err
}

// NewOrderError creates a new OrderError with the given code and message.
func NewOrderError(code OrderErrorCode, message string, err error) *OrderError {
	return &OrderError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
