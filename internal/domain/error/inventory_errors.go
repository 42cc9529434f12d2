// Package error defines domain-specific errors for the Atelier CRM application.
package error

import "errors"

// Inventory domain errors.
var (
	// ErrInventoryItemNotFound is returned when an inventory item is not found.
	ErrInventoryItemNotFound = errors.New("inventory item not found")

	// ErrSKUExists is returned when an inventory item with the SKU already exists.
	ErrSKUExists = errors.New("sku already exists")

	// ErrInvalidQuantity is returned when the quantity is negative.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrMissingInventoryFields is returned when required inventory fields are missing.
	ErrMissingInventoryFields = errors.New("missing required inventory fields")
)

// InventoryErrorCode defines error codes for inventory errors.
// Format: INV-XXYYYY where XX is category and YYYY is specific error.
type InventoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingInventoryFields InventoryErrorCode = "INV-010001"
	ErrCodeSKUExists              InventoryErrorCode = "INV-010002"
	ErrCodeInvalidQuantity        InventoryErrorCode = "INV-010003"

	// Lookup errors (02XXXX)
	ErrCodeInventoryItemNotFound InventoryErrorCode = "INV-020001"
)

// InventoryError represents an inventory error with code and message.
type InventoryError struct {
	Code    InventoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InventoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InventoryError) Unwrap() error {
	return e.Err
}

// NewInventoryError creates a new InventoryError with the given code and message.
func NewInventoryError(code InventoryErrorCode, message string, err error) *InventoryError {
	return &InventoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
