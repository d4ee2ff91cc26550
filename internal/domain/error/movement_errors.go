// Package error defines domain-specific errors for the Finex application.
package error

import "errors"

// Movement domain errors.
var (
	// ErrMovementNotFound is returned when a movement is not found.
	ErrMovementNotFound = errors.New("movement not found")

	// ErrInvalidMovementAmount is returned when the amount is not a number greater than zero.
	ErrInvalidMovementAmount = errors.New("invalid amount")

	// ErrMovementDateRequired is returned when the date is missing or malformed.
	ErrMovementDateRequired = errors.New("date is required (YYYY-MM-DD)")

	// ErrInvalidMovementType is returned when the movement type is invalid.
	ErrInvalidMovementType = errors.New("invalid movement type")

	// ErrMovementCategoryMismatch is returned when the category kind differs from the movement kind.
	ErrMovementCategoryMismatch = errors.New("category type does not match movement type")

	// ErrMovementProductUnavailable is returned when the product is inactive or of another kind.
	ErrMovementProductUnavailable = errors.New("product is not available for this movement")

	// ErrInvalidDateRange is returned when a range is incomplete or start is after end.
	ErrInvalidDateRange = errors.New("invalid date range")
)

// MovementErrorCode defines error codes for movement errors.
// Format: MOV-XXYYYY where XX is category and YYYY is specific error.
type MovementErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMovementAmount      MovementErrorCode = "MOV-010001"
	ErrCodeMovementDateRequired       MovementErrorCode = "MOV-010002"
	ErrCodeInvalidMovementType        MovementErrorCode = "MOV-010003"
	ErrCodeMovementNotFound           MovementErrorCode = "MOV-010004"
	ErrCodeMovementCategoryMismatch   MovementErrorCode = "MOV-010005"
	ErrCodeMovementProductUnavailable MovementErrorCode = "MOV-010006"
	ErrCodeInvalidDateRange           MovementErrorCode = "MOV-010007"
)

// MovementError represents a movement error with code and message.
type MovementError struct {
	Code    MovementErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MovementError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MovementError) Unwrap() error {
	return e.Err
}

// NewMovementError creates a new MovementError with the given code and message.
func NewMovementError(code MovementErrorCode, message string, err error) *MovementError {
	return &MovementError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
