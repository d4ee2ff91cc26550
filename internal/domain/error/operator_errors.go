// Package error defines domain-specific errors for the Finex application.
package error

import "errors"

// Operator domain errors.
var (
	// ErrOperatorNotFound is returned when an operator is not found.
	ErrOperatorNotFound = errors.New("operator not found")

	// ErrOperatorUsernameExists is returned when the lowercased username is already taken.
	ErrOperatorUsernameExists = errors.New("operator username already exists")

	// ErrInvalidOperatorColor is returned when the colour tag is not part of the palette.
	ErrInvalidOperatorColor = errors.New("invalid operator color")
)

// OperatorErrorCode defines error codes for operator errors.
// Format: OPR-XXYYYY where XX is category and YYYY is specific error.
type OperatorErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingOperatorFields  OperatorErrorCode = "OPR-010001"
	ErrCodeInvalidOperatorColor   OperatorErrorCode = "OPR-010002"
	ErrCodeOperatorNotFound       OperatorErrorCode = "OPR-010004"
	ErrCodeOperatorUsernameExists OperatorErrorCode = "OPR-010005"
)

// OperatorError represents an operator error with code and message.
type OperatorError struct {
	Code    OperatorErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *OperatorError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *OperatorError) Unwrap() error {
	return e.Err
}

// NewOperatorError creates a new OperatorError with the given code and message.
func NewOperatorError(code OperatorErrorCode, message string, err error) *OperatorError {
	return &OperatorError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
