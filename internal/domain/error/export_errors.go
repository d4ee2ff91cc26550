// Package error defines domain-specific errors for the Finex application.
package error

import "errors"

// Export domain errors.
var (
	// ErrNothingToExport is returned when the requested range holds no movements.
	ErrNothingToExport = errors.New("no movements in the selected period")

	// ErrExportRenderFailed is returned when the workbook could not be produced.
	ErrExportRenderFailed = errors.New("failed to render export")
)

// ExportErrorCode defines error codes for export errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExportErrorCode string

const (
	ErrCodeNothingToExport    ExportErrorCode = "EXP-010001"
	ErrCodeInvalidExportRange ExportErrorCode = "EXP-010002"
	ErrCodeExportRenderFailed ExportErrorCode = "EXP-020001"
)

// ExportError represents an export error with code and message.
type ExportError struct {
	Code    ExportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExportError) Unwrap() error {
	return e.Err
}

// NewExportError creates a new ExportError with the given code and message.
func NewExportError(code ExportErrorCode, message string, err error) *ExportError {
	return &ExportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
