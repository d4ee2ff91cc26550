// Package error defines domain-specific errors for the Finex application.
package error

import "errors"

// Product domain errors.
var (
	// ErrProductNotFound is returned when a product is not found for the operator.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductInactive is returned when an edit targets a soft-deleted product.
	ErrProductInactive = errors.New("product is deleted")

	// ErrProductNameAndPriceRequired is returned when name or base price are missing.
	ErrProductNameAndPriceRequired = errors.New("name and price are required")

	// ErrInvalidProductPrice is returned when the base price is not a non-negative number.
	ErrInvalidProductPrice = errors.New("invalid price")

	// ErrProductCategoryMismatch is returned when the category kind differs from the product kind.
	ErrProductCategoryMismatch = errors.New("category type does not match product type")

	// ErrProductNameExists is returned when an active product with the same name and kind exists.
	ErrProductNameExists = errors.New("product name already exists")

	// ErrProductCodeExists is returned when a product code is already used by the operator.
	ErrProductCodeExists = errors.New("product code already exists")

	// ErrInvalidProductType is returned when the product type is invalid.
	ErrInvalidProductType = errors.New("invalid product type")

	// ErrNoProductsSelected is returned when a bulk operation receives no ids.
	ErrNoProductsSelected = errors.New("no products selected")

	// ErrCodeGenerationExhausted is returned when code generation keeps colliding.
	ErrCodeGenerationExhausted = errors.New("could not allocate a unique product code")
)

// ProductErrorCode defines error codes for product errors.
// Format: PRD-XXYYYY where XX is category and YYYY is specific error.
type ProductErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingProductFields    ProductErrorCode = "PRD-010001"
	ErrCodeInvalidProductPrice     ProductErrorCode = "PRD-010002"
	ErrCodeProductNotFound         ProductErrorCode = "PRD-010003"
	ErrCodeProductCategoryMismatch ProductErrorCode = "PRD-010004"
	ErrCodeProductNameExists       ProductErrorCode = "PRD-010005"
	ErrCodeProductCodeExists       ProductErrorCode = "PRD-010006"
	ErrCodeInvalidProductType      ProductErrorCode = "PRD-010007"
	ErrCodeNoProductsSelected      ProductErrorCode = "PRD-010008"

	// Code generation errors (02XXXX)
	ErrCodeCodeGenerationExhausted ProductErrorCode = "PRD-020001"
)

// ProductError represents a product error with code and message.
type ProductError struct {
	Code    ProductErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProductError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProductError) Unwrap() error {
	return e.Err
}

// NewProductError creates a new ProductError with the given code and message.
func NewProductError(code ProductErrorCode, message string, err error) *ProductError {
	return &ProductError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
