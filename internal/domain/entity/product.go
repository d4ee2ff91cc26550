// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Expense products double as expense templates.
type Product struct {
	ID          uuid.UUID
	Name        string
	Code        *string // Cleared while the product is inactive
	Description *string
	BasePrice   decimal.Decimal
	CategoryID  *uuid.UUID
	OperatorID  *uuid.UUID
	Kind        Kind
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct creates a new active Product.
func NewProduct(
	name string,
	code *string,
	description *string,
	basePrice decimal.Decimal,
	categoryID *uuid.UUID,
	operatorID *uuid.UUID,
	kind Kind,
) *Product {
	now := time.Now().UTC()

	return &Product{
		ID:          uuid.New(),
		Name:        name,
		Code:        code,
		Description: description,
		BasePrice:   basePrice,
		CategoryID:  categoryID,
		OperatorID:  operatorID,
		Kind:        kind,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CodeValue returns the product code or an empty string.
func (p *Product) CodeValue() string {
	if p.Code == nil {
		return ""
	}
	return *p.Code
}

// DescriptionValue returns the description or an empty string.
func (p *Product) DescriptionValue() string {
	if p.Description == nil {
		return ""
	}
	return *p.Description
}

// Deactivate soft-deletes the product and frees its code for reuse.
func (p *Product) Deactivate() {
	p.Active = false
	p.Code = nil
	p.UpdatedAt = time.Now().UTC()
}

// Reactivate restores a soft-deleted product under a newly generated code.
func (p *Product) Reactivate(code string) {
	p.Active = true
	p.Code = &code
	p.UpdatedAt = time.Now().UTC()
}

// ProductWithCategory is a product joined with its (optional) category.
type ProductWithCategory struct {
	Product  *Product
	Category *Category
}
