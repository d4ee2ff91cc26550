// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Movement is a single dated income or expense entry.
type Movement struct {
	ID          uuid.UUID
	CategoryID  *uuid.UUID
	OperatorID  *uuid.UUID
	ProductID   *uuid.UUID
	Kind        Kind
	Amount      decimal.Decimal
	Description *string
	Date        time.Time // Calendar date, time component is always midnight UTC
	CreatedAt   time.Time
}

// NewMovement creates a new Movement entity.
func NewMovement(
	kind Kind,
	amount decimal.Decimal,
	date time.Time,
	description *string,
	categoryID *uuid.UUID,
	operatorID *uuid.UUID,
	productID *uuid.UUID,
) *Movement {
	return &Movement{
		ID:          uuid.New(),
		CategoryID:  categoryID,
		OperatorID:  operatorID,
		ProductID:   productID,
		Kind:        kind,
		Amount:      amount,
		Description: description,
		Date:        time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Now().UTC(),
	}
}

// MovementDetail is a movement joined with its category, operator and product.
type MovementDetail struct {
	Movement *Movement
	Category *Category
	Operator *Operator
	Product  *Product
}

// MovementTotals holds derived totals. They are never stored.
type MovementTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}
