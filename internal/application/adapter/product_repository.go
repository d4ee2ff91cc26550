// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finex/backend/internal/domain/entity"
)

// ProductPickerFilter defines the options of the paged product picker.
type ProductPickerFilter struct {
	OperatorID uuid.UUID
	Kind       entity.Kind
	Search     string // Case-insensitive match on name or code
	Offset     int
	Limit      int
}

// ProductPage is one page of picker results.
type ProductPage struct {
	Products []*entity.Product
	HasMore  bool
}

// ProductRepository defines the interface for product persistence operations.
// Every operation is scoped to a single operator.
type ProductRepository interface {
	// Create creates a new product in the database.
	Create(ctx context.Context, product *entity.Product) error

	// Update replaces the stored product with the given one.
	Update(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product of the operator by its ID.
	FindByID(ctx context.Context, id uuid.UUID, operatorID uuid.UUID) (*entity.Product, error)

	// FindByOperator retrieves the operator's products with their category.
	// Active products are ordered by creation date (newest first), inactive ones by name.
	FindByOperator(ctx context.Context, operatorID uuid.UUID, active bool) ([]*entity.ProductWithCategory, error)

	// FindCodesByPrefix returns every stored code of the operator starting with prefix,
	// regardless of the product being active.
	FindCodesByPrefix(ctx context.Context, operatorID *uuid.UUID, prefix string) ([]string, error)

	// ExistsActiveByName checks case-insensitively for an active product with the same name and kind.
	ExistsActiveByName(ctx context.Context, operatorID uuid.UUID, name string, kind entity.Kind) (bool, error)

	// SoftDelete marks products inactive and clears their code.
	// Returns the count of affected products.
	SoftDelete(ctx context.Context, ids []uuid.UUID, operatorID uuid.UUID) (int64, error)

	// DeleteInactive hard-deletes the given products when they are already inactive.
	// Returns the count of deleted products.
	DeleteInactive(ctx context.Context, ids []uuid.UUID, operatorID uuid.UUID) (int64, error)

	// DeleteAllInactive hard-deletes every inactive product of the given kind.
	DeleteAllInactive(ctx context.Context, operatorID uuid.UUID, kind entity.Kind) (int64, error)

	// Pick returns a page of active products for the picker.
	Pick(ctx context.Context, filter ProductPickerFilter) (*ProductPage, error)
}
