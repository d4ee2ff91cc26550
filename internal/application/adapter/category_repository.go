// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finex/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindAll retrieves categories ordered by kind then name, optionally filtered by kind.
	FindAll(ctx context.Context, kind *entity.Kind) ([]*entity.Category, error)

	// ExistsByNameAndKind checks case-insensitively if a category name is taken within a kind.
	ExistsByNameAndKind(ctx context.Context, name string, kind entity.Kind) (bool, error)

	// Delete removes a category from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
