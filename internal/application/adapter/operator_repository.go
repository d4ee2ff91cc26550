// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finex/backend/internal/domain/entity"
)

// OperatorRepository defines the interface for operator persistence operations.
type OperatorRepository interface {
	// Create creates a new operator in the database.
	Create(ctx context.Context, operator *entity.Operator) error

	// FindByID retrieves an operator by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Operator, error)

	// FindByUsername retrieves an operator by its lowercase username.
	FindByUsername(ctx context.Context, username string) (*entity.Operator, error)

	// FindAll retrieves all operators ordered by name.
	FindAll(ctx context.Context) ([]*entity.Operator, error)

	// ExistsByUsername checks if an operator with the given username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Delete removes an operator from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
