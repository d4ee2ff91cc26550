// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finex/backend/internal/domain/entity"
	"github.com/finex/backend/internal/domain/valueobject"
)

// SortOrder selects the date ordering of a movement query.
type SortOrder int

const (
	// NewestFirst orders by date descending, used on screen.
	NewestFirst SortOrder = iota
	// OldestFirst orders by date ascending, used by the export.
	OldestFirst
)

// MovementRepository defines the interface for movement persistence operations.
type MovementRepository interface {
	// Create creates a new movement in the database.
	Create(ctx context.Context, movement *entity.Movement) error

	// FindByID retrieves a movement by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movement, error)

	// FindByRange retrieves every movement dated within the inclusive range,
	// joined with its category, operator and product.
	FindByRange(ctx context.Context, dateRange valueobject.DateRange, order SortOrder) ([]*entity.MovementDetail, error)

	// Delete removes a movement from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
