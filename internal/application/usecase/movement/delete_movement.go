// Package movement contains movement-related use cases.
package movement

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finex/backend/internal/application/adapter"
	domainerror "github.com/finex/backend/internal/domain/error"
)

// DeleteMovementUseCase handles movement deletion logic.
type DeleteMovementUseCase struct {
	movementRepo adapter.MovementRepository
}

// NewDeleteMovementUseCase creates a new DeleteMovementUseCase instance.
func NewDeleteMovementUseCase(movementRepo adapter.MovementRepository) *DeleteMovementUseCase {
	return &DeleteMovementUseCase{
		movementRepo: movementRepo,
	}
}

// Execute hard-deletes the movement.
func (uc *DeleteMovementUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.movementRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, domainerror.ErrMovementNotFound) {
			return domainerror.NewMovementError(
				domainerror.ErrCodeMovementNotFound,
				"movement not found",
				err,
			)
		}
		return fmt.Errorf("failed to find movement: %w", err)
	}

	if err := uc.movementRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete movement: %w", err)
	}

	return nil
}
