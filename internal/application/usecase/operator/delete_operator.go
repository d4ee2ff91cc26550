// Package operator contains operator-related use cases.
package operator

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finex/backend/internal/application/adapter"
	domainerror "github.com/finex/backend/internal/domain/error"
)

// DeleteOperatorUseCase handles operator deletion logic.
type DeleteOperatorUseCase struct {
	operatorRepo adapter.OperatorRepository
}

// NewDeleteOperatorUseCase creates a new DeleteOperatorUseCase instance.
func NewDeleteOperatorUseCase(operatorRepo adapter.OperatorRepository) *DeleteOperatorUseCase {
	return &DeleteOperatorUseCase{
		operatorRepo: operatorRepo,
	}
}

// Execute deletes the operator.
func (uc *DeleteOperatorUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.operatorRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, domainerror.ErrOperatorNotFound) {
			return domainerror.NewOperatorError(
				domainerror.ErrCodeOperatorNotFound,
				"operator not found",
				err,
			)
		}
		return fmt.Errorf("failed to find operator: %w", err)
	}

	if err := uc.operatorRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete operator: %w", err)
	}

	return nil
}
