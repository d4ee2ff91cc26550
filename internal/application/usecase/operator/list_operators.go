// Package operator contains operator-related use cases.
package operator

import (
	"context"
	"log/slog"

	"github.com/finex/backend/internal/application/adapter"
	"github.com/finex/backend/internal/domain/entity"
)

// ListOperatorsOutput represents the output of listing operators.
type ListOperatorsOutput struct {
	Operators []*entity.Operator
}

// ListOperatorsUseCase handles listing operators logic.
type ListOperatorsUseCase struct {
	operatorRepo adapter.OperatorRepository
}

// NewListOperatorsUseCase creates a new ListOperatorsUseCase instance.
func NewListOperatorsUseCase(operatorRepo adapter.OperatorRepository) *ListOperatorsUseCase {
	return &ListOperatorsUseCase{
		operatorRepo: operatorRepo,
	}
}

// Execute lists all operators ordered by name. Read failures yield an empty list.
func (uc *ListOperatorsUseCase) Execute(ctx context.Context) *ListOperatorsOutput {
	operators, err := uc.operatorRepo.FindAll(ctx)
	if err != nil {
		slog.Warn("failed to list operators", "error", err)
		operators = []*entity.Operator{}
	}

	return &ListOperatorsOutput{
		Operators: operators,
	}
}
