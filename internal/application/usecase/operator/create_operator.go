// Package operator contains operator-related use cases.
package operator

import (
	"context"
	"fmt"
	"strings"

	"github.com/finex/backend/internal/application/adapter"
	"github.com/finex/backend/internal/domain/entity"
	domainerror "github.com/finex/backend/internal/domain/error"
)

// CreateOperatorInput represents the input for operator creation.
type CreateOperatorInput struct {
	Username string
	Name     string
	Color    entity.OperatorColor
}

// CreateOperatorOutput represents the output of operator creation.
type CreateOperatorOutput struct {
	Operator *entity.Operator
}

// CreateOperatorUseCase handles operator creation logic.
type CreateOperatorUseCase struct {
	operatorRepo adapter.OperatorRepository
}

// NewCreateOperatorUseCase creates a new CreateOperatorUseCase instance.
func NewCreateOperatorUseCase(operatorRepo adapter.OperatorRepository) *CreateOperatorUseCase {
	return &CreateOperatorUseCase{
		operatorRepo: operatorRepo,
	}
}

// Execute performs the operator creation.
func (uc *CreateOperatorUseCase) Execute(ctx context.Context, input CreateOperatorInput) (*CreateOperatorOutput, error) {
	username := entity.NormalizeUsername(input.Username)
	if username == "" || strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewOperatorError(
			domainerror.ErrCodeMissingOperatorFields,
			"username and name are required",
			nil,
		)
	}

	if !input.Color.IsValid() {
		return nil, domainerror.NewOperatorError(
			domainerror.ErrCodeInvalidOperatorColor,
			"color must be 'blue', 'purple' or 'orange'",
			domainerror.ErrInvalidOperatorColor,
		)
	}

	exists, err := uc.operatorRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check operator username: %w", err)
	}
	if exists {
		return nil, domainerror.NewOperatorError(
			domainerror.ErrCodeOperatorUsernameExists,
			"an operator with this username already exists",
			domainerror.ErrOperatorUsernameExists,
		)
	}

	operator := entity.NewOperator(username, input.Name, input.Color)
	if err := uc.operatorRepo.Create(ctx, operator); err != nil {
		return nil, fmt.Errorf("failed to create operator: %w", err)
	}

	return &CreateOperatorOutput{
		Operator: operator,
	}, nil
}
