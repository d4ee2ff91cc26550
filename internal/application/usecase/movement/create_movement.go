// Package movement contains movement-related use cases.
package movement

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finex/backend/internal/application/adapter"
	"github.com/finex/backend/internal/domain/entity"
	domainerror "github.com/finex/backend/internal/domain/error"
	"github.com/finex/backend/internal/domain/valueobject"
)

// CreateMovementInput represents the input for movement creation.
type CreateMovementInput struct {
	Kind        entity.Kind
	Amount      string // Defaults to the product base price when empty
	Date        string // YYYY-MM-DD
	CategoryID  *uuid.UUID
	ProductID   *uuid.UUID
	Description string
}

// CreateMovementOutput represents the output of movement creation.
type CreateMovementOutput struct {
	Movement *entity.Movement
}

// CreateMovementUseCase handles movement creation logic.
type CreateMovementUseCase struct {
	movementRepo adapter.MovementRepository
	categoryRepo adapter.CategoryRepository
	productRepo  adapter.ProductRepository
}

// NewCreateMovementUseCase creates a new CreateMovementUseCase instance.
func NewCreateMovementUseCase(
	movementRepo adapter.MovementRepository,
	categoryRepo adapter.CategoryRepository,
	productRepo adapter.ProductRepository,
) *CreateMovementUseCase {
	return &CreateMovementUseCase{
		movementRepo: movementRepo,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// Execute records a movement for the session operator.
func (uc *CreateMovementUseCase) Execute(ctx context.Context, session *entity.Session, input CreateMovementInput) (*CreateMovementOutput, error) {
	if !input.Kind.IsValid() {
		return nil, domainerror.NewMovementError(
			domainerror.ErrCodeInvalidMovementType,
			"movement type must be 'expense' or 'income'",
			domainerror.ErrInvalidMovementType,
		)
	}

	date, err := time.ParseInLocation(valueobject.DateLayout, strings.TrimSpace(input.Date), time.UTC)
	if err != nil {
		return nil, domainerror.NewMovementError(
			domainerror.ErrCodeMovementDateRequired,
			"date is required (YYYY-MM-DD)",
			domainerror.ErrMovementDateRequired,
		)
	}

	var product *entity.Product
	if input.ProductID != nil {
		product, err = uc.productRepo.FindByID(ctx, *input.ProductID, session.OperatorID)
		if err != nil && !errors.Is(err, domainerror.ErrProductNotFound) {
			return nil, fmt.Errorf("failed to find product: %w", err)
		}
		if product == nil || !product.Active || product.Kind != input.Kind {
			return nil, domainerror.NewMovementError(
				domainerror.ErrCodeMovementProductUnavailable,
				"product is not available for this movement",
				domainerror.ErrMovementProductUnavailable,
			)
		}
	}

	amount, err := resolveAmount(input.Amount, product)
	if err != nil {
		return nil, err
	}

	categoryID := input.CategoryID
	if categoryID == nil && product != nil {
		categoryID = product.CategoryID
	}
	if err := uc.checkCategory(ctx, categoryID, input.Kind); err != nil {
		return nil, err
	}

	description := strings.TrimSpace(input.Description)
	if description == "" && product != nil {
		description = product.Name
	}
	var descriptionPtr *string
	if description != "" {
		descriptionPtr = &description
	}

	operatorID := session.OperatorID
	movement := entity.NewMovement(input.Kind, amount, date, descriptionPtr, categoryID, &operatorID, input.ProductID)

	if err := uc.movementRepo.Create(ctx, movement); err != nil {
		return nil, fmt.Errorf("failed to create movement: %w", err)
	}

	return &CreateMovementOutput{
		Movement: movement,
	}, nil
}

func (uc *CreateMovementUseCase) checkCategory(ctx context.Context, categoryID *uuid.UUID, kind entity.Kind) error {
	if categoryID == nil {
		return nil
	}

	category, err := uc.categoryRepo.FindByID(ctx, *categoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return domainerror.NewCategoryError(domainerror.ErrCodeCategoryNotFound, "category not found", err)
		}
		return fmt.Errorf("failed to find category: %w", err)
	}

	if category.Kind != kind {
		return domainerror.NewMovementError(
			domainerror.ErrCodeMovementCategoryMismatch,
			"category type does not match movement type",
			domainerror.ErrMovementCategoryMismatch,
		)
	}
	return nil
}

// resolveAmount parses the entered amount, falling back to the product base price.
func resolveAmount(raw string, product *entity.Product) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" && product != nil {
		raw = product.BasePrice.String()
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil || !amount.GreaterThan(decimal.Zero) {
		return decimal.Zero, domainerror.NewMovementError(
			domainerror.ErrCodeInvalidMovementAmount,
			"amount must be a number greater than zero",
			domainerror.ErrInvalidMovementAmount,
		)
	}
	return amount, nil
}
