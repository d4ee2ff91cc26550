// Package product contains catalog-related use cases.
package product

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finex/backend/internal/application/adapter"
	"github.com/finex/backend/internal/domain/entity"
	domainerror "github.com/finex/backend/internal/domain/error"
)

// UpdateProductInput represents the editable fields of a product. All fields are replaced.
type UpdateProductInput struct {
	ID          uuid.UUID
	Name        string
	Code        string // Generated when empty
	Description string
	BasePrice   string
	CategoryID  *uuid.UUID
	Kind        entity.Kind
}

// UpdateProductOutput represents the output of product update.
type UpdateProductOutput struct {
	Product *entity.Product
}

// UpdateProductUseCase handles product update logic.
type UpdateProductUseCase struct {
	productRepo   adapter.ProductRepository
	categoryRepo  adapter.CategoryRepository
	codeGenerator *CodeGenerator
}

// NewUpdateProductUseCase creates a new UpdateProductUseCase instance.
func NewUpdateProductUseCase(
	productRepo adapter.ProductRepository,
	categoryRepo adapter.CategoryRepository,
	codeGenerator *CodeGenerator,
) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		codeGenerator: codeGenerator,
	}
}

// Execute performs the product update.
func (uc *UpdateProductUseCase) Execute(ctx context.Context, session *entity.Session, input UpdateProductInput) (*UpdateProductOutput, error) {
	price, err := parseBasePrice(input.Name, input.BasePrice)
	if err != nil {
		return nil, err
	}
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}

	operator := session.Operator()
	product, err := uc.productRepo.FindByID(ctx, input.ID, operator.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrProductNotFound) {
			return nil, productNotFound(err)
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	// Deleted products keep a cleared code until restored.
	if !product.Active {
		return nil, productNotFound(domainerror.ErrProductInactive)
	}

	if err := checkCategory(ctx, uc.categoryRepo, input.CategoryID, input.Kind); err != nil {
		return nil, err
	}

	product.Name = strings.TrimSpace(input.Name)
	product.Description = optionalText(input.Description)
	product.BasePrice = price
	product.CategoryID = input.CategoryID
	product.Kind = input.Kind
	product.UpdatedAt = time.Now().UTC()

	if code := strings.TrimSpace(input.Code); code != "" {
		product.Code = &code
		if err := uc.productRepo.Update(ctx, product); err != nil {
			if errors.Is(err, domainerror.ErrProductCodeExists) {
				return nil, duplicateCode(err)
			}
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
		return &UpdateProductOutput{Product: product}, nil
	}

	err = uc.codeGenerator.Allocate(ctx, operator, func(code string) error {
		product.Code = &code
		return uc.productRepo.Update(ctx, product)
	})
	if err != nil {
		var productErr *domainerror.ProductError
		if errors.As(err, &productErr) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &UpdateProductOutput{
		Product: product,
	}, nil
}
