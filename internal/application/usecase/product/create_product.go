// Package product contains catalog-related use cases.
package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finex/backend/internal/application/adapter"
	"github.com/finex/backend/internal/domain/entity"
	domainerror "github.com/finex/backend/internal/domain/error"
)

// CreateProductInput represents the input for product creation.
type CreateProductInput struct {
	Name        string
	Code        string // Optional, generated when empty
	Description string // Optional
	BasePrice   string
	CategoryID  *uuid.UUID
	Kind        entity.Kind
}

// CreateProductOutput represents the output of product creation.
type CreateProductOutput struct {
	Product *entity.Product
}

// CreateProductUseCase handles catalog product creation logic.
type CreateProductUseCase struct {
	productRepo   adapter.ProductRepository
	categoryRepo  adapter.CategoryRepository
	codeGenerator *CodeGenerator
}

// NewCreateProductUseCase creates a new CreateProductUseCase instance.
func NewCreateProductUseCase(
	productRepo adapter.ProductRepository,
	categoryRepo adapter.CategoryRepository,
	codeGenerator *CodeGenerator,
) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		codeGenerator: codeGenerator,
	}
}

// Execute performs the product creation for the session operator.
func (uc *CreateProductUseCase) Execute(ctx context.Context, session *entity.Session, input CreateProductInput) (*CreateProductOutput, error) {
	price, err := parseBasePrice(input.Name, input.BasePrice)
	if err != nil {
		return nil, err
	}
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}
	if err := checkCategory(ctx, uc.categoryRepo, input.CategoryID, input.Kind); err != nil {
		return nil, err
	}

	operator := session.Operator()
	product := entity.NewProduct(
		strings.TrimSpace(input.Name),
		nil,
		optionalText(input.Description),
		price,
		input.CategoryID,
		&operator.ID,
		input.Kind,
	)

	if code := strings.TrimSpace(input.Code); code != "" {
		product.Code = &code
		if err := uc.productRepo.Create(ctx, product); err != nil {
			if errors.Is(err, domainerror.ErrProductCodeExists) {
				return nil, duplicateCode(err)
			}
			return nil, fmt.Errorf("failed to create product: %w", err)
		}
		return &CreateProductOutput{Product: product}, nil
	}

	err = uc.codeGenerator.Allocate(ctx, operator, func(code string) error {
		product.Code = &code
		return uc.productRepo.Create(ctx, product)
	})
	if err != nil {
		var productErr *domainerror.ProductError
		if errors.As(err, &productErr) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &CreateProductOutput{
		Product: product,
	}, nil
}
