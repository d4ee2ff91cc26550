// Package product contains catalog-related use cases.
package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finex/backend/internal/application/adapter"
	"github.com/finex/backend/internal/domain/entity"
	domainerror "github.com/finex/backend/internal/domain/error"
)

// CreateInlineProductInput represents a product created from the movement entry dialog.
type CreateInlineProductInput struct {
	Name  string
	Price string
	Kind  entity.Kind
}

// CreateInlineProductOutput represents the output of inline product creation.
type CreateInlineProductOutput struct {
	Product *entity.Product
}

// CreateInlineProductUseCase handles quick product creation during movement entry.
type CreateInlineProductUseCase struct {
	productRepo   adapter.ProductRepository
	codeGenerator *CodeGenerator
}

// NewCreateInlineProductUseCase creates a new CreateInlineProductUseCase instance.
func NewCreateInlineProductUseCase(productRepo adapter.ProductRepository, codeGenerator *CodeGenerator) *CreateInlineProductUseCase {
	return &CreateInlineProductUseCase{
		productRepo:   productRepo,
		codeGenerator: codeGenerator,
	}
}

// Execute creates an uncategorized product with a generated code.
func (uc *CreateInlineProductUseCase) Execute(ctx context.Context, session *entity.Session, input CreateInlineProductInput) (*CreateInlineProductOutput, error) {
	name := strings.TrimSpace(input.Name)
	price, err := parseBasePrice(name, input.Price)
	if err != nil {
		return nil, err
	}
	if !price.GreaterThan(decimal.Zero) {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeInvalidProductPrice,
			"price must be greater than zero",
			domainerror.ErrInvalidProductPrice,
		)
	}
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}

	operator := session.Operator()
	exists, err := uc.productRepo.ExistsActiveByName(ctx, operator.ID, name, input.Kind)
	if err != nil {
		return nil, fmt.Errorf("failed to check product name existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeProductNameExists,
			"a product with this name already exists",
			domainerror.ErrProductNameExists,
		)
	}

	product := entity.NewProduct(name, nil, nil, price, nil, &operator.ID, input.Kind)
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

	return &CreateInlineProductOutput{
		Product: product,
	}, nil
}
