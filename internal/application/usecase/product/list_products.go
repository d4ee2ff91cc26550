// Package product contains catalog-related use cases.
package product

import (
	"context"
	"log/slog"
	"strings"

	"github.com/finex/backend/internal/application/adapter"
	"github.com/finex/backend/internal/domain/entity"
)

// DefaultPickerLimit is the page size of the product picker.
const DefaultPickerLimit = 10

// ListProductsUseCase lists the session operator's products.
type ListProductsUseCase struct {
	productRepo adapter.ProductRepository
}

// NewListProductsUseCase creates a new ListProductsUseCase instance.
func NewListProductsUseCase(productRepo adapter.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
	}
}

// Execute lists active or inactive products. Read failures yield an empty list.
func (uc *ListProductsUseCase) Execute(ctx context.Context, session *entity.Session, active bool) []*entity.ProductWithCategory {
	products, err := uc.productRepo.FindByOperator(ctx, session.OperatorID, active)
	if err != nil {
		slog.Warn("failed to list products", "operator", session.Username, "active", active, "error", err)
		return []*entity.ProductWithCategory{}
	}
	return products
}

// PickProductsInput represents a picker query.
type PickProductsInput struct {
	Kind   entity.Kind
	Search string
	Offset int
	Limit  int
}

// PickProductsUseCase pages through active products while entering a movement.
type PickProductsUseCase struct {
	productRepo adapter.ProductRepository
}

// NewPickProductsUseCase creates a new PickProductsUseCase instance.
func NewPickProductsUseCase(productRepo adapter.ProductRepository) *PickProductsUseCase {
	return &PickProductsUseCase{
		productRepo: productRepo,
	}
}

// Execute returns one page of matching products. Read failures yield an empty page.
func (uc *PickProductsUseCase) Execute(ctx context.Context, session *entity.Session, input PickProductsInput) *adapter.ProductPage {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultPickerLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	page, err := uc.productRepo.Pick(ctx, adapter.ProductPickerFilter{
		OperatorID: session.OperatorID,
		Kind:       input.Kind,
		Search:     strings.TrimSpace(input.Search),
		Offset:     offset,
		Limit:      limit,
	})
	if err != nil {
		slog.Warn("failed to pick products", "operator", session.Username, "error", err)
		return &adapter.ProductPage{Products: []*entity.Product{}}
	}
	return page
}

// NextCodeUseCase previews the code a new product would receive.
type NextCodeUseCase struct {
	codeGenerator *CodeGenerator
}

// NewNextCodeUseCase creates a new NextCodeUseCase instance.
func NewNextCodeUseCase(codeGenerator *CodeGenerator) *NextCodeUseCase {
	return &NextCodeUseCase{
		codeGenerator: codeGenerator,
	}
}

// Execute returns the next code for the operator without reserving it.
func (uc *NextCodeUseCase) Execute(ctx context.Context, operator *entity.Operator) (string, error) {
	return uc.codeGenerator.Generate(ctx, operator)
}
