// Package category contains category-related use cases.
package category

import (
	"context"
	"log/slog"

	"github.com/finex/backend/internal/application/adapter"
	"github.com/finex/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	Kind *entity.Kind // Optional filter by kind
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.Category
}

// ListCategoriesUseCase handles listing categories logic.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute lists categories ordered by kind then name. Read failures yield an empty list.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) *ListCategoriesOutput {
	categories, err := uc.categoryRepo.FindAll(ctx, input.Kind)
	if err != nil {
		slog.Warn("failed to list categories", "error", err)
		categories = []*entity.Category{}
	}

	return &ListCategoriesOutput{
		Categories: categories,
	}
}
