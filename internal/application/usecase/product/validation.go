package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finex/backend/internal/application/adapter"
	"github.com/finex/backend/internal/domain/entity"
	domainerror "github.com/finex/backend/internal/domain/error"
)

// parseBasePrice validates the name and price fields of a product form.
func parseBasePrice(name, price string) (decimal.Decimal, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(price) == "" {
		return decimal.Zero, domainerror.NewProductError(
			domainerror.ErrCodeMissingProductFields,
			"name and price are required",
			domainerror.ErrProductNameAndPriceRequired,
		)
	}

	value, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil || value.IsNegative() {
		return decimal.Zero, domainerror.NewProductError(
			domainerror.ErrCodeInvalidProductPrice,
			"price must be a number greater than or equal to zero",
			domainerror.ErrInvalidProductPrice,
		)
	}

	return value, nil
}

func validateKind(kind entity.Kind) error {
	if !kind.IsValid() {
		return domainerror.NewProductError(
			domainerror.ErrCodeInvalidProductType,
			"product type must be 'expense' or 'income'",
			domainerror.ErrInvalidProductType,
		)
	}
	return nil
}

// checkCategory ensures an optional category exists and shares the product kind.
func checkCategory(ctx context.Context, repo adapter.CategoryRepository, categoryID *uuid.UUID, kind entity.Kind) error {
	if categoryID == nil {
		return nil
	}

	category, err := repo.FindByID(ctx, *categoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return domainerror.NewCategoryError(domainerror.ErrCodeCategoryNotFound, "category not found", err)
		}
		return fmt.Errorf("failed to find category: %w", err)
	}

	if category.Kind != kind {
		return domainerror.NewProductError(
			domainerror.ErrCodeProductCategoryMismatch,
			"category type does not match product type",
			domainerror.ErrProductCategoryMismatch,
		)
	}
	return nil
}

func productNotFound(err error) error {
	return domainerror.NewProductError(domainerror.ErrCodeProductNotFound, "product not found", err)
}

func duplicateCode(err error) error {
	return domainerror.NewProductError(
		domainerror.ErrCodeProductCodeExists,
		"a product with this code already exists",
		err,
	)
}

func optionalText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
