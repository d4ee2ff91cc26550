// Package product contains catalog-related use cases.
package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finex/backend/internal/application/adapter"
	"github.com/finex/backend/internal/domain/entity"
	domainerror "github.com/finex/backend/internal/domain/error"
)

// SoftDeleteProductsOutput represents the output of a soft delete.
type SoftDeleteProductsOutput struct {
	DeletedCount int64
}

// SoftDeleteProductsUseCase deactivates one or many products and clears their codes.
type SoftDeleteProductsUseCase struct {
	productRepo adapter.ProductRepository
}

// NewSoftDeleteProductsUseCase creates a new SoftDeleteProductsUseCase instance.
func NewSoftDeleteProductsUseCase(productRepo adapter.ProductRepository) *SoftDeleteProductsUseCase {
	return &SoftDeleteProductsUseCase{
		productRepo: productRepo,
	}
}

// Execute performs the soft delete.
func (uc *SoftDeleteProductsUseCase) Execute(ctx context.Context, session *entity.Session, ids []uuid.UUID) (*SoftDeleteProductsOutput, error) {
	if len(ids) == 0 {
		return nil, noSelection()
	}

	count, err := uc.productRepo.SoftDelete(ctx, ids, session.OperatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete products: %w", err)
	}

	return &SoftDeleteProductsOutput{
		DeletedCount: count,
	}, nil
}

// PermanentDeleteProductsInput selects the inactive products to remove for good.
type PermanentDeleteProductsInput struct {
	IDs  []uuid.UUID
	All  bool        // Every inactive product of Kind
	Kind entity.Kind // Required with All
}

// PermanentDeleteProductsOutput represents the output of a permanent delete.
type PermanentDeleteProductsOutput struct {
	DeletedCount int64
}

// PermanentDeleteProductsUseCase hard-deletes inactive products.
// Movements that reference them are left untouched.
type PermanentDeleteProductsUseCase struct {
	productRepo adapter.ProductRepository
}

// NewPermanentDeleteProductsUseCase creates a new PermanentDeleteProductsUseCase instance.
func NewPermanentDeleteProductsUseCase(productRepo adapter.ProductRepository) *PermanentDeleteProductsUseCase {
	return &PermanentDeleteProductsUseCase{
		productRepo: productRepo,
	}
}

// Execute performs the permanent delete.
func (uc *PermanentDeleteProductsUseCase) Execute(ctx context.Context, session *entity.Session, input PermanentDeleteProductsInput) (*PermanentDeleteProductsOutput, error) {
	var (
		count int64
		err   error
	)

	switch {
	case input.All:
		if err := validateKind(input.Kind); err != nil {
			return nil, err
		}
		count, err = uc.productRepo.DeleteAllInactive(ctx, session.OperatorID, input.Kind)
	case len(input.IDs) > 0:
		count, err = uc.productRepo.DeleteInactive(ctx, input.IDs, session.OperatorID)
	default:
		return nil, noSelection()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete products permanently: %w", err)
	}

	return &PermanentDeleteProductsOutput{
		DeletedCount: count,
	}, nil
}

// RestoreProductOutput represents the output of a restore.
type RestoreProductOutput struct {
	Product *entity.Product
}

// RestoreProductUseCase reactivates a soft-deleted product under a fresh code.
type RestoreProductUseCase struct {
	productRepo   adapter.ProductRepository
	codeGenerator *CodeGenerator
}

// NewRestoreProductUseCase creates a new RestoreProductUseCase instance.
func NewRestoreProductUseCase(productRepo adapter.ProductRepository, codeGenerator *CodeGenerator) *RestoreProductUseCase {
	return &RestoreProductUseCase{
		productRepo:   productRepo,
		codeGenerator: codeGenerator,
	}
}

// Execute performs the restore. Restoring an active product is a no-op.
func (uc *RestoreProductUseCase) Execute(ctx context.Context, session *entity.Session, id uuid.UUID) (*RestoreProductOutput, error) {
	operator := session.Operator()
	product, err := uc.productRepo.FindByID(ctx, id, operator.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrProductNotFound) {
			return nil, productNotFound(err)
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	if product.Active {
		return &RestoreProductOutput{Product: product}, nil
	}

	err = uc.codeGenerator.Allocate(ctx, operator, func(code string) error {
		product.Reactivate(code)
		return uc.productRepo.Update(ctx, product)
	})
	if err != nil {
		var productErr *domainerror.ProductError
		if errors.As(err, &productErr) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to restore product: %w", err)
	}

	return &RestoreProductOutput{
		Product: product,
	}, nil
}

func noSelection() error {
	return domainerror.NewProductError(
		domainerror.ErrCodeNoProductsSelected,
		"no products selected",
		domainerror.ErrNoProductsSelected,
	)
}
