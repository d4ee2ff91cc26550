package product

import (
	"context"

	"github.com/finex/backend/internal/domain/entity"
)

// GetCatalogUseCase loads the operator's catalog and builds its view.
type GetCatalogUseCase struct {
	listProducts *ListProductsUseCase
}

// NewGetCatalogUseCase creates a new GetCatalogUseCase instance.
func NewGetCatalogUseCase(listProducts *ListProductsUseCase) *GetCatalogUseCase {
	return &GetCatalogUseCase{
		listProducts: listProducts,
	}
}

// Execute fetches active and inactive products and partitions them for query.
func (uc *GetCatalogUseCase) Execute(ctx context.Context, session *entity.Session, query CatalogQuery) *CatalogView {
	active := uc.listProducts.Execute(ctx, session, true)
	inactive := uc.listProducts.Execute(ctx, session, false)
	return BuildCatalogView(active, inactive, query)
}
