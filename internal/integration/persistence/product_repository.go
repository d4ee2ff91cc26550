// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finex/backend/internal/application/adapter"
	"github.com/finex/backend/internal/domain/entity"
	domainerror "github.com/finex/backend/internal/domain/error"
	"github.com/finex/backend/internal/integration/persistence/model"
)

// productRepository implements the adapter.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository instance.
func NewProductRepository(db *gorm.DB) adapter.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Create creates a new product in the database.
func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(model.ProductFromEntity(product))
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return domainerror.ErrProductCodeExists
		}
		return result.Error
	}
	return nil
}

// Update replaces the stored product with the given one.
func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productModel := model.ProductFromEntity(product)
	result := r.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Select("nome", "codigo", "descricao", "preco_base", "categoria_id", "tipo", "ativo", "updated_at").
		Updates(productModel)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return domainerror.ErrProductCodeExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrProductNotFound
	}
	return nil
}

// FindByID retrieves a product of the operator by its ID.
func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID, operatorID uuid.UUID) (*entity.Product, error) {
	var productModel model.ProductModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND operador_id = ?", id, operatorID).
		First(&productModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProductNotFound
		}
		return nil, result.Error
	}
	return productModel.ToEntity(), nil
}

// FindByOperator retrieves the operator's products with their category.
func (r *productRepository) FindByOperator(ctx context.Context, operatorID uuid.UUID, active bool) ([]*entity.ProductWithCategory, error) {
	query := r.db.WithContext(ctx).
		Preload("Category").
		Where("operador_id = ? AND ativo = ?", operatorID, active)
	if active {
		query = query.Order("created_at DESC")
	} else {
		query = query.Order("nome ASC")
	}

	var productModels []model.ProductModel
	if result := query.Find(&productModels); result.Error != nil {
		return nil, result.Error
	}

	products := make([]*entity.ProductWithCategory, len(productModels))
	for i := range productModels {
		products[i] = productModels[i].ToEntityWithCategory()
	}
	return products, nil
}

// FindCodesByPrefix returns every stored code of the operator starting with prefix.
// LIKE wildcards inside the prefix are not escaped; callers re-check the prefix.
func (r *productRepository) FindCodesByPrefix(ctx context.Context, operatorID *uuid.UUID, prefix string) ([]string, error) {
	query := r.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("codigo LIKE ?", prefix+"%")
	if operatorID != nil {
		query = query.Where("operador_id = ?", *operatorID)
	} else {
		query = query.Where("operador_id IS NULL")
	}

	var codes []string
	if result := query.Pluck("codigo", &codes); result.Error != nil {
		return nil, result.Error
	}
	return codes, nil
}

// ExistsActiveByName checks case-insensitively for an active product with the same name and kind.
func (r *productRepository) ExistsActiveByName(ctx context.Context, operatorID uuid.UUID, name string, kind entity.Kind) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("operador_id = ? AND ativo = ? AND tipo = ?", operatorID, true, model.KindToColumn(kind)).
		Where("LOWER(nome) = LOWER(?)", name).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// SoftDelete marks products inactive and clears their code.
func (r *productRepository) SoftDelete(ctx context.Context, ids []uuid.UUID, operatorID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id IN ? AND operador_id = ?", ids, operatorID).
		Updates(map[string]interface{}{
			"ativo":      false,
			"codigo":     nil,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeleteInactive hard-deletes the given products when they are already inactive.
func (r *productRepository) DeleteInactive(ctx context.Context, ids []uuid.UUID, operatorID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id IN ? AND operador_id = ? AND ativo = ?", ids, operatorID, false).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeleteAllInactive hard-deletes every inactive product of the given kind.
func (r *productRepository) DeleteAllInactive(ctx context.Context, operatorID uuid.UUID, kind entity.Kind) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("operador_id = ? AND ativo = ? AND tipo = ?", operatorID, false, model.KindToColumn(kind)).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Pick returns a page of active products ordered by name.
func (r *productRepository) Pick(ctx context.Context, filter adapter.ProductPickerFilter) (*adapter.ProductPage, error) {
	query := r.db.WithContext(ctx).
		Where("operador_id = ? AND ativo = ? AND tipo = ?", filter.OperatorID, true, model.KindToColumn(filter.Kind))
	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("(LOWER(nome) LIKE ? OR LOWER(codigo) LIKE ?)", term, term)
	}

	// One extra row tells whether another page exists
	var productModels []model.ProductModel
	result := query.Order("nome ASC").Offset(filter.Offset).Limit(filter.Limit + 1).Find(&productModels)
	if result.Error != nil {
		return nil, result.Error
	}

	page := &adapter.ProductPage{
		HasMore: len(productModels) > filter.Limit,
	}
	if page.HasMore {
		productModels = productModels[:filter.Limit]
	}
	page.Products = make([]*entity.Product, len(productModels))
	for i := range productModels {
		page.Products[i] = productModels[i].ToEntity()
	}
	return page, nil
}
