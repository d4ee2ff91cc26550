// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finex/backend/internal/application/adapter"
	"github.com/finex/backend/internal/domain/entity"
	domainerror "github.com/finex/backend/internal/domain/error"
	"github.com/finex/backend/internal/domain/valueobject"
	"github.com/finex/backend/internal/integration/persistence/model"
)

// movementRepository implements the adapter.MovementRepository interface.
type movementRepository struct {
	db *gorm.DB
}

// NewMovementRepository creates a new movement repository instance.
func NewMovementRepository(db *gorm.DB) adapter.MovementRepository {
	return &movementRepository{
		db: db,
	}
}

// Create creates a new movement in the database.
func (r *movementRepository) Create(ctx context.Context, movement *entity.Movement) error {
	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(model.MovementFromEntity(movement))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a movement by its ID.
func (r *movementRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movement, error) {
	var movementModel model.MovementModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&movementModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMovementNotFound
		}
		return nil, result.Error
	}
	return movementModel.ToEntity(), nil
}

// FindByRange retrieves every movement dated within the inclusive range with its relationships.
func (r *movementRepository) FindByRange(ctx context.Context, dateRange valueobject.DateRange, order adapter.SortOrder) ([]*entity.MovementDetail, error) {
	query := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Operator").
		Preload("Product").
		Where("data >= ? AND data <= ?", dateRange.Start, dateRange.End)

	if order == adapter.OldestFirst {
		query = query.Order("data ASC").Order("created_at ASC")
	} else {
		query = query.Order("data DESC").Order("created_at DESC")
	}

	var movementModels []model.MovementModel
	if result := query.Find(&movementModels); result.Error != nil {
		return nil, result.Error
	}

	movements := make([]*entity.MovementDetail, len(movementModels))
	for i := range movementModels {
		movements[i] = movementModels[i].ToDetail()
	}
	return movements, nil
}

// Delete removes a movement from the database.
func (r *movementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MovementModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrMovementNotFound
	}
	return nil
}
