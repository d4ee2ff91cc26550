// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finex/backend/internal/application/adapter"
	"github.com/finex/backend/internal/domain/entity"
	domainerror "github.com/finex/backend/internal/domain/error"
	"github.com/finex/backend/internal/integration/persistence/model"
)

// operatorRepository implements the adapter.OperatorRepository interface.
type operatorRepository struct {
	db *gorm.DB
}

// NewOperatorRepository creates a new operator repository instance.
func NewOperatorRepository(db *gorm.DB) adapter.OperatorRepository {
	return &operatorRepository{
		db: db,
	}
}

// Create creates a new operator in the database.
func (r *operatorRepository) Create(ctx context.Context, operator *entity.Operator) error {
	result := r.db.WithContext(ctx).Create(model.OperatorFromEntity(operator))
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return domainerror.ErrOperatorUsernameExists
		}
		return result.Error
	}
	return nil
}

// FindByID retrieves an operator by its ID.
func (r *operatorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Operator, error) {
	var operatorModel model.OperatorModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&operatorModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrOperatorNotFound
		}
		return nil, result.Error
	}
	return operatorModel.ToEntity(), nil
}

// FindByUsername retrieves an operator by its lowercase username.
func (r *operatorRepository) FindByUsername(ctx context.Context, username string) (*entity.Operator, error) {
	var operatorModel model.OperatorModel
	result := r.db.WithContext(ctx).Where("username = ?", username).First(&operatorModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrOperatorNotFound
		}
		return nil, result.Error
	}
	return operatorModel.ToEntity(), nil
}

// FindAll retrieves all operators ordered by name.
func (r *operatorRepository) FindAll(ctx context.Context) ([]*entity.Operator, error) {
	var operatorModels []model.OperatorModel
	result := r.db.WithContext(ctx).Order("nome ASC").Find(&operatorModels)
	if result.Error != nil {
		return nil, result.Error
	}

	operators := make([]*entity.Operator, len(operatorModels))
	for i := range operatorModels {
		operators[i] = operatorModels[i].ToEntity()
	}
	return operators, nil
}

// ExistsByUsername checks if an operator with the given username exists.
func (r *operatorRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.OperatorModel{}).
		Where("username = ?", username).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Delete removes an operator from the database.
func (r *operatorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.OperatorModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrOperatorNotFound
	}
	return nil
}
