// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finex/backend/internal/domain/entity"
)

// MovementModel represents the movimentos table in the database.
type MovementModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CategoryID  *uuid.UUID      `gorm:"column:categoria_id;type:uuid;index"`
	OperatorID  *uuid.UUID      `gorm:"column:operador_id;type:uuid;index"`
	ProductID   *uuid.UUID      `gorm:"column:produto_id;type:uuid;index"`
	Kind        string          `gorm:"column:tipo;type:varchar(10);not null"`
	Amount      decimal.Decimal `gorm:"column:valor;type:decimal(12,2);not null"`
	Description *string         `gorm:"column:descricao;type:text"`
	Date        time.Time       `gorm:"column:data;type:date;not null;index"`
	CreatedAt   time.Time       `gorm:"not null"`

	// Relationships
	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
	Operator *OperatorModel `gorm:"foreignKey:OperatorID"`
	Product  *ProductModel  `gorm:"foreignKey:ProductID"`
}

// TableName returns the table name for the MovementModel.
func (MovementModel) TableName() string {
	return "movimentos"
}

// ToEntity converts a MovementModel to a domain Movement entity.
func (m *MovementModel) ToEntity() *entity.Movement {
	return &entity.Movement{
		ID:          m.ID,
		CategoryID:  m.CategoryID,
		OperatorID:  m.OperatorID,
		ProductID:   m.ProductID,
		Kind:        KindFromColumn(m.Kind),
		Amount:      m.Amount,
		Description: m.Description,
		Date:        time.Date(m.Date.Year(), m.Date.Month(), m.Date.Day(), 0, 0, 0, 0, time.UTC),
		CreatedAt:   m.CreatedAt,
	}
}

// ToDetail converts a MovementModel with its preloaded relationships.
func (m *MovementModel) ToDetail() *entity.MovementDetail {
	detail := &entity.MovementDetail{
		Movement: m.ToEntity(),
	}
	if m.Category != nil {
		detail.Category = m.Category.ToEntity()
	}
	if m.Operator != nil {
		detail.Operator = m.Operator.ToEntity()
	}
	if m.Product != nil {
		detail.Product = m.Product.ToEntity()
	}
	return detail
}

// MovementFromEntity creates a MovementModel from a domain Movement entity.
func MovementFromEntity(movement *entity.Movement) *MovementModel {
	return &MovementModel{
		ID:          movement.ID,
		CategoryID:  movement.CategoryID,
		OperatorID:  movement.OperatorID,
		ProductID:   movement.ProductID,
		Kind:        KindToColumn(movement.Kind),
		Amount:      movement.Amount,
		Description: movement.Description,
		Date:        movement.Date,
		CreatedAt:   movement.CreatedAt,
	}
}

// AllModels lists every model managed by AutoMigrate.
func AllModels() []interface{} {
	return []interface{}{
		&OperatorModel{},
		&CategoryModel{},
		&ProductModel{},
		&MovementModel{},
	}
}
