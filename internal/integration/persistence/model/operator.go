// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finex/backend/internal/domain/entity"
)

// OperatorModel represents the operadores table in the database.
type OperatorModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"column:username;type:varchar(50);not null;uniqueIndex"`
	Name      string    `gorm:"column:nome;type:varchar(100);not null"`
	Color     string    `gorm:"column:cor;type:varchar(10)"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the OperatorModel.
func (OperatorModel) TableName() string {
	return "operadores"
}

// ToEntity converts an OperatorModel to a domain Operator entity.
func (m *OperatorModel) ToEntity() *entity.Operator {
	return &entity.Operator{
		ID:        m.ID,
		Username:  m.Username,
		Name:      m.Name,
		Color:     entity.OperatorColor(m.Color),
		CreatedAt: m.CreatedAt,
	}
}

// OperatorFromEntity creates an OperatorModel from a domain Operator entity.
func OperatorFromEntity(operator *entity.Operator) *OperatorModel {
	return &OperatorModel{
		ID:        operator.ID,
		Username:  operator.Username,
		Name:      operator.Name,
		Color:     string(operator.Color),
		CreatedAt: operator.CreatedAt,
	}
}
