// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finex/backend/internal/domain/entity"
)

// ProductModel represents the produtos table in the database.
// Codes are unique per operator; NULL codes of soft-deleted rows never collide.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"column:nome;type:varchar(200);not null"`
	Code        *string         `gorm:"column:codigo;type:varchar(20);uniqueIndex:idx_produtos_operador_codigo,priority:2"`
	Description *string         `gorm:"column:descricao;type:text"`
	BasePrice   decimal.Decimal `gorm:"column:preco_base;type:decimal(12,2);not null;default:0"`
	CategoryID  *uuid.UUID      `gorm:"column:categoria_id;type:uuid;index"`
	OperatorID  *uuid.UUID      `gorm:"column:operador_id;type:uuid;uniqueIndex:idx_produtos_operador_codigo,priority:1"`
	Kind        string          `gorm:"column:tipo;type:varchar(10);not null"`
	Active      bool            `gorm:"column:ativo;not null;default:true;index"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	// Relationships
	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName returns the table name for the ProductModel.
func (ProductModel) TableName() string {
	return "produtos"
}

// ToEntity converts a ProductModel to a domain Product entity.
func (m *ProductModel) ToEntity() *entity.Product {
	return &entity.Product{
		ID:          m.ID,
		Name:        m.Name,
		Code:        m.Code,
		Description: m.Description,
		BasePrice:   m.BasePrice,
		CategoryID:  m.CategoryID,
		OperatorID:  m.OperatorID,
		Kind:        KindFromColumn(m.Kind),
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToEntityWithCategory converts a ProductModel with its preloaded category.
func (m *ProductModel) ToEntityWithCategory() *entity.ProductWithCategory {
	result := &entity.ProductWithCategory{
		Product: m.ToEntity(),
	}
	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}
	return result
}

// ProductFromEntity creates a ProductModel from a domain Product entity.
func ProductFromEntity(product *entity.Product) *ProductModel {
	return &ProductModel{
		ID:          product.ID,
		Name:        product.Name,
		Code:        product.Code,
		Description: product.Description,
		BasePrice:   product.BasePrice,
		CategoryID:  product.CategoryID,
		OperatorID:  product.OperatorID,
		Kind:        KindToColumn(product.Kind),
		Active:      product.Active,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}
