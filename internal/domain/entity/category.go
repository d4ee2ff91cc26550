// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products and movements of a single kind.
type Category struct {
	ID        uuid.UUID
	Name      string
	Kind      Kind
	CreatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(name string, kind Kind) *Category {
	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
	}
}
