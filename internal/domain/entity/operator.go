// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// OperatorColor is the colour tag shown next to an operator's name.
type OperatorColor string

const (
	OperatorColorBlue   OperatorColor = "blue"
	OperatorColorPurple OperatorColor = "purple"
	OperatorColorOrange OperatorColor = "orange"
)

// DefaultOperatorHex is used when an operator has no (or an unknown) colour tag.
const DefaultOperatorHex = "#6366f1"

var operatorHex = map[OperatorColor]string{
	OperatorColorBlue:   "#3b82f6",
	OperatorColorPurple: "#8b5cf6",
	OperatorColorOrange: "#f97316",
}

// IsValid reports whether c is part of the colour palette.
func (c OperatorColor) IsValid() bool {
	_, ok := operatorHex[c]
	return ok
}

// Hex returns the primary hex colour for the tag.
func (c OperatorColor) Hex() string {
	if hex, ok := operatorHex[c]; ok {
		return hex
	}
	return DefaultOperatorHex
}

// Operator is a named profile that scopes the catalog and is attributed to movements.
type Operator struct {
	ID        uuid.UUID
	Username  string
	Name      string
	Color     OperatorColor
	CreatedAt time.Time
}

// NewOperator creates a new Operator. The username is stored lowercase.
func NewOperator(username, name string, color OperatorColor) *Operator {
	return &Operator{
		ID:        uuid.New(),
		Username:  NormalizeUsername(username),
		Name:      strings.TrimSpace(name),
		Color:     color,
		CreatedAt: time.Now().UTC(),
	}
}

// NormalizeUsername trims and lowercases a username.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
