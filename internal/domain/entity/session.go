// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the authenticated state of a request: who is acting and in which locale.
// It is resolved once by the auth middleware and passed explicitly to use cases.
type Session struct {
	TokenID    string
	OperatorID uuid.UUID
	Username   string
	Name       string
	Color      OperatorColor
	Locale     string
	ExpiresAt  time.Time
}

// Operator returns the operator profile carried by the session.
func (s *Session) Operator() *Operator {
	if s == nil {
		return nil
	}
	return &Operator{
		ID:       s.OperatorID,
		Username: s.Username,
		Name:     s.Name,
		Color:    s.Color,
	}
}
