package dto

import (
	"time"

	"github.com/finex/backend/internal/domain/entity"
)

// LoginRequest represents the request body for operator login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Locale   string `json:"locale,omitempty"`
}

// SessionResponse represents the authenticated session.
type SessionResponse struct {
	Operator  OperatorResponse `json:"operator"`
	Locale    string           `json:"locale"`
	ExpiresAt time.Time        `json:"expires_at"`
}

// LoginResponse represents the response of a successful login.
type LoginResponse struct {
	Token   string          `json:"token"`
	Session SessionResponse `json:"session"`
}

// ToSessionResponse converts a session into its response DTO.
func ToSessionResponse(session *entity.Session) SessionResponse {
	return SessionResponse{
		Operator:  ToOperatorResponse(session.Operator()),
		Locale:    session.Locale,
		ExpiresAt: session.ExpiresAt,
	}
}
