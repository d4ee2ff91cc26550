// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/finex/backend/internal/domain/entity"
)

// TokenService defines the interface for session token operations.
type TokenService interface {
	// GenerateSessionToken signs a token carrying the session.
	// The returned session has its TokenID and ExpiresAt set.
	GenerateSessionToken(ctx context.Context, session entity.Session) (string, *entity.Session, error)

	// ValidateSessionToken validates a token and returns the session it carries.
	ValidateSessionToken(ctx context.Context, token string) (*entity.Session, error)
}

// TokenRevoker keeps track of session tokens invalidated by logout.
type TokenRevoker interface {
	// Revoke marks the token id as revoked until the given time.
	Revoke(ctx context.Context, tokenID string, until time.Time) error

	// IsRevoked reports whether the token id was revoked.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
