// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/finex/backend/internal/application/adapter"
	"github.com/finex/backend/internal/domain/entity"
	domainerror "github.com/finex/backend/internal/domain/error"
)

// ResolveSessionUseCase turns a bearer token into the request session.
type ResolveSessionUseCase struct {
	tokenService adapter.TokenService
	revoker      adapter.TokenRevoker
}

// NewResolveSessionUseCase creates a new ResolveSessionUseCase instance.
func NewResolveSessionUseCase(tokenService adapter.TokenService, revoker adapter.TokenRevoker) *ResolveSessionUseCase {
	return &ResolveSessionUseCase{
		tokenService: tokenService,
		revoker:      revoker,
	}
}

// Execute validates the token and rejects revoked sessions.
func (uc *ResolveSessionUseCase) Execute(ctx context.Context, token string) (*entity.Session, error) {
	session, err := uc.tokenService.ValidateSessionToken(ctx, token)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpiredToken) {
			return nil, domainerror.NewAuthError(domainerror.ErrCodeExpiredToken, "session has expired", err)
		}
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, "invalid session token", err)
	}

	revoked, err := uc.revoker.IsRevoked(ctx, session.TokenID)
	if err != nil {
		// Revocation store unavailable: the signature and expiry were still checked
		slog.Warn("failed to check token revocation", "error", err)
	}
	if revoked {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeRevokedToken,
			"session has been closed",
			domainerror.ErrRevokedToken,
		)
	}

	return session, nil
}
