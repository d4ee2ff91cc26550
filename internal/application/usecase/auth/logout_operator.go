// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"log/slog"

	"github.com/finex/backend/internal/application/adapter"
	"github.com/finex/backend/internal/domain/entity"
)

// LogoutOperatorOutput represents the output of operator logout.
type LogoutOperatorOutput struct {
	Message string
}

// LogoutOperatorUseCase handles operator logout logic.
type LogoutOperatorUseCase struct {
	revoker adapter.TokenRevoker
}

// NewLogoutOperatorUseCase creates a new LogoutOperatorUseCase instance.
func NewLogoutOperatorUseCase(revoker adapter.TokenRevoker) *LogoutOperatorUseCase {
	return &LogoutOperatorUseCase{
		revoker: revoker,
	}
}

// Execute revokes the session token until its natural expiry.
func (uc *LogoutOperatorUseCase) Execute(ctx context.Context, session *entity.Session) (*LogoutOperatorOutput, error) {
	if err := uc.revoker.Revoke(ctx, session.TokenID, session.ExpiresAt); err != nil {
		// The client drops its token anyway
		slog.Warn("failed to revoke session token", "operator", session.Username, "error", err)
	}

	return &LogoutOperatorOutput{
		Message: "Successfully logged out",
	}, nil
}
