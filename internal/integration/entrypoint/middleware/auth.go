// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/finex/backend/internal/application/usecase/auth"
	"github.com/finex/backend/internal/domain/entity"
	domainerror "github.com/finex/backend/internal/domain/error"
	"github.com/finex/backend/internal/integration/entrypoint/dto"
	"github.com/finex/backend/internal/integration/i18n"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// SessionKey is the context key for the authenticated session.
	SessionKey ContextKey = "session"
	// TokenKey is the context key for the raw bearer token.
	TokenKey ContextKey = "token"
)

// AuthMiddleware resolves the bearer token into a session.
type AuthMiddleware struct {
	resolveSession *auth.ResolveSessionUseCase
	translator     *i18n.Translator
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(resolveSession *auth.ResolveSessionUseCase, translator *i18n.Translator) *AuthMiddleware {
	return &AuthMiddleware{
		resolveSession: resolveSession,
		translator:     translator,
	}
}

// Authenticate returns a Gin middleware handler that enforces a valid session.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			m.reject(c, string(domainerror.ErrCodeMissingToken), "Authorization header is required")
			return
		}

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			m.reject(c, string(domainerror.ErrCodeInvalidToken), "Invalid authorization header format")
			return
		}

		session, err := m.resolveSession.Execute(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			var authErr *domainerror.AuthError
			if errors.As(err, &authErr) {
				message := authErr.Message
				if authErr.Code == domainerror.ErrCodeExpiredToken {
					message = m.translator.T(GetLocale(c), i18n.KeySessionExpired)
				}
				m.reject(c, string(authErr.Code), message)
				return
			}
			m.reject(c, string(domainerror.ErrCodeInvalidToken), "Invalid or expired token")
			return
		}

		c.Set(string(SessionKey), session)
		c.Set(string(TokenKey), token)
		if i18n.IsSupported(session.Locale) {
			c.Set(string(LocaleKey), session.Locale)
		}

		c.Next()
	}
}

func (m *AuthMiddleware) reject(c *gin.Context, code, message string) {
	c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
	c.Abort()
}

// GetSessionFromContext extracts the session from the Gin context.
func GetSessionFromContext(c *gin.Context) (*entity.Session, bool) {
	value, exists := c.Get(string(SessionKey))
	if !exists {
		return nil, false
	}
	session, ok := value.(*entity.Session)
	return session, ok && session != nil
}
