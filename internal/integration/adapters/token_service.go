// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/finex/backend/internal/application/adapter"
	"github.com/finex/backend/internal/domain/entity"
	domainerror "github.com/finex/backend/internal/domain/error"
)

const tokenIssuer = "finex"

// SessionClaims represents the custom claims of a session token.
type SessionClaims struct {
	OperatorID string `json:"operator_id"`
	Username   string `json:"username"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	Locale     string `json:"locale"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface.
type tokenService struct {
	secret   []byte
	duration time.Duration
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string, duration time.Duration) adapter.TokenService {
	return &tokenService{
		secret:   []byte(secret),
		duration: duration,
	}
}

// GenerateSessionToken signs a token carrying the session.
func (s *tokenService) GenerateSessionToken(_ context.Context, session entity.Session) (string, *entity.Session, error) {
	now := time.Now().UTC()
	session.TokenID = uuid.NewString()
	session.ExpiresAt = now.Add(s.duration)

	claims := SessionClaims{
		OperatorID: session.OperatorID.String(),
		Username:   session.Username,
		Name:       session.Name,
		Color:      string(session.Color),
		Locale:     session.Locale,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.TokenID,
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   session.OperatorID.String(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, &session, nil
}

// ValidateSessionToken validates a token and returns the session it carries.
func (s *tokenService) ValidateSessionToken(_ context.Context, tokenString string) (*entity.Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerror.ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", domainerror.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, domainerror.ErrInvalidToken
	}

	operatorID, err := uuid.Parse(claims.OperatorID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid operator id", domainerror.ErrInvalidToken)
	}

	return &entity.Session{
		TokenID:    claims.ID,
		OperatorID: operatorID,
		Username:   claims.Username,
		Name:       claims.Name,
		Color:      entity.OperatorColor(claims.Color),
		Locale:     claims.Locale,
		ExpiresAt:  claims.ExpiresAt.Time,
	}, nil
}
