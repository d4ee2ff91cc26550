// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strconv"

	"github.com/finex/backend/internal/application/adapter"
	"github.com/finex/backend/internal/domain/entity"
	domainerror "github.com/finex/backend/internal/domain/error"
)

// CredentialPolicy describes the shared operator password.
type CredentialPolicy struct {
	// PasswordPrefix is combined with the current year, e.g. admin_2026.
	PasswordPrefix string
	// PasswordHash, when set, replaces the yearly password with a bcrypt hash.
	PasswordHash string
}

// LoginOperatorInput represents the input for operator login.
type LoginOperatorInput struct {
	Username string
	Password string
	Locale   string
}

// LoginOperatorOutput represents the output of operator login.
type LoginOperatorOutput struct {
	Token    string
	Session  *entity.Session
	Operator *entity.Operator
}

// LoginOperatorUseCase handles operator login logic.
type LoginOperatorUseCase struct {
	operatorRepo    adapter.OperatorRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	clock           adapter.Clock
	policy          CredentialPolicy
}

// NewLoginOperatorUseCase creates a new LoginOperatorUseCase instance.
func NewLoginOperatorUseCase(
	operatorRepo adapter.OperatorRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	clock adapter.Clock,
	policy CredentialPolicy,
) *LoginOperatorUseCase {
	return &LoginOperatorUseCase{
		operatorRepo:    operatorRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		clock:           clock,
		policy:          policy,
	}
}

// Execute performs the operator login.
func (uc *LoginOperatorUseCase) Execute(ctx context.Context, input LoginOperatorInput) (*LoginOperatorOutput, error) {
	username := entity.NormalizeUsername(input.Username)
	if username == "" || input.Password == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"username and password are required",
			domainerror.ErrMissingCredentials,
		)
	}

	operator, err := uc.operatorRepo.FindByUsername(ctx, username)
	if err != nil {
		// Same error for unknown users and wrong passwords
		return nil, invalidCredentials()
	}

	if !uc.passwordMatches(input.Password) {
		return nil, invalidCredentials()
	}

	token, session, err := uc.tokenService.GenerateSessionToken(ctx, entity.Session{
		OperatorID: operator.ID,
		Username:   operator.Username,
		Name:       operator.Name,
		Color:      operator.Color,
		Locale:     input.Locale,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &LoginOperatorOutput{
		Token:    token,
		Session:  session,
		Operator: operator,
	}, nil
}

func (uc *LoginOperatorUseCase) passwordMatches(password string) bool {
	if uc.policy.PasswordHash != "" {
		return uc.passwordService.VerifyPassword(uc.policy.PasswordHash, password) == nil
	}
	expected := uc.policy.PasswordPrefix + strconv.Itoa(uc.clock.Now().Year())
	return subtle.ConstantTimeCompare([]byte(expected), []byte(password)) == 1
}

func invalidCredentials() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid username or password",
		domainerror.ErrInvalidCredentials,
	)
}
