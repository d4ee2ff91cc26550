package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finex/backend/internal/application/usecase/auth"
	domainerror "github.com/finex/backend/internal/domain/error"
	"github.com/finex/backend/internal/integration/entrypoint/dto"
	"github.com/finex/backend/internal/integration/entrypoint/middleware"
	"github.com/finex/backend/internal/integration/i18n"
)

// AuthController handles authentication endpoints.
type AuthController struct {
	errorResponder
	loginUseCase  *auth.LoginOperatorUseCase
	logoutUseCase *auth.LogoutOperatorUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	loginUseCase *auth.LoginOperatorUseCase,
	logoutUseCase *auth.LogoutOperatorUseCase,
	translator *i18n.Translator,
) *AuthController {
	return &AuthController{
		errorResponder: newErrorResponder(translator),
		loginUseCase:   loginUseCase,
		logoutUseCase:  logoutUseCase,
	}
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.badRequest(ctx, string(domainerror.ErrCodeMissingFields), "Invalid request body")
		return
	}

	locale := i18n.Match(req.Locale, ctx.GetHeader("Accept-Language"))
	ctx.Set(string(middleware.LocaleKey), locale)

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), auth.LoginOperatorInput{
		Username: req.Username,
		Password: req.Password,
		Locale:   locale,
	})
	if err != nil {
		c.fail(ctx, err, i18n.KeyLoginError)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token:   output.Token,
		Session: dto.ToSessionResponse(output.Session),
	})
}

// Logout handles POST /auth/logout requests.
func (c *AuthController) Logout(ctx *gin.Context) {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		c.unauthenticated(ctx)
		return
	}

	output, _ := c.logoutUseCase.Execute(ctx.Request.Context(), session)

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: output.Message,
	})
}

// Session handles GET /session requests.
func (c *AuthController) Session(ctx *gin.Context) {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		c.unauthenticated(ctx)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSessionResponse(session))
}
