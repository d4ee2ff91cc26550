// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finex/backend/internal/domain/error"
	"github.com/finex/backend/internal/integration/entrypoint/dto"
	"github.com/finex/backend/internal/integration/entrypoint/middleware"
	"github.com/finex/backend/internal/integration/i18n"
)

// validationMessages maps error codes to catalogue messages shown instead of the raw message.
var validationMessages = map[string]i18n.Key{
	string(domainerror.ErrCodeMissingFields):           i18n.KeyRequiredFieldsMissing,
	string(domainerror.ErrCodeInvalidCredentials):      i18n.KeyInvalidCredentials,
	string(domainerror.ErrCodeRateLimited):             i18n.KeyTooManyLoginAttempts,
	string(domainerror.ErrCodeExpiredToken):            i18n.KeySessionExpired,
	string(domainerror.ErrCodeMissingOperatorFields):   i18n.KeyRequiredFieldsMissing,
	string(domainerror.ErrCodeMissingCategoryFields):   i18n.KeyRequiredFieldsMissing,
	string(domainerror.ErrCodeMissingProductFields):    i18n.KeyNameAndPriceRequired,
	string(domainerror.ErrCodeInvalidProductPrice):     i18n.KeyInvalidPrice,
	string(domainerror.ErrCodeNoProductsSelected):      i18n.KeyNoProductsSelected,
	string(domainerror.ErrCodeCodeGenerationExhausted): i18n.KeyProductCodeUnavailable,
	string(domainerror.ErrCodeInvalidMovementAmount):   i18n.KeyInvalidAmount,
	string(domainerror.ErrCodeMovementDateRequired):    i18n.KeyMovementDateRequired,
	string(domainerror.ErrCodeInvalidDateRange):        i18n.KeyInvalidDateRange,
	string(domainerror.ErrCodeNothingToExport):         i18n.KeyNoMovementsInPeriod,
	string(domainerror.ErrCodeInvalidExportRange):      i18n.KeyInvalidDateRange,
}

// errorResponder writes error responses in the request locale.
type errorResponder struct {
	translator *i18n.Translator
}

func newErrorResponder(translator *i18n.Translator) errorResponder {
	return errorResponder{translator: translator}
}

// badRequest answers a request whose body or parameters could not be read.
func (r errorResponder) badRequest(ctx *gin.Context, code, message string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// unauthenticated answers a request that reached a handler without a session.
func (r errorResponder) unauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "Operator not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

// fail answers a failed mutation. Domain errors keep their code and status;
// anything else is a backend failure shown as "<prefix>: <raw error>".
func (r errorResponder) fail(ctx *gin.Context, err error, prefix i18n.Key) {
	locale := middleware.GetLocale(ctx)

	code, message, status, ok := classify(err)
	if !ok {
		slog.Error("request failed", "path", ctx.FullPath(), "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: fmt.Sprintf("%s: %s", r.translator.T(locale, prefix), err.Error()),
		})
		return
	}

	if key, found := validationMessages[code]; found {
		message = r.translator.T(locale, key)
	} else {
		message = fmt.Sprintf("%s: %s", r.translator.T(locale, prefix), message)
	}

	ctx.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// classify extracts the code, message and HTTP status of a domain error.
func classify(err error) (code, message string, status int, ok bool) {
	var (
		authErr     *domainerror.AuthError
		operatorErr *domainerror.OperatorError
		categoryErr *domainerror.CategoryError
		productErr  *domainerror.ProductError
		movementErr *domainerror.MovementError
		exportErr   *domainerror.ExportError
	)

	switch {
	case errors.As(err, &authErr):
		return string(authErr.Code), authErr.Message, authStatus(authErr.Code), true
	case errors.As(err, &operatorErr):
		return string(operatorErr.Code), operatorErr.Message, operatorStatus(operatorErr.Code), true
	case errors.As(err, &categoryErr):
		return string(categoryErr.Code), categoryErr.Message, categoryStatus(categoryErr.Code), true
	case errors.As(err, &productErr):
		return string(productErr.Code), productErr.Message, productStatus(productErr.Code), true
	case errors.As(err, &movementErr):
		return string(movementErr.Code), movementErr.Message, movementStatus(movementErr.Code), true
	case errors.As(err, &exportErr):
		return string(exportErr.Code), exportErr.Message, exportStatus(exportErr.Code), true
	}
	return "", "", 0, false
}

func authStatus(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken,
		domainerror.ErrCodeRevokedToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func operatorStatus(code domainerror.OperatorErrorCode) int {
	switch code {
	case domainerror.ErrCodeOperatorNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeOperatorUsernameExists:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func categoryStatus(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCategoryNameExists:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func productStatus(code domainerror.ProductErrorCode) int {
	switch code {
	case domainerror.ErrCodeProductNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeProductNameExists,
		domainerror.ErrCodeProductCodeExists,
		domainerror.ErrCodeCodeGenerationExhausted:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func movementStatus(code domainerror.MovementErrorCode) int {
	switch code {
	case domainerror.ErrCodeMovementNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

func exportStatus(code domainerror.ExportErrorCode) int {
	switch code {
	case domainerror.ErrCodeNothingToExport:
		return http.StatusNotFound
	case domainerror.ErrCodeExportRenderFailed:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
