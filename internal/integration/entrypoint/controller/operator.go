package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finex/backend/internal/application/usecase/operator"
	"github.com/finex/backend/internal/domain/entity"
	domainerror "github.com/finex/backend/internal/domain/error"
	"github.com/finex/backend/internal/integration/entrypoint/dto"
	"github.com/finex/backend/internal/integration/i18n"
)

// OperatorController handles operator endpoints.
type OperatorController struct {
	errorResponder
	listUseCase   *operator.ListOperatorsUseCase
	createUseCase *operator.CreateOperatorUseCase
	deleteUseCase *operator.DeleteOperatorUseCase
}

// NewOperatorController creates a new operator controller instance.
func NewOperatorController(
	listUseCase *operator.ListOperatorsUseCase,
	createUseCase *operator.CreateOperatorUseCase,
	deleteUseCase *operator.DeleteOperatorUseCase,
	translator *i18n.Translator,
) *OperatorController {
	return &OperatorController{
		errorResponder: newErrorResponder(translator),
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		deleteUseCase:  deleteUseCase,
	}
}

// List handles GET /operators requests. It is public so the login screen can offer a picker.
func (c *OperatorController) List(ctx *gin.Context) {
	output := c.listUseCase.Execute(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.ToOperatorListResponse(output.Operators))
}

// Create handles POST /operators requests.
func (c *OperatorController) Create(ctx *gin.Context) {
	var req dto.CreateOperatorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.badRequest(ctx, string(domainerror.ErrCodeMissingOperatorFields), "Invalid request body")
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), operator.CreateOperatorInput{
		Username: req.Username,
		Name:     req.Name,
		Color:    entity.OperatorColor(req.Color),
	})
	if err != nil {
		c.fail(ctx, err, i18n.KeyCreateOperatorError)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToOperatorResponse(output.Operator))
}

// Delete handles DELETE /operators/:id requests.
func (c *OperatorController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		c.badRequest(ctx, string(domainerror.ErrCodeOperatorNotFound), "Invalid operator ID")
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		c.fail(ctx, err, i18n.KeyDeleteOperatorError)
		return
	}

	ctx.Status(http.StatusNoContent)
}
