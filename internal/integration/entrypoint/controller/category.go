package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finex/backend/internal/application/usecase/category"
	"github.com/finex/backend/internal/domain/entity"
	domainerror "github.com/finex/backend/internal/domain/error"
	"github.com/finex/backend/internal/integration/entrypoint/dto"
	"github.com/finex/backend/internal/integration/i18n"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	errorResponder
	listUseCase   *category.ListCategoriesUseCase
	createUseCase *category.CreateCategoryUseCase
	deleteUseCase *category.DeleteCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	createUseCase *category.CreateCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
	translator *i18n.Translator,
) *CategoryController {
	return &CategoryController{
		errorResponder: newErrorResponder(translator),
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		deleteUseCase:  deleteUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	input := category.ListCategoriesInput{}
	if kind := entity.Kind(ctx.Query("kind")); kind.IsValid() {
		input.Kind = &kind
	}

	output := c.listUseCase.Execute(ctx.Request.Context(), input)
	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.badRequest(ctx, string(domainerror.ErrCodeMissingCategoryFields), "Invalid request body")
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		Name: req.Name,
		Kind: entity.Kind(req.Kind),
	})
	if err != nil {
		c.fail(ctx, err, i18n.KeyAddCategoryError)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// Delete handles DELETE /categories/:id requests.
func (c *CategoryController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		c.badRequest(ctx, string(domainerror.ErrCodeCategoryNotFound), "Invalid category ID")
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		c.fail(ctx, err, i18n.KeyDeleteCategoryError)
		return
	}

	ctx.Status(http.StatusNoContent)
}
