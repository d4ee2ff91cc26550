package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finex/backend/internal/application/usecase/product"
	"github.com/finex/backend/internal/domain/entity"
	domainerror "github.com/finex/backend/internal/domain/error"
	"github.com/finex/backend/internal/integration/entrypoint/dto"
	"github.com/finex/backend/internal/integration/entrypoint/middleware"
	"github.com/finex/backend/internal/integration/i18n"
)

// ProductUseCases groups the product use cases served by ProductController.
type ProductUseCases struct {
	Catalog         *product.GetCatalogUseCase
	Pick            *product.PickProductsUseCase
	NextCode        *product.NextCodeUseCase
	Create          *product.CreateProductUseCase
	CreateInline    *product.CreateInlineProductUseCase
	Update          *product.UpdateProductUseCase
	SoftDelete      *product.SoftDeleteProductsUseCase
	PermanentDelete *product.PermanentDeleteProductsUseCase
	Restore         *product.RestoreProductUseCase
}

// ProductController handles catalog endpoints.
type ProductController struct {
	errorResponder
	useCases ProductUseCases
}

// NewProductController creates a new product controller instance.
func NewProductController(useCases ProductUseCases, translator *i18n.Translator) *ProductController {
	return &ProductController{
		errorResponder: newErrorResponder(translator),
		useCases:       useCases,
	}
}

// Catalog handles GET /products/catalog requests.
func (c *ProductController) Catalog(ctx *gin.Context) {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		c.unauthenticated(ctx)
		return
	}

	view := c.useCases.Catalog.Execute(ctx.Request.Context(), session, product.CatalogQuery{
		MainTab:     entity.Kind(ctx.Query("tab")),
		CategoryTab: ctx.Query("category"),
		Search:      ctx.Query("search"),
		Selected:    parseIDList(ctx.Query("selected")),
	})

	ctx.JSON(http.StatusOK, dto.ToCatalogResponse(view))
}

// Picker handles GET /products/picker requests.
func (c *ProductController) Picker(ctx *gin.Context) {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		c.unauthenticated(ctx)
		return
	}

	offset, _ := strconv.Atoi(ctx.Query("offset"))
	limit, _ := strconv.Atoi(ctx.Query("limit"))

	page := c.useCases.Pick.Execute(ctx.Request.Context(), session, product.PickProductsInput{
		Kind:   entity.Kind(ctx.Query("kind")),
		Search: ctx.Query("search"),
		Offset: offset,
		Limit:  limit,
	})

	ctx.JSON(http.StatusOK, dto.ToProductPageResponse(page))
}

// NextCode handles GET /products/next-code requests.
func (c *ProductController) NextCode(ctx *gin.Context) {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		c.unauthenticated(ctx)
		return
	}

	code, err := c.useCases.NextCode.Execute(ctx.Request.Context(), session.Operator())
	if err != nil {
		c.fail(ctx, err, i18n.KeyCreateProductError)
		return
	}

	ctx.JSON(http.StatusOK, dto.NextCodeResponse{Code: code})
}

// Create handles POST /products requests.
func (c *ProductController) Create(ctx *gin.Context) {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		c.unauthenticated(ctx)
		return
	}

	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.badRequest(ctx, string(domainerror.ErrCodeMissingProductFields), "Invalid request body")
		return
	}

	categoryID, err := parseOptionalID(req.CategoryID)
	if err != nil {
		c.badRequest(ctx, string(domainerror.ErrCodeCategoryNotFound), "Invalid category ID")
		return
	}

	output, err := c.useCases.Create.Execute(ctx.Request.Context(), session, product.CreateProductInput{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		BasePrice:   string(req.BasePrice),
		CategoryID:  categoryID,
		Kind:        entity.Kind(req.Kind),
	})
	if err != nil {
		c.fail(ctx, err, i18n.KeyCreateProductError)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(output.Product, nil))
}

// CreateInline handles POST /products/inline requests.
func (c *ProductController) CreateInline(ctx *gin.Context) {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		c.unauthenticated(ctx)
		return
	}

	var req dto.InlineProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.badRequest(ctx, string(domainerror.ErrCodeMissingProductFields), "Invalid request body")
		return
	}

	output, err := c.useCases.CreateInline.Execute(ctx.Request.Context(), session, product.CreateInlineProductInput{
		Name:  req.Name,
		Price: string(req.Price),
		Kind:  entity.Kind(req.Kind),
	})
	if err != nil {
		c.fail(ctx, err, i18n.KeyCreateProductError)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(output.Product, nil))
}

// Update handles PUT /products/:id requests.
func (c *ProductController) Update(ctx *gin.Context) {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		c.unauthenticated(ctx)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		c.badRequest(ctx, string(domainerror.ErrCodeProductNotFound), "Invalid product ID")
		return
	}

	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.badRequest(ctx, string(domainerror.ErrCodeMissingProductFields), "Invalid request body")
		return
	}

	categoryID, err := parseOptionalID(req.CategoryID)
	if err != nil {
		c.badRequest(ctx, string(domainerror.ErrCodeCategoryNotFound), "Invalid category ID")
		return
	}

	output, err := c.useCases.Update.Execute(ctx.Request.Context(), session, product.UpdateProductInput{
		ID:          id,
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		BasePrice:   string(req.BasePrice),
		CategoryID:  categoryID,
		Kind:        entity.Kind(req.Kind),
	})
	if err != nil {
		c.fail(ctx, err, i18n.KeyUpdateProductError)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(output.Product, nil))
}

// SoftDelete handles POST /products/soft-delete requests.
func (c *ProductController) SoftDelete(ctx *gin.Context) {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		c.unauthenticated(ctx)
		return
	}

	var req dto.ProductIDsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.badRequest(ctx, string(domainerror.ErrCodeNoProductsSelected), "Invalid request body")
		return
	}

	ids, err := parseIDs(req.IDs)
	if err != nil {
		c.badRequest(ctx, string(domainerror.ErrCodeProductNotFound), "Invalid product ID")
		return
	}

	output, err := c.useCases.SoftDelete.Execute(ctx.Request.Context(), session, ids)
	if err != nil {
		c.fail(ctx, err, i18n.KeyDeleteProductError)
		return
	}

	ctx.JSON(http.StatusOK, dto.CountResponse{Count: output.DeletedCount})
}

// PermanentDelete handles POST /products/permanent-delete requests.
func (c *ProductController) PermanentDelete(ctx *gin.Context) {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		c.unauthenticated(ctx)
		return
	}

	var req dto.PermanentDeleteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.badRequest(ctx, string(domainerror.ErrCodeNoProductsSelected), "Invalid request body")
		return
	}

	ids, err := parseIDs(req.IDs)
	if err != nil {
		c.badRequest(ctx, string(domainerror.ErrCodeProductNotFound), "Invalid product ID")
		return
	}

	output, err := c.useCases.PermanentDelete.Execute(ctx.Request.Context(), session, product.PermanentDeleteProductsInput{
		IDs:  ids,
		All:  req.All,
		Kind: entity.Kind(req.Kind),
	})
	if err != nil {
		c.fail(ctx, err, i18n.KeyDeleteProductError)
		return
	}

	ctx.JSON(http.StatusOK, dto.CountResponse{Count: output.DeletedCount})
}

// Restore handles POST /products/:id/restore requests.
func (c *ProductController) Restore(ctx *gin.Context) {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		c.unauthenticated(ctx)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		c.badRequest(ctx, string(domainerror.ErrCodeProductNotFound), "Invalid product ID")
		return
	}

	output, err := c.useCases.Restore.Execute(ctx.Request.Context(), session, id)
	if err != nil {
		c.fail(ctx, err, i18n.KeyRestoreProductError)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(output.Product, nil))
}
