package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finex/backend/internal/application/usecase/movement"
	"github.com/finex/backend/internal/domain/entity"
	domainerror "github.com/finex/backend/internal/domain/error"
	"github.com/finex/backend/internal/domain/valueobject"
	"github.com/finex/backend/internal/integration/entrypoint/dto"
	"github.com/finex/backend/internal/integration/entrypoint/middleware"
	"github.com/finex/backend/internal/integration/i18n"
)

// MovementController handles movement endpoints.
type MovementController struct {
	errorResponder
	translator    *i18n.Translator
	listUseCase   *movement.ListMovementsUseCase
	monthsUseCase *movement.MonthOptionsUseCase
	createUseCase *movement.CreateMovementUseCase
	deleteUseCase *movement.DeleteMovementUseCase
}

// NewMovementController creates a new movement controller instance.
func NewMovementController(
	listUseCase *movement.ListMovementsUseCase,
	monthsUseCase *movement.MonthOptionsUseCase,
	createUseCase *movement.CreateMovementUseCase,
	deleteUseCase *movement.DeleteMovementUseCase,
	translator *i18n.Translator,
) *MovementController {
	return &MovementController{
		errorResponder: newErrorResponder(translator),
		translator:     translator,
		listUseCase:    listUseCase,
		monthsUseCase:  monthsUseCase,
		createUseCase:  createUseCase,
		deleteUseCase:  deleteUseCase,
	}
}

// List handles GET /movements requests.
// The period is ?month=YYYY-MM, or ?start=&end= for a custom range, or the current month.
func (c *MovementController) List(ctx *gin.Context) {
	dateRange, err := c.queryRange(ctx)
	if err != nil {
		c.fail(ctx, domainerror.NewMovementError(
			domainerror.ErrCodeInvalidDateRange,
			"invalid period",
			domainerror.ErrInvalidDateRange,
		), i18n.KeyUnexpectedError)
		return
	}

	typeFilter, err := movement.ParseTypeFilter(ctx.Query("type"))
	if err != nil {
		c.fail(ctx, err, i18n.KeyUnexpectedError)
		return
	}

	filter := movement.ViewFilter{Type: typeFilter}
	if raw := ctx.Query("operator"); raw != "" && raw != movement.TypeFilterAll {
		if id, err := uuid.Parse(raw); err == nil {
			filter.OperatorID = &id
		}
	}

	view := c.listUseCase.Execute(ctx.Request.Context(), movement.ListMovementsInput{
		Range:  dateRange,
		Filter: filter,
	})

	ctx.JSON(http.StatusOK, dto.ToMovementViewResponse(view))
}

func (c *MovementController) queryRange(ctx *gin.Context) (valueobject.DateRange, error) {
	if month := ctx.Query("month"); month != "" {
		return valueobject.MonthRange(month)
	}
	start, end := ctx.Query("start"), ctx.Query("end")
	if start != "" || end != "" {
		return valueobject.CustomRange(start, end)
	}
	return c.monthsUseCase.CurrentMonth(), nil
}

// Months handles GET /movements/months requests.
func (c *MovementController) Months(ctx *gin.Context) {
	n, err := strconv.Atoi(ctx.Query("count"))
	if err != nil || n <= 0 {
		n = valueobject.DefaultMonthOptions
	}

	locale := middleware.GetLocale(ctx)
	values := c.monthsUseCase.Execute(n)
	months := make([]dto.MonthOptionResponse, 0, len(values))
	for _, value := range values {
		month, err := time.Parse(valueobject.MonthLayout, value)
		if err != nil {
			continue
		}
		months = append(months, dto.MonthOptionResponse{
			Value: value,
			Label: c.translator.MonthLabel(locale, month),
		})
	}

	ctx.JSON(http.StatusOK, dto.MonthOptionsResponse{
		Current: c.monthsUseCase.CurrentMonth().Start.Format(valueobject.MonthLayout),
		Months:  months,
	})
}

// Create handles POST /movements requests.
func (c *MovementController) Create(ctx *gin.Context) {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		c.unauthenticated(ctx)
		return
	}

	var req dto.CreateMovementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.badRequest(ctx, string(domainerror.ErrCodeInvalidMovementAmount), "Invalid request body")
		return
	}

	categoryID, err := parseOptionalID(req.CategoryID)
	if err != nil {
		c.badRequest(ctx, string(domainerror.ErrCodeCategoryNotFound), "Invalid category ID")
		return
	}
	productID, err := parseOptionalID(req.ProductID)
	if err != nil {
		c.badRequest(ctx, string(domainerror.ErrCodeProductNotFound), "Invalid product ID")
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), session, movement.CreateMovementInput{
		Kind:        entity.Kind(req.Kind),
		Amount:      string(req.Amount),
		Date:        req.Date,
		CategoryID:  categoryID,
		ProductID:   productID,
		Description: req.Description,
	})
	if err != nil {
		c.fail(ctx, err, i18n.KeySaveMovementError)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToMovementResponse(&entity.MovementDetail{
		Movement: output.Movement,
		Operator: session.Operator(),
	}))
}

// Delete handles DELETE /movements/:id requests.
func (c *MovementController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		c.badRequest(ctx, string(domainerror.ErrCodeMovementNotFound), "Invalid movement ID")
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		c.fail(ctx, err, i18n.KeyDeleteMovementError)
		return
	}

	ctx.Status(http.StatusNoContent)
}
