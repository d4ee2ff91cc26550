package dto

import (
	"time"

	"github.com/finex/backend/internal/application/usecase/movement"
	"github.com/finex/backend/internal/domain/entity"
)

// CreateMovementRequest represents the request body for movement creation.
type CreateMovementRequest struct {
	Kind        string        `json:"kind" binding:"required"`
	Amount      NumericString `json:"amount"`
	Date        string        `json:"date"`
	CategoryID  *string       `json:"category_id,omitempty"`
	ProductID   *string       `json:"product_id,omitempty"`
	Description string        `json:"description,omitempty"`
}

// MovementRefResponse represents a related record embedded in a movement.
type MovementRefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
	Hex  string `json:"hex,omitempty"`
}

// MovementResponse represents a single movement in API responses.
type MovementResponse struct {
	ID          string               `json:"id"`
	Kind        string               `json:"kind"`
	Amount      string               `json:"amount"`
	Description *string              `json:"description"`
	Date        string               `json:"date"`
	Category    *MovementRefResponse `json:"category"`
	Operator    *MovementRefResponse `json:"operator"`
	Product     *MovementRefResponse `json:"product"`
	CreatedAt   time.Time            `json:"created_at"`
}

// TotalsResponse represents income, expense and balance totals.
type TotalsResponse struct {
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Balance string `json:"balance"`
}

// DailyTotalResponse represents the totals of one day.
type DailyTotalResponse struct {
	Date string `json:"date"`
	TotalsResponse
}

// MovementViewResponse represents the dashboard of a period.
type MovementViewResponse struct {
	Start     string               `json:"start"`
	End       string               `json:"end"`
	Totals    TotalsResponse       `json:"totals"`
	Daily     []DailyTotalResponse `json:"daily"`
	Operators []OperatorResponse   `json:"operators"`
	Movements []MovementResponse   `json:"movements"`
}

// MonthOptionResponse represents one entry of the month picker.
type MonthOptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// MonthOptionsResponse represents the month picker.
type MonthOptionsResponse struct {
	Current string                `json:"current"`
	Months  []MonthOptionResponse `json:"months"`
}

// ToMovementResponse converts a movement detail to a MovementResponse DTO.
func ToMovementResponse(detail *entity.MovementDetail) MovementResponse {
	m := detail.Movement
	response := MovementResponse{
		ID:          m.ID.String(),
		Kind:        string(m.Kind),
		Amount:      formatMoney(m.Amount),
		Description: m.Description,
		Date:        formatDate(m.Date),
		CreatedAt:   m.CreatedAt,
	}
	if detail.Category != nil {
		response.Category = &MovementRefResponse{ID: detail.Category.ID.String(), Name: detail.Category.Name}
	}
	if detail.Operator != nil {
		response.Operator = &MovementRefResponse{
			ID:   detail.Operator.ID.String(),
			Name: detail.Operator.Name,
			Hex:  detail.Operator.Color.Hex(),
		}
	}
	if detail.Product != nil {
		response.Product = &MovementRefResponse{
			ID:   detail.Product.ID.String(),
			Name: detail.Product.Name,
			Code: detail.Product.CodeValue(),
		}
	}
	return response
}

func toTotalsResponse(totals entity.MovementTotals) TotalsResponse {
	return TotalsResponse{
		Income:  formatMoney(totals.Income),
		Expense: formatMoney(totals.Expense),
		Balance: formatMoney(totals.Balance),
	}
}

// ToMovementViewResponse converts a dashboard view to its response DTO.
func ToMovementViewResponse(view *movement.MovementView) MovementViewResponse {
	daily := make([]DailyTotalResponse, len(view.Daily))
	for i, day := range view.Daily {
		daily[i] = DailyTotalResponse{
			Date: formatDate(day.Date),
			TotalsResponse: toTotalsResponse(entity.MovementTotals{
				Income:  day.Income,
				Expense: day.Expense,
				Balance: day.Balance,
			}),
		}
	}

	operators := make([]OperatorResponse, len(view.Operators))
	for i, op := range view.Operators {
		operators[i] = ToOperatorResponse(op)
	}

	movements := make([]MovementResponse, len(view.Movements))
	for i, detail := range view.Movements {
		movements[i] = ToMovementResponse(detail)
	}

	return MovementViewResponse{
		Start:     formatDate(view.Range.Start),
		End:       formatDate(view.Range.End),
		Totals:    toTotalsResponse(view.Totals),
		Daily:     daily,
		Operators: operators,
		Movements: movements,
	}
}
