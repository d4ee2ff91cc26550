package dto

import (
	"time"

	"github.com/finex/backend/internal/domain/entity"
)

// CreateOperatorRequest represents the request body for operator creation.
type CreateOperatorRequest struct {
	Username string `json:"username" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Color    string `json:"color,omitempty"`
}

// OperatorResponse represents a single operator in API responses.
type OperatorResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Name      string     `json:"name"`
	Color     string     `json:"color,omitempty"`
	Hex       string     `json:"hex"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// OperatorListResponse represents the response for listing operators.
type OperatorListResponse struct {
	Operators []OperatorResponse `json:"operators"`
}

// ToOperatorResponse converts a domain Operator entity to an OperatorResponse DTO.
func ToOperatorResponse(op *entity.Operator) OperatorResponse {
	response := OperatorResponse{
		ID:       op.ID.String(),
		Username: op.Username,
		Name:     op.Name,
		Color:    string(op.Color),
		Hex:      op.Color.Hex(),
	}
	if !op.CreatedAt.IsZero() {
		createdAt := op.CreatedAt
		response.CreatedAt = &createdAt
	}
	return response
}

// ToOperatorListResponse converts operators to an OperatorListResponse.
func ToOperatorListResponse(operators []*entity.Operator) OperatorListResponse {
	items := make([]OperatorResponse, len(operators))
	for i, op := range operators {
		items[i] = ToOperatorResponse(op)
	}
	return OperatorListResponse{Operators: items}
}
