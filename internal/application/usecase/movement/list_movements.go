// Package movement contains movement-related use cases.
package movement

import (
	"context"
	"log/slog"

	"github.com/finex/backend/internal/application/adapter"
	"github.com/finex/backend/internal/domain/entity"
	"github.com/finex/backend/internal/domain/valueobject"
)

// ListMovementsInput represents a dashboard query.
type ListMovementsInput struct {
	Range  valueobject.DateRange
	Filter ViewFilter
}

// ListMovementsUseCase loads the movements of a range and builds the dashboard view.
type ListMovementsUseCase struct {
	movementRepo adapter.MovementRepository
}

// NewListMovementsUseCase creates a new ListMovementsUseCase instance.
func NewListMovementsUseCase(movementRepo adapter.MovementRepository) *ListMovementsUseCase {
	return &ListMovementsUseCase{
		movementRepo: movementRepo,
	}
}

// Execute fetches the range newest first. Read failures yield an empty view.
func (uc *ListMovementsUseCase) Execute(ctx context.Context, input ListMovementsInput) *MovementView {
	movements, err := uc.movementRepo.FindByRange(ctx, input.Range, adapter.NewestFirst)
	if err != nil {
		slog.Warn("failed to list movements",
			"start", input.Range.Start.Format(valueobject.DateLayout),
			"end", input.Range.End.Format(valueobject.DateLayout),
			"error", err,
		)
		movements = []*entity.MovementDetail{}
	}

	return BuildMovementView(input.Range, movements, input.Filter)
}

// MonthOptionsUseCase lists the months offered by the month picker.
type MonthOptionsUseCase struct {
	clock adapter.Clock
}

// NewMonthOptionsUseCase creates a new MonthOptionsUseCase instance.
func NewMonthOptionsUseCase(clock adapter.Clock) *MonthOptionsUseCase {
	return &MonthOptionsUseCase{
		clock: clock,
	}
}

// Execute returns the current month followed by n-1 previous months.
func (uc *MonthOptionsUseCase) Execute(n int) []string {
	return valueobject.MonthOptions(uc.clock.Now(), n)
}

// CurrentMonth returns the range of the current month.
func (uc *MonthOptionsUseCase) CurrentMonth() valueobject.DateRange {
	return valueobject.CurrentMonth(uc.clock.Now())
}
