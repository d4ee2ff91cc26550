// Package export contains the spreadsheet export use case.
package export

import (
	"context"
	"fmt"

	"github.com/finex/backend/internal/application/adapter"
	"github.com/finex/backend/internal/application/usecase/movement"
	domainerror "github.com/finex/backend/internal/domain/error"
	"github.com/finex/backend/internal/domain/valueobject"
)

// ExportMovementsInput represents the inclusive export period.
type ExportMovementsInput struct {
	Start string // YYYY-MM-DD
	End   string // YYYY-MM-DD
}

// ExportMovementsOutput is the rendered workbook.
type ExportMovementsOutput struct {
	Filename string
	Content  []byte
	Rows     int
}

// ExportMovementsUseCase renders the movements of a period into a spreadsheet.
type ExportMovementsUseCase struct {
	movementRepo adapter.MovementRepository
	renderer     adapter.SpreadsheetRenderer
}

// NewExportMovementsUseCase creates a new ExportMovementsUseCase instance.
func NewExportMovementsUseCase(movementRepo adapter.MovementRepository, renderer adapter.SpreadsheetRenderer) *ExportMovementsUseCase {
	return &ExportMovementsUseCase{
		movementRepo: movementRepo,
		renderer:     renderer,
	}
}

// Execute re-fetches the period oldest first and renders it.
// An empty period produces no file.
func (uc *ExportMovementsUseCase) Execute(ctx context.Context, input ExportMovementsInput) (*ExportMovementsOutput, error) {
	dateRange, err := valueobject.CustomRange(input.Start, input.End)
	if err != nil {
		return nil, domainerror.NewExportError(
			domainerror.ErrCodeInvalidExportRange,
			"start and end dates are required (YYYY-MM-DD)",
			err,
		)
	}

	movements, err := uc.movementRepo.FindByRange(ctx, dateRange, adapter.OldestFirst)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch movements: %w", err)
	}
	if len(movements) == 0 {
		return nil, domainerror.NewExportError(
			domainerror.ErrCodeNothingToExport,
			"no movements in the selected period",
			domainerror.ErrNothingToExport,
		)
	}

	content, err := uc.renderer.Render(&adapter.MovementReport{
		Range:     dateRange,
		Movements: movements,
		Totals:    movement.ComputeTotals(movements),
	})
	if err != nil {
		return nil, domainerror.NewExportError(
			domainerror.ErrCodeExportRenderFailed,
			"failed to render export",
			fmt.Errorf("%w: %v", domainerror.ErrExportRenderFailed, err),
		)
	}

	return &ExportMovementsOutput{
		Filename: uc.renderer.Filename(dateRange),
		Content:  content,
		Rows:     len(movements),
	}, nil
}
