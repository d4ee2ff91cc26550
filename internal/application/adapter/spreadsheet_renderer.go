// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"github.com/finex/backend/internal/domain/entity"
	"github.com/finex/backend/internal/domain/valueobject"
)

// MovementReport is the content of a movement export.
type MovementReport struct {
	Range     valueobject.DateRange
	Movements []*entity.MovementDetail // Sorted by date ascending
	Totals    entity.MovementTotals
}

// SpreadsheetRenderer renders a movement report into a workbook file.
type SpreadsheetRenderer interface {
	// Render returns the encoded workbook.
	Render(report *MovementReport) ([]byte, error)

	// Filename returns the download name of the workbook for the range.
	Filename(dateRange valueobject.DateRange) string
}
