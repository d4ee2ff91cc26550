// Package spreadsheet renders movement exports as xlsx workbooks.
package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/finex/backend/internal/application/adapter"
	"github.com/finex/backend/internal/domain/entity"
	"github.com/finex/backend/internal/domain/valueobject"
)

const (
	sheetName = "Mouvements"

	displayDateLayout  = "02/01/2006"
	filenameDateLayout = "02-01-2006"

	currencyFormat = `#,##0.00 "€";-#,##0.00 "€"`
	placeholder    = "-"

	headerRow    = 4
	firstDataRow = 5
)

var headers = []string{"Date", "Type", "Catégorie", "Opérateur", "Description", "Valeur"}

var columnWidths = map[string]float64{
	"A": 12,
	"B": 12,
	"C": 22,
	"D": 18,
	"E": 40,
	"F": 14,
}

var kindLabels = map[entity.Kind]string{
	entity.KindIncome:  "Recette",
	entity.KindExpense: "Dépense",
}

// xlsxRenderer implements adapter.SpreadsheetRenderer with excelize.
type xlsxRenderer struct{}

// NewRenderer creates a new xlsx renderer.
func NewRenderer() adapter.SpreadsheetRenderer {
	return &xlsxRenderer{}
}

// Filename returns finex_<start>_<end>.xlsx with dd-MM-yyyy dates.
func (r *xlsxRenderer) Filename(dateRange valueobject.DateRange) string {
	return fmt.Sprintf(
		"finex_%s_%s.xlsx",
		dateRange.Start.Format(filenameDateLayout),
		dateRange.End.Format(filenameDateLayout),
	)
}

// Render writes the report into a single sheet workbook.
func (r *xlsxRenderer) Render(report *adapter.MovementReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	styles, err := newStyleSet(f)
	if err != nil {
		return nil, err
	}

	w := &sheetWriter{file: f, styles: styles}
	w.writeTitle(report.Range)
	w.writeHeader()
	row := w.writeRows(report.Movements)
	w.writeSummary(row+1, report.Totals)
	w.setColumnWidths()

	if w.err != nil {
		return nil, fmt.Errorf("failed to write sheet: %w", w.err)
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buffer.Bytes(), nil
}

// sheetWriter keeps the first error so the layout code reads top to bottom.
type sheetWriter struct {
	file   *excelize.File
	styles *styleSet
	err    error
}

func (w *sheetWriter) set(col, row int, value interface{}, style int) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}
	if err := w.file.SetCellValue(sheetName, cell, value); err != nil {
		w.err = err
		return
	}
	if style != 0 {
		w.err = w.file.SetCellStyle(sheetName, cell, cell, style)
	}
}

func (w *sheetWriter) merge(fromCol, toCol, row int) {
	if w.err != nil {
		return
	}
	from, _ := excelize.CoordinatesToCellName(fromCol, row)
	to, _ := excelize.CoordinatesToCellName(toCol, row)
	w.err = w.file.MergeCell(sheetName, from, to)
}

func (w *sheetWriter) writeTitle(dateRange valueobject.DateRange) {
	w.set(1, 1, "Finex - Rapport des mouvements", w.styles.title)
	w.merge(1, len(headers), 1)

	caption := fmt.Sprintf(
		"Du %s au %s",
		dateRange.Start.Format(displayDateLayout),
		dateRange.End.Format(displayDateLayout),
	)
	w.set(1, 2, caption, w.styles.caption)
	w.merge(1, len(headers), 2)
}

func (w *sheetWriter) writeHeader() {
	for i, header := range headers {
		w.set(i+1, headerRow, header, w.styles.header)
	}
}

// writeRows returns the last row written.
func (w *sheetWriter) writeRows(details []*entity.MovementDetail) int {
	row := headerRow
	for _, detail := range details {
		row++
		movement := detail.Movement

		text, amount := w.styles.incomeText, w.styles.incomeAmount
		if movement.Kind == entity.KindExpense {
			text, amount = w.styles.expenseText, w.styles.expenseAmount
		}

		w.set(1, row, movement.Date.Format(displayDateLayout), text)
		w.set(2, row, kindLabels[movement.Kind], text)
		w.set(3, row, categoryName(detail), text)
		w.set(4, row, operatorName(detail), text)
		w.set(5, row, description(movement), text)
		w.set(6, row, movement.Amount.InexactFloat64(), amount)
	}
	return row
}

func (w *sheetWriter) writeSummary(row int, totals entity.MovementTotals) {
	row++
	w.set(5, row, "RÉSUMÉ", w.styles.header)
	w.set(6, row, "", w.styles.header)

	row++
	w.set(5, row, "Total Recettes", w.styles.label)
	w.set(6, row, totals.Income.InexactFloat64(), w.styles.positiveTotal)

	row++
	w.set(5, row, "Total Dépenses", w.styles.label)
	w.set(6, row, totals.Expense.InexactFloat64(), w.styles.negativeTotal)

	row++
	balanceStyle := w.styles.positiveTotal
	if totals.Balance.IsNegative() {
		balanceStyle = w.styles.negativeTotal
	}
	w.set(5, row, "Solde", w.styles.label)
	w.set(6, row, totals.Balance.InexactFloat64(), balanceStyle)
}

func (w *sheetWriter) setColumnWidths() {
	for col, width := range columnWidths {
		if w.err != nil {
			return
		}
		w.err = w.file.SetColWidth(sheetName, col, col, width)
	}
}

func categoryName(detail *entity.MovementDetail) string {
	if detail.Category == nil || detail.Category.Name == "" {
		return placeholder
	}
	return detail.Category.Name
}

func operatorName(detail *entity.MovementDetail) string {
	if detail.Operator == nil || detail.Operator.Name == "" {
		return placeholder
	}
	return detail.Operator.Name
}

func description(movement *entity.Movement) string {
	if movement.Description == nil || *movement.Description == "" {
		return placeholder
	}
	return *movement.Description
}
