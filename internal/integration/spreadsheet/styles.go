package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	green      = "16A34A"
	greenLight = "DCFCE7"
	red        = "DC2626"
	redLight   = "FEE2E2"
	indigo     = "6366F1"
	white      = "FFFFFF"
	grey       = "6B7280"
)

type styleSet struct {
	title         int
	caption       int
	header        int
	label         int
	incomeText    int
	incomeAmount  int
	expenseText   int
	expenseAmount int
	positiveTotal int
	negativeTotal int
}

func newStyleSet(f *excelize.File) (*styleSet, error) {
	numFmt := currencyFormat
	fill := func(color string) excelize.Fill {
		return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
	}

	set := &styleSet{}
	definitions := []struct {
		target *int
		style  *excelize.Style
	}{
		{&set.title, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 16, Color: indigo}}},
		{&set.caption, &excelize.Style{Font: &excelize.Font{Italic: true, Color: grey}}},
		{&set.header, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: white},
			Fill:      fill(indigo),
			Alignment: &excelize.Alignment{Horizontal: "center"},
		}},
		{&set.label, &excelize.Style{Font: &excelize.Font{Bold: true}}},
		{&set.incomeText, &excelize.Style{Font: &excelize.Font{Color: green}, Fill: fill(greenLight)}},
		{&set.incomeAmount, &excelize.Style{Font: &excelize.Font{Color: green}, Fill: fill(greenLight), CustomNumFmt: &numFmt}},
		{&set.expenseText, &excelize.Style{Font: &excelize.Font{Color: red}, Fill: fill(redLight)}},
		{&set.expenseAmount, &excelize.Style{Font: &excelize.Font{Color: red}, Fill: fill(redLight), CustomNumFmt: &numFmt}},
		{&set.positiveTotal, &excelize.Style{Font: &excelize.Font{Bold: true, Color: green}, CustomNumFmt: &numFmt}},
		{&set.negativeTotal, &excelize.Style{Font: &excelize.Font{Bold: true, Color: red}, CustomNumFmt: &numFmt}},
	}

	for _, definition := range definitions {
		id, err := f.NewStyle(definition.style)
		if err != nil {
			return nil, fmt.Errorf("failed to create style: %w", err)
		}
		*definition.target = id
	}
	return set, nil
}
