// Package movement contains movement-related use cases.
package movement

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finex/backend/internal/domain/entity"
	domainerror "github.com/finex/backend/internal/domain/error"
	"github.com/finex/backend/internal/domain/valueobject"
)

// TypeFilterAll shows both kinds.
const TypeFilterAll = "all"

// ParseTypeFilter validates the type filter of the movement table. Empty means "all".
func ParseTypeFilter(raw string) (string, error) {
	switch raw {
	case "", TypeFilterAll:
		return TypeFilterAll, nil
	case string(entity.KindIncome), string(entity.KindExpense):
		return raw, nil
	}
	return "", domainerror.NewMovementError(
		domainerror.ErrCodeInvalidMovementType,
		"invalid movement type filter",
		domainerror.ErrInvalidMovementType,
	)
}

// ViewFilter holds the display filters of the movement table.
type ViewFilter struct {
	Type       string     // "all", "income" or "expense"
	OperatorID *uuid.UUID // nil shows every operator
}

// DailyTotal is the income and expense of one calendar day.
type DailyTotal struct {
	Date    time.Time
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// MovementView is what the dashboard renders for a date range.
type MovementView struct {
	Range     valueobject.DateRange
	Movements []*entity.MovementDetail // After display filters
	Totals    entity.MovementTotals    // Over the whole range, filters ignored
	Daily     []DailyTotal             // Days holding at least one movement, ascending
	Operators []*entity.Operator       // Distinct operators present in the range
}

// ComputeTotals sums income and expense amounts.
func ComputeTotals(movements []*entity.MovementDetail) entity.MovementTotals {
	income, expense := decimal.Zero, decimal.Zero
	for _, m := range movements {
		switch m.Movement.Kind {
		case entity.KindIncome:
			income = income.Add(m.Movement.Amount)
		case entity.KindExpense:
			expense = expense.Add(m.Movement.Amount)
		}
	}
	return entity.MovementTotals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

// BuildMovementView applies display filters to a fetched range. Totals and the
// daily breakdown always cover the unfiltered set.
func BuildMovementView(dateRange valueobject.DateRange, movements []*entity.MovementDetail, filter ViewFilter) *MovementView {
	view := &MovementView{
		Range:     dateRange,
		Movements: []*entity.MovementDetail{},
		Totals:    ComputeTotals(movements),
		Daily:     dailyTotals(movements),
		Operators: distinctOperators(movements),
	}

	for _, m := range movements {
		if filter.Type != "" && filter.Type != TypeFilterAll && string(m.Movement.Kind) != filter.Type {
			continue
		}
		if filter.OperatorID != nil && (m.Movement.OperatorID == nil || *m.Movement.OperatorID != *filter.OperatorID) {
			continue
		}
		view.Movements = append(view.Movements, m)
	}

	return view
}

func dailyTotals(movements []*entity.MovementDetail) []DailyTotal {
	byDay := make(map[time.Time]*DailyTotal)
	var days []time.Time
	for _, m := range movements {
		day := m.Movement.Date
		total, ok := byDay[day]
		if !ok {
			total = &DailyTotal{Date: day, Income: decimal.Zero, Expense: decimal.Zero}
			byDay[day] = total
			days = append(days, day)
		}
		switch m.Movement.Kind {
		case entity.KindIncome:
			total.Income = total.Income.Add(m.Movement.Amount)
		case entity.KindExpense:
			total.Expense = total.Expense.Add(m.Movement.Amount)
		}
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	daily := make([]DailyTotal, 0, len(days))
	for _, day := range days {
		t := byDay[day]
		t.Balance = t.Income.Sub(t.Expense)
		daily = append(daily, *t)
	}
	return daily
}

func distinctOperators(movements []*entity.MovementDetail) []*entity.Operator {
	seen := make(map[uuid.UUID]struct{})
	operators := []*entity.Operator{}
	for _, m := range movements {
		if m.Operator == nil {
			continue
		}
		if _, ok := seen[m.Operator.ID]; ok {
			continue
		}
		seen[m.Operator.ID] = struct{}{}
		operators = append(operators, m.Operator)
	}
	return operators
}
