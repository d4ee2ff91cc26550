// Package model defines database models for persistence layer.
package model

import "github.com/finex/backend/internal/domain/entity"

// Stored values of the tipo column.
const (
	KindColumnIncome  = "receita"
	KindColumnExpense = "gasto"
)

// KindToColumn maps a domain kind to its stored value.
func KindToColumn(kind entity.Kind) string {
	if kind == entity.KindIncome {
		return KindColumnIncome
	}
	return KindColumnExpense
}

// KindFromColumn maps a stored tipo value to the domain kind.
func KindFromColumn(value string) entity.Kind {
	if value == KindColumnIncome {
		return entity.KindIncome
	}
	return entity.KindExpense
}
