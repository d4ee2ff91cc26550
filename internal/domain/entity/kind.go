// Package entity defines the core business entities for the domain layer.
package entity

// Kind discriminates income from expense. It is shared by categories, products and movements.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// IsValid reports whether k is one of the known kinds.
func (k Kind) IsValid() bool {
	return k == KindIncome || k == KindExpense
}
