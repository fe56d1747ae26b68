package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetItem is one priced line of a Budget. It has no lifecycle of its own.
type BudgetItem struct {
	ID          uuid.UUID
	Description string
	UnitPrice   decimal.Decimal
	Quantity    int
}

// NewBudgetItem builds an item with a freshly generated id. Values are stored
// as given; positivity is checked by the caller.
func NewBudgetItem(description string, unitPrice decimal.Decimal, quantity int) BudgetItem {
	return BudgetItem{
		ID:          uuid.New(),
		Description: description,
		UnitPrice:   unitPrice,
		Quantity:    quantity,
	}
}

// Subtotal returns UnitPrice × Quantity.
func (i BudgetItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
