package models

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget is the core aggregate for this bounded context: a priced quotation
// for one client.
type Budget struct {
	ID         uuid.UUID
	ClientName string
	Items      []BudgetItem // insertion order is preserved

	// Total is computed once by NewBudget. It is a creation-time snapshot:
	// code that changes Items afterwards must recompute it with SumItems.
	Total decimal.Decimal

	Status    Status
	CreatedAt time.Time
}

// NewBudget constructs a Budget with a generated ID and Total = SumItems(items).
// items is copied; the aggregate does not re-validate its lines.
func NewBudget(clientName string, items []BudgetItem, status Status, createdAt time.Time) *Budget {
	items = slices.Clone(items)
	if items == nil {
		items = []BudgetItem{}
	}
	return &Budget{
		ID:         uuid.New(),
		ClientName: clientName,
		Items:      items,
		Total:      SumItems(items),
		Status:     status,
		CreatedAt:  createdAt,
	}
}

// SumItems returns Σ(unitPrice × quantity) over items using exact decimal
// arithmetic. An empty slice sums to zero.
func SumItems(items []BudgetItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// CanApprove reports whether the budget has at least one line.
func (b *Budget) CanApprove() bool {
	return len(b.Items) > 0
}
