// Package services contains stateless domain services for the budget bounded context.
// They enforce business rules on raw input before an aggregate is built.
package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// MaxQuantity is the largest quantity a budget line can store.
	MaxQuantity = math.MaxInt32

	// MaxItems caps the number of lines in one budget.
	MaxItems = 1000
)

// ValidateClientName rejects names that are empty after trimming.
func ValidateClientName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("client name is required")
	}
	return nil
}

// ValidateItem enforces the rules for a single budget line:
//   - description must not be blank
//   - unit price must be strictly positive
//   - quantity must be between 1 and MaxQuantity
func ValidateItem(description string, price decimal.Decimal, qty int) error {
	if strings.TrimSpace(description) == "" {
		return errors.New("item description is required")
	}
	if !price.IsPositive() {
		return fmt.Errorf("item %q: price must be greater than zero", description)
	}
	if qty < 1 {
		return fmt.Errorf("item %q: quantity must be at least 1", description)
	}
	if qty > MaxQuantity {
		return fmt.Errorf("item %q: quantity must be at most %d", description, MaxQuantity)
	}
	return nil
}

// ValidateItemCount rejects budgets with more than MaxItems lines.
func ValidateItemCount(n int) error {
	if n > MaxItems {
		return fmt.Errorf("a budget has at most %d items, got %d", MaxItems, n)
	}
	return nil
}
