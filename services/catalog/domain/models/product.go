package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cotadorplus/cotador/services/catalog/domain"
)

// Product is a priced service or material saved in a tenant's catalog.
type Product struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Title     string
	Price     decimal.Decimal
	Category  string
	CreatedAt time.Time
}

// NewProduct builds a Product with a generated ID. The title must not be
// blank and the price must not be negative.
func NewProduct(tenantID uuid.UUID, title string, price decimal.Decimal, category string) (*Product, error) {
	title = strings.TrimSpace(title)
	switch {
	case title == "":
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidProduct)
	case price.IsNegative():
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidProduct)
	case tenantID == uuid.Nil:
		return nil, fmt.Errorf("%w: tenant is required", domain.ErrInvalidProduct)
	}
	return &Product{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Title:     title,
		Price:     price,
		Category:  strings.TrimSpace(category),
		CreatedAt: time.Now().UTC(),
	}, nil
}
