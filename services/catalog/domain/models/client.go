package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cotadorplus/cotador/services/catalog/domain"
)

// Client is a customer saved in a tenant's catalog for autocomplete.
type Client struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Name      string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
}

// NewClient builds a Client with a generated ID. The name is trimmed and must not be empty.
func NewClient(tenantID uuid.UUID, name, phone, email, address string) (*Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidClient)
	}
	if tenantID == uuid.Nil {
		return nil, fmt.Errorf("%w: tenant is required", domain.ErrInvalidClient)
	}
	return &Client{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Name:      name,
		Phone:     strings.TrimSpace(phone),
		Email:     strings.TrimSpace(email),
		Address:   strings.TrimSpace(address),
		CreatedAt: time.Now().UTC(),
	}, nil
}
