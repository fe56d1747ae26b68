package domain

import "errors"

// Sentinel errors for the catalog domain. Use errors.Is() to check these.
var (
	// ErrInvalidClient indicates client data that violates catalog rules.
	ErrInvalidClient = errors.New("invalid client")

	// ErrInvalidProduct indicates product data that violates catalog rules.
	ErrInvalidProduct = errors.New("invalid product")

	// ErrClientExists indicates the tenant already has a client with that
	// name, ignoring case.
	ErrClientExists = errors.New("client already exists")

	// ErrProductExists indicates the tenant already has a product with that
	// title, ignoring case.
	ErrProductExists = errors.New("product already exists")
)
