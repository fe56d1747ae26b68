package domain

import "errors"

// Sentinel errors for the budget domain. Use errors.Is() to check these.
var (
	// ErrBudgetNotFound indicates the requested budget does not exist.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrBudgetAlreadyExists indicates a budget with the same id was already persisted.
	ErrBudgetAlreadyExists = errors.New("budget already exists")

	// ErrInvalidBudget indicates the create-budget input violates domain constraints.
	ErrInvalidBudget = errors.New("invalid budget")

	// ErrInvalidStatus indicates an unknown budget status value.
	ErrInvalidStatus = errors.New("invalid budget status")

	// ErrSchemaValidation indicates a domain event does not match its published schema.
	// Events failing this check are never published.
	ErrSchemaValidation = errors.New("event schema validation failed")
)
