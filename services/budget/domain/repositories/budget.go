package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/cotadorplus/cotador/services/budget/domain/models"
)

// BudgetRepository is the persistence interface for the Budget aggregate.
// The domain layer owns this interface; infrastructure implements it.
type BudgetRepository interface {
	// Save persists a budget and all of its items atomically: either the whole
	// aggregate is stored or nothing is.
	Save(ctx context.Context, budget *models.Budget) error

	// FindAll returns every persisted budget, newest first.
	FindAll(ctx context.Context) ([]*models.Budget, error)

	GetByID(ctx context.Context, id uuid.UUID) (*models.Budget, error)

	// UpdateStatus overwrites the stored status. Returns ErrBudgetNotFound when
	// no budget has the given id.
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.Status) error
}
