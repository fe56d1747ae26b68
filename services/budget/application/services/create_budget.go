package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	budgetdomain "github.com/cotadorplus/cotador/services/budget/domain"
	"github.com/cotadorplus/cotador/services/budget/domain/models"
	"github.com/cotadorplus/cotador/services/budget/domain/repositories"
	domainsvcs "github.com/cotadorplus/cotador/services/budget/domain/services"
)

// CreateBudgetItemInput is one requested budget line.
type CreateBudgetItemInput struct {
	Description string
	Price       decimal.Decimal
	Qty         int
}

// CreateBudgetInput is the input of CreateBudgetUseCase.
type CreateBudgetInput struct {
	ClientName string
	Items      []CreateBudgetItemInput
}

// CreateBudgetUseCase validates input, computes the total, builds a draft
// Budget and persists it. It never publishes events.
type CreateBudgetUseCase struct {
	repo repositories.BudgetRepository
	now  func() time.Time
}

// NewCreateBudgetUseCase returns a use case that saves through repo.
func NewCreateBudgetUseCase(repo repositories.BudgetRepository) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{repo: repo, now: time.Now}
}

// Execute runs the use case. Validation failures wrap ErrInvalidBudget.
// Errors from the repository are returned as-is and are never retried.
// An empty item list is accepted and yields a zero total.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, in CreateBudgetInput) (*models.Budget, error) {
	if err := domainsvcs.ValidateClientName(in.ClientName); err != nil {
		return nil, fmt.Errorf("%w: %w", budgetdomain.ErrInvalidBudget, err)
	}
	if err := domainsvcs.ValidateItemCount(len(in.Items)); err != nil {
		return nil, fmt.Errorf("%w: %w", budgetdomain.ErrInvalidBudget, err)
	}

	items := make([]models.BudgetItem, 0, len(in.Items))
	for i, it := range in.Items {
		if err := domainsvcs.ValidateItem(it.Description, it.Price, it.Qty); err != nil {
			return nil, fmt.Errorf("%w: items[%d]: %w", budgetdomain.ErrInvalidBudget, i, err)
		}
		items = append(items, models.NewBudgetItem(strings.TrimSpace(it.Description), it.Price, it.Qty))
	}

	budget := models.NewBudget(strings.TrimSpace(in.ClientName), items, models.StatusDraft, uc.now().UTC())

	if err := uc.repo.Save(ctx, budget); err != nil {
		return nil, err
	}
	return budget, nil
}
