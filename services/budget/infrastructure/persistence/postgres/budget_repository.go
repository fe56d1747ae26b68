package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/cotadorplus/cotador/pkg/database"
	budgetdomain "github.com/cotadorplus/cotador/services/budget/domain"
	"github.com/cotadorplus/cotador/services/budget/domain/models"
	"github.com/cotadorplus/cotador/services/budget/infrastructure/persistence/postgres/db"
)

const uniqueViolation = "23505"

// BudgetRepository implements repositories.BudgetRepository against PostgreSQL.
type BudgetRepository struct {
	db *database.Database
}

// NewBudgetRepository returns a BudgetRepository backed by the given pool.
func NewBudgetRepository(database *database.Database) *BudgetRepository {
	return &BudgetRepository{db: database}
}

// Save inserts the budget row and every item row in one transaction.
// Returns ErrBudgetAlreadyExists on unique constraint violations.
func (r *BudgetRepository) Save(ctx context.Context, budget *models.Budget) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		if err := q.InsertBudget(ctx, db.InsertBudgetParams{
			ID:         budget.ID,
			ClientName: budget.ClientName,
			Total:      budget.Total,
			Status:     string(budget.Status),
			CreatedAt:  budget.CreatedAt,
		}); err != nil {
			return mapInsertError("insert budget", err)
		}

		for i, item := range budget.Items {
			position, err := toInt4("item position", i)
			if err != nil {
				return err
			}
			quantity, err := toInt4("item quantity", item.Quantity)
			if err != nil {
				return err
			}
			if err := q.InsertBudgetItem(ctx, db.InsertBudgetItemParams{
				ID:          item.ID,
				BudgetID:    budget.ID,
				Position:    position,
				Description: item.Description,
				UnitPrice:   item.UnitPrice,
				Quantity:    quantity,
			}); err != nil {
				return mapInsertError("insert budget item", err)
			}
		}
		return nil
	})
}

// FindAll returns every budget with its items, newest first.
func (r *BudgetRepository) FindAll(ctx context.Context) ([]*models.Budget, error) {
	q := db.New(r.db.DB())

	rows, err := q.ListBudgets(ctx)
	if err != nil {
		return nil, fmt.Errorf("query budgets: %w", err)
	}
	itemRows, err := q.ListAllBudgetItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("query budget items: %w", err)
	}

	byBudget := make(map[uuid.UUID][]db.BudgetItem, len(rows))
	for _, it := range itemRows {
		byBudget[it.BudgetID] = append(byBudget[it.BudgetID], it)
	}

	budgets := make([]*models.Budget, len(rows))
	for i, row := range rows {
		budgets[i] = rowToBudget(row, byBudget[row.ID])
	}
	return budgets, nil
}

// GetByID retrieves a budget with its items. Returns ErrBudgetNotFound if absent.
func (r *BudgetRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Budget, error) {
	q := db.New(r.db.DB())
	row, err := q.GetBudgetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, budgetdomain.ErrBudgetNotFound
		}
		return nil, fmt.Errorf("query budget: %w", err)
	}
	items, err := q.ListBudgetItems(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("query budget items: %w", err)
	}
	return rowToBudget(row, items), nil
}

// UpdateStatus overwrites the status column. Returns ErrBudgetNotFound when no row matched.
func (r *BudgetRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.Status) error {
	q := db.New(r.db.DB())
	n, err := q.UpdateBudgetStatus(ctx, db.UpdateBudgetStatusParams{ID: id, Status: string(status)})
	if err != nil {
		return fmt.Errorf("update budget status: %w", err)
	}
	if n == 0 {
		return budgetdomain.ErrBudgetNotFound
	}
	return nil
}

// toInt4 converts n for an INTEGER column, failing instead of wrapping.
func toInt4(field string, n int) (int32, error) {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s %d out of range", budgetdomain.ErrInvalidBudget, field, n)
	}
	return int32(n), nil
}

func mapInsertError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return budgetdomain.ErrBudgetAlreadyExists
	}
	return fmt.Errorf("%s: %w", op, err)
}

// rowToBudget maps db rows to the aggregate. The stored total is used as-is.
func rowToBudget(row db.Budget, itemRows []db.BudgetItem) *models.Budget {
	items := make([]models.BudgetItem, len(itemRows))
	for i, it := range itemRows {
		items[i] = models.BudgetItem{
			ID:          it.ID,
			Description: it.Description,
			UnitPrice:   it.UnitPrice,
			Quantity:    int(it.Quantity),
		}
	}
	return &models.Budget{
		ID:         row.ID,
		ClientName: row.ClientName,
		Items:      items,
		Total:      row.Total,
		Status:     models.Status(row.Status),
		CreatedAt:  row.CreatedAt,
	}
}
