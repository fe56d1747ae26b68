package subscribers

import (
	"context"
	"errors"

	"github.com/cotadorplus/cotador/pkg/app"
	budgetsvc "github.com/cotadorplus/cotador/services/budget/application/services"
	budgetevents "github.com/cotadorplus/cotador/services/budget/domain/events"
	catalogsvc "github.com/cotadorplus/cotador/services/catalog/application/services"
)

// NewBudgetCreatedHandler wires the handler with the collaborators available
// in a. Cache warming needs Redis and document generation needs Temporal.
func NewBudgetCreatedHandler(a *app.Application) *BudgetCreatedHandler {
	h := &BudgetCreatedHandler{
		log:       a.Logger,
		catalog:   catalogsvc.New(a).Catalog,
		taskQueue: a.Config.DocumentTaskQueue,
	}
	if a.Redis != nil {
		h.budgets = budgetsvc.New(a).Budget
	}
	if a.TemporalClient != nil {
		h.documents = a.TemporalClient
	}
	return h
}

// Register subscribes every budget event handler on a.EventBus.
func Register(ctx context.Context, a *app.Application) error {
	if a.EventBus == nil {
		return errors.New("subscribers: no event bus")
	}

	h := NewBudgetCreatedHandler(a)
	errCh, err := a.EventBus.Subscribe(ctx, budgetevents.TopicBudgetCreated, h.Handle)
	if err != nil {
		return err
	}

	// Drain subscriber errors in background so the channel never blocks.
	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error",
				"topic", budgetevents.TopicBudgetCreated,
				"error", err,
			)
		}
	}()

	a.Logger.Info("event subscribers registered", "topics", []string{budgetevents.TopicBudgetCreated})
	return nil
}
