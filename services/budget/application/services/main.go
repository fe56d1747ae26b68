package services

import (
	"github.com/cotadorplus/cotador/pkg/app"
	"github.com/cotadorplus/cotador/pkg/cache"
	"github.com/cotadorplus/cotador/services/budget/domain/events"
	"github.com/cotadorplus/cotador/services/budget/infrastructure/messaging"
	"github.com/cotadorplus/cotador/services/budget/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Budget *BudgetService
}

// New wires all budget application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewBudgetRepository(a.Db)

	var budgetCache BudgetReadCache
	if a.Redis != nil {
		budgetCache = cache.NewBudgetCache(a.Redis)
	}

	var publisher EventPublisher
	if a.EventBus != nil {
		publisher = messaging.NewBudgetPublisher(a.EventBus)
	}

	var opts []events.Option
	if a.Config != nil {
		opts = append(opts,
			events.WithVersion(a.Config.EventSchemaVersion),
			events.WithDefaultSource(a.Config.EventSource),
		)
	}

	return &Services{
		Budget: NewBudgetService(repo, budgetCache, publisher, a.Logger, opts...),
	}
}
