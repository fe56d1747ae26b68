package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/cotadorplus/cotador/pkg/app"
	"github.com/cotadorplus/cotador/services/budget/application/handlers"
	appsvcs "github.com/cotadorplus/cotador/services/budget/application/services"
)

// BudgetRoutes registers budget endpoints on the provided chi router.
func BudgetRoutes(r chi.Router, a *app.Application) {
	Mount(r, appsvcs.New(a))
}

// Mount registers the budget endpoints backed by svcs.
func Mount(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/budgets", func(r chi.Router) {
		r.Post("/", handlers.NewPostBudgetHandler(svcs).Execute)
		r.Get("/", handlers.NewListBudgetsHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetBudgetHandler(svcs).Execute)
		r.Patch("/{id}/status", handlers.NewPatchBudgetStatusHandler(svcs).Execute)
	})
}
