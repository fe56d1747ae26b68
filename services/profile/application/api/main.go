package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/cotadorplus/cotador/pkg/app"
	"github.com/cotadorplus/cotador/services/profile/application/handlers"
	appsvcs "github.com/cotadorplus/cotador/services/profile/application/services"
)

// ProfileRoutes registers the provider profile endpoints.
func ProfileRoutes(r chi.Router, a *app.Application) {
	Mount(r, appsvcs.New(a))
}

func Mount(r chi.Router, svcs *appsvcs.Services) {
	h := handlers.NewProfileHandler(svcs)
	r.Get("/profile", h.Get)
	r.Put("/profile", h.Put)
}
