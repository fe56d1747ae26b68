package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/cotadorplus/cotador/pkg/app"
	"github.com/cotadorplus/cotador/services/catalog/application/handlers"
	appsvcs "github.com/cotadorplus/cotador/services/catalog/application/services"
)

// CatalogRoutes registers client and product autocomplete endpoints.
func CatalogRoutes(r chi.Router, a *app.Application) {
	Mount(r, appsvcs.New(a))
}

// Mount registers the catalog endpoints backed by svcs.
func Mount(r chi.Router, svcs *appsvcs.Services) {
	clients := handlers.NewClientsHandler(svcs)
	r.Get("/clients", clients.Search)
	r.Post("/clients", clients.Create)

	products := handlers.NewProductsHandler(svcs)
	r.Get("/products", products.Search)
	r.Post("/products", products.Create)
}
