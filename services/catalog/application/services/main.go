package services

import (
	"github.com/cotadorplus/cotador/pkg/app"
	"github.com/cotadorplus/cotador/services/catalog/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the catalog context.
type Services struct {
	Catalog *CatalogService
}

// New wires the catalog services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	return &Services{
		Catalog: NewCatalogService(postgres.NewCatalogRepository(a.Db), a.Logger),
	}
}
