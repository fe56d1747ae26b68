package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/cotadorplus/cotador/services/catalog/domain/models"
)

// CatalogRepository persists the per-tenant client and product catalog.
// Name matching is case-insensitive everywhere.
type CatalogRepository interface {
	SaveClient(ctx context.Context, client *models.Client) error
	// SearchClients returns clients whose name contains query, up to limit rows.
	SearchClients(ctx context.Context, tenantID uuid.UUID, query string, limit int) ([]*models.Client, error)
	// ClientExists reports whether a client named exactly name exists.
	ClientExists(ctx context.Context, tenantID uuid.UUID, name string) (bool, error)

	SaveProduct(ctx context.Context, product *models.Product) error
	SearchProducts(ctx context.Context, tenantID uuid.UUID, query string, limit int) ([]*models.Product, error)
	ProductExists(ctx context.Context, tenantID uuid.UUID, title string) (bool, error)
}
