package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/cotadorplus/cotador/pkg/database"
	catalogdomain "github.com/cotadorplus/cotador/services/catalog/domain"
	"github.com/cotadorplus/cotador/services/catalog/domain/models"
	"github.com/cotadorplus/cotador/services/catalog/infrastructure/persistence/postgres/db"
)

const uniqueViolation = "23505"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// CatalogRepository implements repositories.CatalogRepository against PostgreSQL.
type CatalogRepository struct {
	db *database.Database
}

// NewCatalogRepository returns a CatalogRepository backed by the given pool.
func NewCatalogRepository(database *database.Database) *CatalogRepository {
	return &CatalogRepository{db: database}
}

// SaveClient inserts c. Returns ErrClientExists when the tenant already has
// a client with the same name, ignoring case.
func (r *CatalogRepository) SaveClient(ctx context.Context, c *models.Client) error {
	err := db.New(r.db.DB()).InsertClient(ctx, db.InsertClientParams{
		ID:        c.ID,
		TenantID:  c.TenantID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	})
	if err != nil {
		return mapInsertError("insert client", err, catalogdomain.ErrClientExists)
	}
	return nil
}

func (r *CatalogRepository) SearchClients(ctx context.Context, tenantID uuid.UUID, query string, limit int) ([]*models.Client, error) {
	rows, err := db.New(r.db.DB()).SearchClients(ctx, db.SearchClientsParams{
		TenantID: tenantID,
		Name:     containsPattern(query),
		Limit:    int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("query clients: %w", err)
	}
	clients := make([]*models.Client, len(rows))
	for i, row := range rows {
		clients[i] = &models.Client{
			ID:        row.ID,
			TenantID:  row.TenantID,
			Name:      row.Name,
			Phone:     row.Phone,
			Email:     row.Email,
			Address:   row.Address,
			CreatedAt: row.CreatedAt,
		}
	}
	return clients, nil
}

func (r *CatalogRepository) ClientExists(ctx context.Context, tenantID uuid.UUID, name string) (bool, error) {
	exists, err := db.New(r.db.DB()).ClientExists(ctx, db.ClientExistsParams{TenantID: tenantID, Lower: name})
	if err != nil {
		return false, fmt.Errorf("query client: %w", err)
	}
	return exists, nil
}

// SaveProduct inserts p. Returns ErrProductExists on a duplicate title.
func (r *CatalogRepository) SaveProduct(ctx context.Context, p *models.Product) error {
	err := db.New(r.db.DB()).InsertProduct(ctx, db.InsertProductParams{
		ID:        p.ID,
		TenantID:  p.TenantID,
		Title:     p.Title,
		Price:     p.Price,
		Category:  p.Category,
		CreatedAt: p.CreatedAt,
	})
	if err != nil {
		return mapInsertError("insert product", err, catalogdomain.ErrProductExists)
	}
	return nil
}

func (r *CatalogRepository) SearchProducts(ctx context.Context, tenantID uuid.UUID, query string, limit int) ([]*models.Product, error) {
	rows, err := db.New(r.db.DB()).SearchProducts(ctx, db.SearchProductsParams{
		TenantID: tenantID,
		Title:    containsPattern(query),
		Limit:    int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	products := make([]*models.Product, len(rows))
	for i, row := range rows {
		products[i] = &models.Product{
			ID:        row.ID,
			TenantID:  row.TenantID,
			Title:     row.Title,
			Price:     row.Price,
			Category:  row.Category,
			CreatedAt: row.CreatedAt,
		}
	}
	return products, nil
}

func (r *CatalogRepository) ProductExists(ctx context.Context, tenantID uuid.UUID, title string) (bool, error) {
	exists, err := db.New(r.db.DB()).ProductExists(ctx, db.ProductExistsParams{TenantID: tenantID, Lower: title})
	if err != nil {
		return false, fmt.Errorf("query product: %w", err)
	}
	return exists, nil
}

// mapInsertError returns exists for a hit on the case-insensitive name
// indexes and wraps anything else.
func mapInsertError(op string, err, exists error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return exists
	}
	return fmt.Errorf("%s: %w", op, err)
}

// containsPattern turns free text into an ILIKE substring pattern with
// wildcard characters matched literally.
func containsPattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}
