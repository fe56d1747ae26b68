package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cotadorplus/cotador/pkg/logger"
	catalogdomain "github.com/cotadorplus/cotador/services/catalog/domain"
	"github.com/cotadorplus/cotador/services/catalog/domain/models"
	"github.com/cotadorplus/cotador/services/catalog/domain/repositories"
)

// Autocomplete result limits.
const (
	ClientSearchLimit  = 5
	ProductSearchLimit = 10
)

// ProductSeed is a budget line offered to the catalog.
type ProductSeed struct {
	Title string
	Price decimal.Decimal
}

// CatalogService serves autocomplete lookups and grows the catalog from
// created budgets.
type CatalogService struct {
	repo repositories.CatalogRepository
	log  logger.Logger
}

// NewCatalogService returns a CatalogService backed by repo.
func NewCatalogService(repo repositories.CatalogRepository, log logger.Logger) *CatalogService {
	return &CatalogService{repo: repo, log: log}
}

// SearchClients returns up to ClientSearchLimit clients whose name contains query.
func (s *CatalogService) SearchClients(ctx context.Context, tenantID uuid.UUID, query string) ([]*models.Client, error) {
	clients, err := s.repo.SearchClients(ctx, tenantID, strings.TrimSpace(query), ClientSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("search clients: %w", err)
	}
	return clients, nil
}

// CreateClient validates and saves a client.
func (s *CatalogService) CreateClient(ctx context.Context, tenantID uuid.UUID, name, phone, email, address string) (*models.Client, error) {
	client, err := models.NewClient(tenantID, name, phone, email, address)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SaveClient(ctx, client); err != nil {
		return nil, fmt.Errorf("save client: %w", err)
	}
	return client, nil
}

// SearchProducts returns up to ProductSearchLimit products whose title contains query.
func (s *CatalogService) SearchProducts(ctx context.Context, tenantID uuid.UUID, query string) ([]*models.Product, error) {
	products, err := s.repo.SearchProducts(ctx, tenantID, strings.TrimSpace(query), ProductSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return products, nil
}

// CreateProduct validates and saves a product.
func (s *CatalogService) CreateProduct(ctx context.Context, tenantID uuid.UUID, title string, price decimal.Decimal, category string) (*models.Product, error) {
	product, err := models.NewProduct(tenantID, title, price, category)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SaveProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}
	return product, nil
}

// EnsureFromBudget adds the budget's client and each line's product to the
// catalog unless an entry with the same name (ignoring case) already exists.
// Losing an insert race to a concurrent consumer counts as existing.
// Blank names are skipped. Every step is attempted; failures are logged and
// returned joined.
func (s *CatalogService) EnsureFromBudget(ctx context.Context, tenantID uuid.UUID, clientName string, seeds []ProductSeed) error {
	var errs []error

	if name := strings.TrimSpace(clientName); name != "" {
		if err := s.ensureClient(ctx, tenantID, name); err != nil {
			errs = append(errs, err)
		}
	}

	seen := make(map[string]struct{}, len(seeds))
	for _, seed := range seeds {
		title := strings.TrimSpace(seed.Title)
		key := strings.ToLower(title)
		if title == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if err := s.ensureProduct(ctx, tenantID, title, seed.Price); err != nil {
			errs = append(errs, err)
		}
	}

	err := errors.Join(errs...)
	if err != nil {
		s.log.WarnContext(ctx, "catalog update from budget incomplete", "tenant_id", tenantID, "error", err)
	}
	return err
}

func (s *CatalogService) ensureClient(ctx context.Context, tenantID uuid.UUID, name string) error {
	exists, err := s.repo.ClientExists(ctx, tenantID, name)
	if err != nil {
		return fmt.Errorf("check client %q: %w", name, err)
	}
	if exists {
		return nil
	}
	// Another consumer may insert the same client after the check.
	if _, err := s.CreateClient(ctx, tenantID, name, "", "", ""); err != nil && !errors.Is(err, catalogdomain.ErrClientExists) {
		return fmt.Errorf("ensure client %q: %w", name, err)
	}
	return nil
}

func (s *CatalogService) ensureProduct(ctx context.Context, tenantID uuid.UUID, title string, price decimal.Decimal) error {
	exists, err := s.repo.ProductExists(ctx, tenantID, title)
	if err != nil {
		return fmt.Errorf("check product %q: %w", title, err)
	}
	if exists {
		return nil
	}
	if _, err := s.CreateProduct(ctx, tenantID, title, price, ""); err != nil && !errors.Is(err, catalogdomain.ErrProductExists) {
		return fmt.Errorf("ensure product %q: %w", title, err)
	}
	return nil
}
