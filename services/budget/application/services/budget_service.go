package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	pkgcache "github.com/cotadorplus/cotador/pkg/cache"
	"github.com/cotadorplus/cotador/pkg/logger"
	"github.com/cotadorplus/cotador/pkg/telemetry"
	"github.com/cotadorplus/cotador/services/budget/domain/events"
	"github.com/cotadorplus/cotador/services/budget/domain/models"
	"github.com/cotadorplus/cotador/services/budget/domain/repositories"
)

// EventPublisher hands domain events to the transport.
type EventPublisher interface {
	Publish(ctx context.Context, evt events.DomainEvent) error
}

// BudgetReadCache is the read model behind GetByID. *cache.BudgetCache
// implements it.
type BudgetReadCache interface {
	Get(ctx context.Context, id uuid.UUID) (*pkgcache.CachedBudget, error)
	Generation(ctx context.Context, id uuid.UUID) (int64, error)
	SetIfGeneration(ctx context.Context, b *pkgcache.CachedBudget, gen int64) (bool, error)
	Invalidate(ctx context.Context, id uuid.UUID) error
}

// BudgetService orchestrates budget creation, event emission and reads.
// Reads are served from Redis cache when available.
type BudgetService struct {
	create    *CreateBudgetUseCase
	repo      repositories.BudgetRepository
	cache     BudgetReadCache
	publisher EventPublisher
	log       logger.Logger
	eventOpts []events.Option
	metrics   budgetMetrics
}

// NewBudgetService returns a BudgetService. cache may be nil.
func NewBudgetService(
	repo repositories.BudgetRepository,
	budgetCache BudgetReadCache,
	publisher EventPublisher,
	log logger.Logger,
	eventOpts ...events.Option,
) *BudgetService {
	return &BudgetService{
		create:    NewCreateBudgetUseCase(repo),
		repo:      repo,
		cache:     budgetCache,
		publisher: publisher,
		log:       log,
		eventOpts: eventOpts,
		metrics:   newBudgetMetrics(),
	}
}

// Create runs the create-budget use case and then emits BudgetCreated.
// The budget is committed before emission, so emission failures are logged
// and reported but do not fail the call.
func (s *BudgetService) Create(ctx context.Context, tenantID string, in CreateBudgetInput, meta events.Metadata) (*models.Budget, error) {
	budget, err := s.create.Execute(ctx, in)
	if err != nil {
		return nil, err
	}
	s.metrics.created.Add(ctx, 1)
	s.metrics.value.Record(ctx, budget.Total.InexactFloat64())

	if err := s.EmitCreated(ctx, budget, tenantID, meta); err != nil {
		s.metrics.eventsFailed.Add(ctx, 1, metric.WithAttributes(attribute.String("event_type", events.EventTypeBudgetCreated)))
		s.log.ErrorContext(ctx, "budget created but event was not published",
			"budget_id", budget.ID, "tenant_id", tenantID, "error", err)
		telemetry.CaptureError(ctx, err)
	}
	return budget, nil
}

// EmitCreated builds a BudgetCreated event for budget, checks it against the
// event schema and publishes it. Schema failures wrap ErrSchemaValidation and
// nothing is published.
func (s *BudgetService) EmitCreated(ctx context.Context, budget *models.Budget, tenantID string, meta events.Metadata) error {
	evt := events.NewBudgetCreated(budget, tenantID, meta, s.eventOpts...)
	if err := events.ValidateBudgetCreated(evt.Message()); err != nil {
		return fmt.Errorf("emit budget created: %w", err)
	}
	if s.publisher == nil {
		return errors.New("emit budget created: no publisher configured")
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		return fmt.Errorf("emit budget created: %w", err)
	}
	s.metrics.eventsEmitted.Add(ctx, 1)
	return nil
}

// List returns every budget.
func (s *BudgetService) List(ctx context.Context) ([]*models.Budget, error) {
	budgets, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	return budgets, nil
}

// GetByID retrieves a Budget using a read-through cache:
//  1. Check Redis first.
//  2. On miss or cache error, query Postgres.
//  3. Warm the cache with the Postgres result in the background, unless a
//     status change invalidated the entry while Postgres was being read.
func (s *BudgetService) GetByID(ctx context.Context, id uuid.UUID) (*models.Budget, error) {
	var (
		gen  int64
		warm bool
	)
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		switch {
		case err == nil:
			return FromCached(cached), nil
		case errors.Is(err, pkgcache.ErrCacheMiss):
			if gen, err = s.cache.Generation(ctx, id); err != nil {
				s.log.WarnContext(ctx, "budget cache generation read failed", "budget_id", id, "error", err)
			} else {
				warm = true
			}
		default:
			s.log.WarnContext(ctx, "budget cache read failed", "budget_id", id, "error", err)
		}
	}

	budget, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get budget: %w", err)
	}

	if warm {
		entry := ToCached(budget)
		go func() {
			if _, err := s.cache.SetIfGeneration(context.Background(), entry, gen); err != nil {
				s.log.Warn("budget cache warm failed", "budget_id", entry.ID, "error", err)
			}
		}()
	}
	return budget, nil
}

// WarmCache loads a budget from Postgres into the cache. When a status change
// invalidates the entry during the load, nothing is written and the next
// GetByID fills it.
func (s *BudgetService) WarmCache(ctx context.Context, id uuid.UUID) error {
	if s.cache == nil {
		return nil
	}
	gen, err := s.cache.Generation(ctx, id)
	if err != nil {
		return fmt.Errorf("warm budget cache: %w", err)
	}
	budget, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("warm budget cache: %w", err)
	}
	stored, err := s.cache.SetIfGeneration(ctx, ToCached(budget), gen)
	if err != nil {
		return fmt.Errorf("warm budget cache: %w", err)
	}
	if !stored {
		s.log.DebugContext(ctx, "budget cache warm skipped, entry was invalidated", "budget_id", id)
	}
	return nil
}

// UpdateStatus persists a new status for an existing budget and invalidates
// its cache entry. The status is parsed first; unknown values wrap
// ErrInvalidStatus.
func (s *BudgetService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	st, err := models.ParseStatus(status)
	if err != nil {
		return err
	}
	if err := s.repo.UpdateStatus(ctx, id, st); err != nil {
		return fmt.Errorf("update budget status: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, id); err != nil {
			s.log.WarnContext(ctx, "budget cache invalidation failed", "budget_id", id, "error", err)
		}
	}
	return nil
}

// ToCached converts a Budget into its cache representation.
func ToCached(b *models.Budget) *pkgcache.CachedBudget {
	items := make([]pkgcache.CachedBudgetItem, len(b.Items))
	for i, it := range b.Items {
		items[i] = pkgcache.CachedBudgetItem{
			ID:          it.ID,
			Description: it.Description,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
		}
	}
	return &pkgcache.CachedBudget{
		ID:         b.ID,
		ClientName: b.ClientName,
		Items:      items,
		Total:      b.Total,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
	}
}

// FromCached rebuilds a Budget from its cache representation. The cached
// total is kept as-is.
func FromCached(c *pkgcache.CachedBudget) *models.Budget {
	items := make([]models.BudgetItem, len(c.Items))
	for i, it := range c.Items {
		items[i] = models.BudgetItem{
			ID:          it.ID,
			Description: it.Description,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
		}
	}
	return &models.Budget{
		ID:         c.ID,
		ClientName: c.ClientName,
		Items:      items,
		Total:      c.Total,
		Status:     models.Status(c.Status),
		CreatedAt:  c.CreatedAt,
	}
}
