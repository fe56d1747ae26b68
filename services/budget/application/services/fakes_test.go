package services

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"

	pkgcache "github.com/cotadorplus/cotador/pkg/cache"
	"github.com/cotadorplus/cotador/pkg/config"
	"github.com/cotadorplus/cotador/pkg/logger"
	budgetdomain "github.com/cotadorplus/cotador/services/budget/domain"
	"github.com/cotadorplus/cotador/services/budget/domain/events"
	"github.com/cotadorplus/cotador/services/budget/domain/models"
)

// memoryRepo is an in-memory BudgetRepository.
type memoryRepo struct {
	mu      sync.Mutex
	budgets map[uuid.UUID]*models.Budget
	order   []uuid.UUID
	saveErr error

	// afterGet runs once a read has been served, before it is returned.
	afterGet func()
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{budgets: make(map[uuid.UUID]*models.Budget)}
}

func (r *memoryRepo) Save(_ context.Context, b *models.Budget) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	if _, ok := r.budgets[b.ID]; ok {
		return budgetdomain.ErrBudgetAlreadyExists
	}
	cp := *b
	cp.Items = append([]models.BudgetItem(nil), b.Items...)
	r.budgets[b.ID] = &cp
	r.order = append(r.order, b.ID)
	return nil
}

func (r *memoryRepo) FindAll(context.Context) ([]*models.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Budget, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, r.budgets[r.order[i]])
	}
	return out, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Budget, error) {
	r.mu.Lock()
	b, ok := r.budgets[id]
	var cp models.Budget
	if ok {
		cp = *b
	}
	hook := r.afterGet
	r.mu.Unlock()

	if !ok {
		return nil, budgetdomain.ErrBudgetNotFound
	}
	if hook != nil {
		hook()
	}
	return &cp, nil
}

func (r *memoryRepo) UpdateStatus(_ context.Context, id uuid.UUID, status models.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.budgets[id]
	if !ok {
		return budgetdomain.ErrBudgetNotFound
	}
	b.Status = status
	return nil
}

func (r *memoryRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.budgets)
}

// memoryCache mirrors the generation guard of pkgcache.BudgetCache.
type memoryCache struct {
	mu      sync.Mutex
	entries map[uuid.UUID]pkgcache.CachedBudget
	gens    map[uuid.UUID]int64
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		entries: make(map[uuid.UUID]pkgcache.CachedBudget),
		gens:    make(map[uuid.UUID]int64),
	}
}

func (c *memoryCache) Get(_ context.Context, id uuid.UUID) (*pkgcache.CachedBudget, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[id]
	if !ok {
		return nil, pkgcache.ErrCacheMiss
	}
	return &e, nil
}

func (c *memoryCache) Generation(_ context.Context, id uuid.UUID) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[id], nil
}

func (c *memoryCache) SetIfGeneration(_ context.Context, b *pkgcache.CachedBudget, gen int64) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[b.ID] != gen {
		return false, nil
	}
	c.entries[b.ID] = *b
	return true, nil
}

func (c *memoryCache) Invalidate(_ context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[id]++
	delete(c.entries, id)
	return nil
}

func (c *memoryCache) has(id uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[id]
	return ok
}

// recordingPublisher captures published events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.DomainEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, evt events.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, evt)
	return nil
}

func (p *recordingPublisher) published() []events.DomainEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]events.DomainEvent(nil), p.events...)
}

func discardLogger() logger.Logger {
	return logger.NewWithWriter(&config.Config{LogLevel: "error"}, io.Discard)
}
