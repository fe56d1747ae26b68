package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	// BudgetCacheTTL is the time-to-live for cached budgets.
	BudgetCacheTTL = 24 * time.Hour

	// generationTTL outlives any entry written under that generation.
	generationTTL = 2 * BudgetCacheTTL

	budgetCacheKeyPrefix = "budget"
)

// ErrCacheMiss is returned by Get when the key does not exist or has expired.
var ErrCacheMiss = redis.Nil

// CachedBudgetItem is one line of a CachedBudget.
type CachedBudgetItem struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
}

// CachedBudget is the denormalized read model stored in Redis as a JSON value.
type CachedBudget struct {
	ID         uuid.UUID          `json:"id"`
	ClientName string             `json:"client_name"`
	Items      []CachedBudgetItem `json:"items"`
	Total      decimal.Decimal    `json:"total"`
	Status     string             `json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
}

// BudgetCache provides structured read/write operations for budget cache entries.
//
// Every budget has a generation counter next to its entry. Invalidate bumps
// it, and SetIfGeneration only writes when the counter still holds the value
// read before the budget was loaded from Postgres. A writer holding a
// snapshot older than the last invalidation therefore cannot put it back.
//
// Key format: "budget:{budgetID}" and "budget:{budgetID}:gen"
type BudgetCache struct {
	client *RedisClient
}

// NewBudgetCache creates a new BudgetCache backed by the given RedisClient.
func NewBudgetCache(r *RedisClient) *BudgetCache {
	return &BudgetCache{client: r}
}

// Get retrieves a cached budget by ID.
// Returns ErrCacheMiss when the key does not exist or has expired.
func (c *BudgetCache) Get(ctx context.Context, budgetID uuid.UUID) (*CachedBudget, error) {
	raw, err := c.client.Client().Get(ctx, c.key(budgetID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var b CachedBudget
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &b, nil
}

// Generation returns the invalidation counter of a budget, 0 if it was never
// invalidated. Read it before loading the budget that will be cached.
func (c *BudgetCache) Generation(ctx context.Context, budgetID uuid.UUID) (int64, error) {
	gen, err := c.client.Client().Get(ctx, c.generationKey(budgetID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("cache generation: %w", err)
	}
	return gen, nil
}

// SetIfGeneration writes b with a 24-hour TTL unless the budget was
// invalidated since gen was read. It reports whether the entry was written.
func (c *BudgetCache) SetIfGeneration(ctx context.Context, b *CachedBudget, gen int64) (bool, error) {
	raw, err := json.Marshal(b)
	if err != nil {
		return false, fmt.Errorf("cache encode: %w", err)
	}

	genKey := c.generationKey(b.ID)
	stored := false
	err = c.client.Client().Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != gen {
			return nil
		}
		if _, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, c.key(b.ID), raw, BudgetCacheTTL)
			return nil
		}); err != nil {
			return err
		}
		stored = true
		return nil
	}, genKey)
	switch {
	case errors.Is(err, redis.TxFailedErr):
		// The counter moved between WATCH and EXEC.
		return false, nil
	case err != nil:
		return false, fmt.Errorf("cache set: %w", err)
	}
	return stored, nil
}

// Invalidate removes a cached budget and bumps its generation in one
// transaction. Call it after the change is committed to Postgres.
func (c *BudgetCache) Invalidate(ctx context.Context, budgetID uuid.UUID) error {
	genKey := c.generationKey(budgetID)
	_, err := c.client.Client().TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey)
		pipe.Expire(ctx, genKey, generationTTL)
		pipe.Del(ctx, c.key(budgetID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

// key builds the Redis key: "budget:{budgetID}"
func (c *BudgetCache) key(budgetID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", budgetCacheKeyPrefix, budgetID)
}

func (c *BudgetCache) generationKey(budgetID uuid.UUID) string {
	return c.key(budgetID) + ":gen"
}
