// Package subscribers holds the consumers of budget events. cmd/worker runs
// them against the Postgres bus; cmd/api runs them in-process when the
// in-memory bus is selected.
package subscribers

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cotadorplus/cotador/pkg/logger"
	"github.com/cotadorplus/cotador/pkg/telemetry"
	"github.com/cotadorplus/cotador/services/budget/domain/events"
	catalogsvc "github.com/cotadorplus/cotador/services/catalog/application/services"
)

type budgetCacheWarmer interface {
	WarmCache(ctx context.Context, id uuid.UUID) error
}

type catalogEnsurer interface {
	EnsureFromBudget(ctx context.Context, tenantID uuid.UUID, clientName string, seeds []catalogsvc.ProductSeed) error
}

type documentStarter interface {
	StartBudgetDocument(ctx context.Context, taskQueue, budgetID string, input any) (string, error)
}

// BudgetCreatedHandler reacts to budget.created. Any collaborator may be nil.
type BudgetCreatedHandler struct {
	log       logger.Logger
	budgets   budgetCacheWarmer
	catalog   catalogEnsurer
	documents documentStarter
	taskQueue string
}

// Handle is idempotent: the cache is warmed from Postgres rather than from the
// event, catalog entries are only added when missing and the document
// workflow id is derived from the budget id. Only a failed workflow start is
// returned for redelivery.
func (h *BudgetCreatedHandler) Handle(ctx context.Context, msg *message.Message) error {
	evt, err := events.DecodeBudgetCreated(msg.Payload)
	if err != nil {
		// Redelivery cannot fix a malformed message.
		h.log.ErrorContext(ctx, "dropping invalid budget.created message", "message_id", msg.UUID, "error", err)
		telemetry.CaptureError(ctx, err)
		return nil
	}

	if h.budgets != nil {
		// The event may be older than the stored budget, so it is never cached as-is.
		if id, err := uuid.Parse(evt.Payload.BudgetID); err != nil {
			h.log.WarnContext(ctx, "skipping cache warm, budget id is not a uuid", "budget_id", evt.Payload.BudgetID)
		} else if err := h.budgets.WarmCache(ctx, id); err != nil {
			h.log.WarnContext(ctx, "cache warm failed for budget.created", "budget_id", id, "error", err)
		} else {
			h.log.InfoContext(ctx, "cache warmed", "budget_id", id)
		}
	}

	if h.catalog != nil {
		if tenantID, err := uuid.Parse(evt.TenantID); err != nil {
			h.log.WarnContext(ctx, "skipping catalog update, tenant is not a uuid", "tenant_id", evt.TenantID)
		} else {
			// Failures are logged by the catalog service.
			_ = h.catalog.EnsureFromBudget(ctx, tenantID, evt.Payload.ClientName, productSeeds(evt))
		}
	}

	if h.documents != nil {
		if _, err := h.documents.StartBudgetDocument(ctx, h.taskQueue, evt.AggregateID, evt); err != nil {
			return fmt.Errorf("budget %s: %w", evt.AggregateID, err)
		}
	}
	return nil
}

func productSeeds(evt events.BudgetCreatedMessage) []catalogsvc.ProductSeed {
	seeds := make([]catalogsvc.ProductSeed, len(evt.Payload.Items))
	for i, it := range evt.Payload.Items {
		seeds[i] = catalogsvc.ProductSeed{Title: it.Description, Price: decimal.NewFromFloat(it.UnitPrice)}
	}
	return seeds
}
