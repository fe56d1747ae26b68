package app

import (
	"github.com/cotadorplus/cotador/pkg/cache"
	"github.com/cotadorplus/cotador/pkg/config"
	"github.com/cotadorplus/cotador/pkg/database"
	"github.com/cotadorplus/cotador/pkg/events"
	"github.com/cotadorplus/cotador/pkg/logger"
	"github.com/cotadorplus/cotador/pkg/workflows"
)

// Application holds shared infrastructure dependencies for all bounded contexts.
// Pass it to every <context>.Routes call during server initialization and to
// the worker's subscriber registration.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context
// methods and trace_id, span_id, request_id and tenant_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "budget created", "budget_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config         *config.Config
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient         // nil when Redis is unavailable; caches are skipped
	TemporalClient *workflows.TemporalClient // nil unless TEMPORAL_ENABLED
}
