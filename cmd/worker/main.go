package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/cotadorplus/cotador/pkg/app"
	"github.com/cotadorplus/cotador/pkg/cache"
	"github.com/cotadorplus/cotador/pkg/config"
	"github.com/cotadorplus/cotador/pkg/database"
	"github.com/cotadorplus/cotador/pkg/events"
	"github.com/cotadorplus/cotador/pkg/logger"
	"github.com/cotadorplus/cotador/pkg/telemetry"
	"github.com/cotadorplus/cotador/pkg/workflows"
	"github.com/cotadorplus/cotador/services/budget/application/subscribers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close() //nolint:errcheck
	log.Info("database pool connected")

	if cfg.EventBus == config.EventBusMemory {
		log.Error("EVENT_BUS=memory runs the consumers inside cotador-api; the worker needs the postgres bus")
		os.Exit(1) //nolint:gocritic
	}

	eventBus, err := events.Open(ctx, cfg, log, false)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	a := &app.Application{
		Config:   cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
	}

	if redisClient, err := cache.NewRedisClient(cfg); err != nil {
		log.Warn("redis unavailable, budget cache warming disabled", "error", err)
	} else {
		defer redisClient.Close() //nolint:errcheck
		a.Redis = redisClient
		log.Info("redis connected")
	}

	if cfg.TemporalEnabled {
		tc, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
		if err != nil {
			log.Error("failed to initialize temporal client", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer tc.Close()
		a.TemporalClient = tc
	}

	if err := subscribers.Register(ctx, a); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	<-ctx.Done()
	log.Info("shutting down worker...")
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
}
