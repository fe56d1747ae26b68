package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/cotadorplus/cotador/docs/swagger"
	"github.com/cotadorplus/cotador/pkg/app"
	"github.com/cotadorplus/cotador/pkg/auth"
	"github.com/cotadorplus/cotador/pkg/cache"
	"github.com/cotadorplus/cotador/pkg/config"
	"github.com/cotadorplus/cotador/pkg/database"
	"github.com/cotadorplus/cotador/pkg/errhttp"
	"github.com/cotadorplus/cotador/pkg/events"
	"github.com/cotadorplus/cotador/pkg/httpx"
	"github.com/cotadorplus/cotador/pkg/logger"
	"github.com/cotadorplus/cotador/pkg/telemetry"
	"github.com/cotadorplus/cotador/pkg/workflows"
	budgetApi "github.com/cotadorplus/cotador/services/budget/application/api"
	"github.com/cotadorplus/cotador/services/budget/application/subscribers"
	catalogApi "github.com/cotadorplus/cotador/services/catalog/application/api"
	profileApi "github.com/cotadorplus/cotador/services/profile/application/api"
)

// @title					Cotador+ API
// @version				1.0
// @description			Budgets, catalog autocomplete and provider profile for Cotador+.
// @contact.name			Cotador+ Support
// @contact.email			suporte@cotador.com.br
// @host					localhost:8080
// @BasePath				/api
// @schemes				http https
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
	errhttp.HideInternalErrors(cfg.Environment == config.EnvProduction)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting is optional.
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer pool.Close() //nolint:errcheck
	log.Info("database pool connected")

	eventBus, err := events.Open(ctx, cfg, log, true)
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

	health := httpx.HealthChecks{
		Database: pool,
		EventBus: eventBus,
		Version:  cfg.ServiceVersion,
	}

	if redisClient, err := cache.NewRedisClient(cfg); err != nil {
		log.Warn("redis unavailable, budget cache disabled", "error", err)
	} else {
		defer redisClient.Close() //nolint:errcheck
		a.Redis = redisClient
		health.Redis = redisClient
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

	// With the in-memory bus nothing outside this process sees budget events.
	if eventBus.InMemory() {
		if err := subscribers.Register(ctx, a); err != nil {
			log.Error("failed to register in-process subscribers", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		log.Warn("EVENT_BUS=memory: budget events are handled in-process and lost on restart")
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(health))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		r.Use(auth.RequireTenant)
		registerRoutes(r, a)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) {
	budgetApi.BudgetRoutes(r, a)
	catalogApi.CatalogRoutes(r, a)
	profileApi.ProfileRoutes(r, a)
}
