package main

import (
	"context"
	"embed"
	"log/slog"
	"os"

	"github.com/cotadorplus/cotador/pkg/config"
	"github.com/cotadorplus/cotador/pkg/migrator"
)

//go:embed *.sql
var MigrationsFS embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := migrator.RunMigrations(context.Background(), cfg.DatabaseURL, "profile", MigrationsFS); err != nil {
		slog.Error("migration failed", "context", "profile", "error", err)
		os.Exit(1)
	}
	slog.Info("migrations applied", "context", "profile")
}
