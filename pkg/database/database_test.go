package database

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	"github.com/cotadorplus/cotador/pkg/config"
	"github.com/cotadorplus/cotador/pkg/logger"
)

func nopLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

func TestNewPool_UnreachableHost(t *testing.T) {
	_, err := NewPool(context.Background(), "postgres://u:p@localhost:1/none?sslmode=disable&connect_timeout=1", nopLogger())
	if err == nil {
		t.Fatal("expected error when Postgres is unreachable, got nil")
	}
}

// Integration tests: skipped unless DATABASE_URL is set.
func TestWithTxIntegration(t *testing.T) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set; skipping integration tests")
	}

	ctx := context.Background()
	db, err := NewPool(ctx, url, nopLogger())
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	defer db.Close() //nolint:errcheck
	// temp tables are per connection
	db.DB().SetMaxOpenConns(1)

	if _, err := db.DB().ExecContext(ctx, `CREATE TEMP TABLE tx_check (id int)`); err != nil {
		t.Fatalf("create temp table: %v", err)
	}

	t.Run("rollback on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := db.WithTx(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, `INSERT INTO tx_check VALUES (1)`); err != nil {
				return err
			}
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	})

	t.Run("ping", func(t *testing.T) {
		if err := db.Ping(ctx); err != nil {
			t.Fatalf("Ping failed: %v", err)
		}
	})
}
