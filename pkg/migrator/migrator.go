// Package migrator applies the goose migrations embedded by each bounded
// context under migrations/<context>.
package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// RunMigrations applies every pending migration in files against dbURL.
// Each context tracks its versions in its own table ("goose_<context>") so
// independently numbered migration sets can share one database.
func RunMigrations(ctx context.Context, dbURL, contextName string, files fs.FS) error {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close() //nolint:errcheck

	goose.SetBaseFS(files)
	goose.SetTableName(VersionTable(contextName))

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to apply %s migrations: %w", contextName, err)
	}
	return nil
}

// VersionTable returns the goose version table used for contextName.
func VersionTable(contextName string) string {
	return "goose_" + contextName
}
