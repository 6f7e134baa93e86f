// Package migrations applies the embedded SQL schema migrations in order.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"

	"github.com/grupoidi/deptoweb/internal/db"
	"github.com/grupoidi/deptoweb/internal/pkg/logger"
)

//go:embed sql/*.sql
var migrationFiles embed.FS

// Run applies every migration that has not been applied yet. Each migration
// runs in its own transaction and is recorded in schema_migrations.
func Run(ctx context.Context, database *db.PostgresDB) error {
	_, err := database.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("error creating schema_migrations table: %w", err)
	}

	entries, err := migrationFiles.ReadDir("sql")
	if err != nil {
		return fmt.Errorf("error reading embedded migrations: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		applied, err := isApplied(ctx, database, name)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		content, err := migrationFiles.ReadFile("sql/" + name)
		if err != nil {
			return fmt.Errorf("error reading migration %s: %w", name, err)
		}

		err = database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, string(content)); err != nil {
				return fmt.Errorf("error applying migration %s: %w", name, err)
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO schema_migrations (version) VALUES ($1)`, name); err != nil {
				return fmt.Errorf("error recording migration %s: %w", name, err)
			}
			return nil
		})
		if err != nil {
			return err
		}

		logger.Info().Str("migration", name).Msg("Applied migration")
	}

	return nil
}

func isApplied(ctx context.Context, database *db.PostgresDB, version string) (bool, error) {
	var exists bool
	err := database.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking migration %s: %w", version, err)
	}
	return exists, nil
}
