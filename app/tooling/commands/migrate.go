// Package commands holds the tooling subcommands.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cultivarhq/cultivar/infrastructure/databases/postgresdb"
)

// Migrate creates the schema in the database.
func Migrate(pool *pgxpool.Pool, log *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	log.InfoContext(ctx, "migration started", "step", "checking database status")

	if err := postgresdb.StatusCheck(ctx, pool); err != nil {
		return fmt.Errorf("database status check failed: %w", err)
	}

	log.InfoContext(ctx, "database status check successful", "step", "running migrations")

	if err := postgresdb.Migrate(ctx, pool); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	log.InfoContext(ctx, "migrations completed successfully")
	return nil
}
