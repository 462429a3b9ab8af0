package postgresdb

import (
	"context"
	"crypto/sha256"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cultivarhq/cultivar/schema"
)

// Migrate runs all pending migrations from schema/pgmigrations/*.sql.
// Migrations are applied in alphabetical order (numeric prefixes: 001_xxx.sql,
// 002_xxx.sql) and tracked in the schema_migrations table. Forward-only, no
// rollbacks.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if err := StatusCheck(ctx, pool); err != nil {
		return fmt.Errorf("status check database: %w", err)
	}

	if err := runMigrations(ctx, pool, schema.MigrationsFS, "pgmigrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(ctx context.Context, pool *pgxpool.Pool, migrationsFS embed.FS, migrationsDir string) error {
	if err := createMigrationsTable(ctx, pool); err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	files, err := getMigrationFiles(migrationsFS, migrationsDir)
	if err != nil {
		return fmt.Errorf("get migration files: %w", err)
	}

	for _, file := range files {
		if err := applyMigration(ctx, pool, migrationsFS, filepath.Join(migrationsDir, file)); err != nil {
			return fmt.Errorf("apply migration %s: %w", file, err)
		}
	}

	return nil
}

func createMigrationsTable(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(255) PRIMARY KEY,
			checksum VARCHAR(64) NOT NULL,
			applied_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`
	_, err := pool.Exec(ctx, query)
	return err
}

func getMigrationFiles(migrationsFS embed.FS, migrationsDir string) ([]string, error) {
	var files []string

	err := fs.WalkDir(migrationsFS, migrationsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".sql") {
			files = append(files, filepath.Base(path))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func applyMigration(ctx context.Context, pool *pgxpool.Pool, migrationsFS embed.FS, filePath string) error {
	version := filepath.Base(filePath)

	content, err := fs.ReadFile(migrationsFS, filePath)
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}

	checksum := fmt.Sprintf("%x", sha256.Sum256(content))

	var existingChecksum string
	err = pool.QueryRow(ctx, "SELECT checksum FROM schema_migrations WHERE version = $1", version).Scan(&existingChecksum)
	if err == nil {
		if existingChecksum != checksum {
			return fmt.Errorf("checksum mismatch: migration %s was modified after being applied", version)
		}
		return nil
	}

	if _, err := pool.Exec(ctx, string(content)); err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}

	_, err = pool.Exec(ctx,
		"INSERT INTO schema_migrations (version, checksum) VALUES ($1, $2)",
		version, checksum)
	if err != nil {
		return fmt.Errorf("record migration: %w", err)
	}

	return nil
}
