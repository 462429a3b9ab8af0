package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/cultivarhq/cultivar/app/tooling/commands"
	"github.com/cultivarhq/cultivar/infrastructure/databases/postgresdb"
	"github.com/cultivarhq/cultivar/sdk/logger"
)

var build = "develop"

const appName = "TOOLING"

func main() {
	godotenv.Load()

	log, err := logger.NewFromEnv(appName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	ctx := context.Background()

	if err := run(ctx, log); err != nil {
		log.ErrorContext(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)

	var command string
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	if command == "help" || command == "--help" || command == "-h" {
		printHelp()
		return nil
	}

	pg, err := postgresdb.NewFromEnv(appName, postgresdb.WithTracer(postgresdb.NewLoggingQueryTracer(log.Logger)))
	if err != nil {
		return fmt.Errorf("configuring postgres support: %w", err)
	}
	defer func() {
		log.InfoContext(ctx, "shutdown", "status", "closing database connection")
		pg.Close()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan error, 1)
	go func() {
		done <- processCommands(ctx, log, command, pg)
	}()

	select {
	case err := <-done:
		return err

	case sig := <-shutdown:
		log.InfoContext(ctx, "shutdown", "status", "shutdown started", "signal", sig)

		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		select {
		case err := <-done:
			return err
		case <-shutdownCtx.Done():
			return fmt.Errorf("shutdown timeout: %w", shutdownCtx.Err())
		}
	}
}

func processCommands(ctx context.Context, log *logger.Logger, command string, pg *pgxpool.Pool) error {
	switch command {
	case "migrate":
		if err := commands.Migrate(pg, log.Logger); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		return nil

	default:
		printHelp()
		return nil
	}
}

func printHelp() {
	fmt.Println("Available commands:")
	fmt.Println("  migrate - create the schema in the database")
}
