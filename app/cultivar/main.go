package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/cultivarhq/cultivar/app/cultivar/api"
	"github.com/cultivarhq/cultivar/app/cultivar/config"
	"github.com/cultivarhq/cultivar/bridge/scaffolding/mid"
	"github.com/cultivarhq/cultivar/core/repositories/taskrepo"
	"github.com/cultivarhq/cultivar/core/repositories/taskrepo/stores/taskpgxstore"
	"github.com/cultivarhq/cultivar/core/scheduling"
	"github.com/cultivarhq/cultivar/infrastructure/databases/postgresdb"
	"github.com/cultivarhq/cultivar/infrastructure/web"
	"github.com/cultivarhq/cultivar/sdk/logger"
	"github.com/cultivarhq/cultivar/sdk/telemetry"
)

var build = "develop"

const appName = "CULTIVAR"

func main() {
	godotenv.Load()
	ctx := context.Background()

	log, err := logger.NewFromEnv(appName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}

	if err := run(ctx, log); err != nil {
		log.ErrorContext(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)

	pg, err := postgresdb.NewFromEnv(appName, postgresdb.WithLogger(log.Logger))
	if err != nil {
		return fmt.Errorf("configuring postgres support: %w", err)
	}
	defer func() {
		log.InfoContext(ctx, "shutdown", "status", "closing database connection")
		pg.Close()
	}()

	log.InfoContext(ctx, "startup", "status", "initializing repository support")
	taskRepository := taskrepo.NewRepository(log, taskpgxstore.NewStore(log, pg))
	engine := scheduling.NewEngine(log, taskRepository)

	webCfg, err := web.LoadServerConfig(appName)
	if err != nil {
		return fmt.Errorf("webserver: %w", err)
	}

	cfg := config.Cultivar{
		Build:  build,
		Logger: log,
		DB:     pg,
		Engine: engine,
		Repositories: config.Repositories{
			Task: taskRepository,
		},
	}

	server := web.NewServer(webCfg, webHandler(webCfg.APIRoute, cfg), logger.NewStdLogger(log, slog.LevelError))

	serverErrors := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "startup", "status", "api router started", "host", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.InfoContext(ctx, "shutdown", "status", "shutdown started", "signal", sig)
		defer log.InfoContext(ctx, "shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(ctx, webCfg.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func webHandler(prefix string, cfg config.Cultivar) http.Handler {
	app := web.NewHandler(
		web.WithLogging(cfg.Logger.Logger),
		web.WithTelemetry(telemetry.NewTelemetry()),
		web.WithGlobalMiddleware(
			mid.PublicCORS(),
			mid.Logger(cfg.Logger),
			mid.Errors(cfg.Logger),
			mid.Metrics(),
			mid.Panics(),
		),
	)

	api.AddRoutes(prefix, app, cfg)

	return app
}
