package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/catalog-export/internal/config"
	"github.com/JonMunkholm/catalog-export/internal/core"
	_ "github.com/JonMunkholm/catalog-export/internal/core/formats" // Register all serializers
	"github.com/JonMunkholm/catalog-export/internal/logging"
	"github.com/JonMunkholm/catalog-export/internal/source"
	"github.com/JonMunkholm/catalog-export/internal/web"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(os.Stdout, cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"catalog_source", cfg.Catalog.Source,
		"export_max_concurrent", cfg.Limits.MaxConcurrentExports,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)
	slog.Debug("configuration", "config", cfg.String())

	ctx := context.Background()

	var db core.DBTX
	if cfg.Catalog.Source == config.SourcePostgres {
		pool, err := source.OpenPool(ctx, cfg.Catalog)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		slog.Info("connected to database", "table", cfg.Catalog.Table)
		db = pool
	}

	src, err := source.New(cfg.Catalog, db)
	if err != nil {
		slog.Error("failed to create catalog source", "error", err)
		os.Exit(1)
	}

	service := core.NewService(src, cfg.ServiceConfig())

	slog.Info("formats registered", "count", len(core.Registered()))

	// A failed first load is not fatal; the scheduler or POST /api/catalog/refresh retries.
	if n, err := service.Refresh(ctx); err != nil {
		slog.Error("initial catalog load failed", "source", src.Name(), "error", err)
	} else {
		slog.Info("catalog loaded", "source", src.Name(), "products", n)
	}

	server := web.NewServer(service, cfg)

	// Create cancellable context for background jobs
	jobCtx, cancelJobs := context.WithCancel(context.Background())

	go service.StartRefreshScheduler(jobCtx, cfg.Catalog.RefreshInterval)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		cancelJobs()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		// Wait for in-flight exports to finish (with timeout)
		status := service.LimiterStatus()
		if status.Active > 0 {
			slog.Info("waiting for exports to complete", "active", status.Active)
			if err := service.WaitForExports(shutdownCtx); err != nil {
				slog.Warn("exports did not complete in time", "error", err)
			} else {
				slog.Info("all exports completed")
			}
		}

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
