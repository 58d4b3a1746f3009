// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the WebCraft API server.
// It loads configuration, connects to the optional backing services, wires
// the AI provider chains into the generation orchestrator, and starts the
// HTTP server with graceful shutdown support.
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"webcraft/internal/ai"
	"webcraft/internal/archive"
	"webcraft/internal/cache"
	"webcraft/internal/config"
	"webcraft/internal/database"
	"webcraft/internal/generator"
	"webcraft/internal/handlers"
	"webcraft/internal/metrics"
	"webcraft/internal/middleware"
	"webcraft/internal/router"
	"webcraft/internal/storage"
	"webcraft/internal/store"
	"webcraft/internal/templates"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(newLogger(os.Stdout, cfg.LogLevel, cfg.LogFormat))

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"storage", cfg.StorageDriver,
	)

	if err := run(cfg); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped gracefully")
}

// run wires all components and serves until SIGINT or SIGTERM.
func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	approach, ok := generator.ParseApproach(cfg.GenerationApproach)
	if !ok {
		slog.Warn("unknown generation approach, using hybrid", "value", cfg.GenerationApproach)
	}

	// Website store: in-memory by default, PostgreSQL when configured.
	var websites store.Store = store.NewMemoryStore()
	if cfg.StorageDriver == config.StoragePostgres {
		db, err := database.Connect(ctx, cfg.DSN())
		if err != nil {
			return err
		}
		defer db.Close()

		if err := database.Migrate(ctx, db); err != nil {
			return err
		}
		websites = store.NewPostgresStore(db)
	}

	// Archive cache in Valkey (optional).
	var archives handlers.ArchiveCache
	if cfg.ValkeyHost != "" {
		client, err := cache.ConnectValkey(ctx, cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			return err
		}
		defer client.Close()
		archives = cache.NewArchiveCache(client, cache.DefaultArchiveTTL)
		slog.Info("valkey archive cache enabled", "host", cfg.ValkeyHost)
	} else {
		slog.Warn("valkey not configured, archive cache disabled")
	}

	// Archive storage in S3 (optional).
	var objects handlers.ArchiveStorage
	s3Client, err := storage.New(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket)
	if err != nil {
		return err
	}
	if s3Client != nil {
		objects = s3Client
		slog.Info("s3 archive storage enabled", "endpoint", cfg.S3Endpoint, "bucket", s3Client.Bucket())
	} else {
		slog.Warn("s3 storage not configured, archives served directly")
	}

	tmpl, err := templates.Load()
	if err != nil {
		return err
	}
	slog.Info("fill templates loaded", "count", len(tmpl.List()))

	registry, err := ai.NewRegistry(ctx, cfg.AIProviderOrder, cfg.Providers)
	if err != nil {
		return err
	}
	if len(registry.Available()) == 0 {
		slog.Warn("no AI provider has an API key, generation requests will fail")
	}
	slog.Info("ai providers initialized",
		"order", registry.Available(),
		"approach", approach,
	)

	m := metrics.New()
	content, code := ai.Chains(registry.Chain())
	orch := generator.New(generator.Config{Approach: approach}, content, code, tmpl, websites, generator.WithRecorder(m))

	limiter := middleware.NewRateLimiter(cfg.RateLimitGenerate, time.Minute, cfg.TrustProxy)
	defer limiter.Stop()

	r := router.New(router.Deps{
		Websites:    handlers.NewWebsites(orch, websites, archive.New(), archives, objects),
		Catalog:     handlers.NewCatalog(tmpl, registry, approach),
		RateLimiter: limiter,
		Metrics:     m,
	})

	// WriteTimeout covers a full fallback walk: content and code stages,
	// each provider bounded by its 60s client timeout.
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      5 * time.Minute,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	}

	// Give active requests up to 30 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// newLogger builds the process logger. Unknown levels fall back to info.
func newLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
