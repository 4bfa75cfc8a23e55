// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Kahasolusi company-profile CMS API.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Start tracing (no-op unless enabled).
//  4. Connect to PostgreSQL (pgxpool).
//  5. Run database migrations (idempotent).
//  6. Load the token verification key.
//  7. Wire repositories, services and HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/taibuivan/kahasolusi/internal/api"
	"github.com/taibuivan/kahasolusi/internal/company"
	"github.com/taibuivan/kahasolusi/internal/cta"
	"github.com/taibuivan/kahasolusi/internal/feedback"
	"github.com/taibuivan/kahasolusi/internal/media"
	"github.com/taibuivan/kahasolusi/internal/platform/config"
	"github.com/taibuivan/kahasolusi/internal/platform/constants"
	"github.com/taibuivan/kahasolusi/internal/platform/logging"
	"github.com/taibuivan/kahasolusi/internal/platform/migration"
	pgstore "github.com/taibuivan/kahasolusi/internal/platform/postgres"
	"github.com/taibuivan/kahasolusi/internal/platform/sec"
	"github.com/taibuivan/kahasolusi/internal/platform/telemetry"
	"github.com/taibuivan/kahasolusi/internal/portfolio"
	"github.com/taibuivan/kahasolusi/internal/reference"
	"github.com/taibuivan/kahasolusi/internal/settings"
	"github.com/taibuivan/kahasolusi/internal/team"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// JSON until configuration says otherwise.
	log := logging.New(logging.Options{})
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	log = logging.New(logging.Options{Development: cfg.IsDevelopment(), Debug: cfg.Debug})
	slog.SetDefault(log)

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("tracing", cfg.OTelEnabled),
	)

	// Process-wide context, cancelled on SIGINT / SIGTERM.
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	startupCtx, startupCancel := context.WithTimeout(rootCtx, constants.StartupTimeout)
	defer startupCancel()

	// ── 3. Tracing ────────────────────────────────────────────────────────
	shutdownTracing, err := telemetry.Init(startupCtx, cfg, log)
	must(log, err, "initialize tracing")
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Error("tracing_shutdown_failed", slog.Any("error", err))
		}
	}()

	// ── 4. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	if cfg.RunMigrations {
		must(log, migration.RunUp(cfg.DatabaseURL, log), "run migrations")
	}

	// ── 6. Token Verification ─────────────────────────────────────────────
	verifier, err := sec.NewTokenVerifier(cfg.JWTPubKeyPath, cfg.JWTIssuer)
	must(log, err, "load token verification key")

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		},
	}, log)

	referenceHandler := func(kind reference.Kind) *reference.Handler {
		return reference.NewHandler(reference.NewService(kind, reference.NewPostgresRepository(pool, kind)))
	}

	handlers := api.Handlers{
		Liveness:     liveness,
		Readiness:    readiness,
		Portfolio:    portfolio.NewHandler(portfolio.NewService(portfolio.NewPostgresRepository(pool))),
		Categories:   referenceHandler(reference.KindCategory),
		Technologies: referenceHandler(reference.KindTechnology),
		Clients:      referenceHandler(reference.KindClient),
		Company:      company.NewHandler(company.NewService(company.NewPostgresRepository(pool))),
		Team:         team.NewHandler(team.NewService(team.NewPostgresRepository(pool))),
		Feedback:     feedback.NewHandler(feedback.NewService(feedback.NewPostgresRepository(pool))),
		Media:        media.NewHandler(media.NewService(media.NewPostgresRepository(pool))),
		CTA:          cta.NewHandler(cta.NewService(cta.NewPostgresRepository(pool))),
		Settings:     settings.NewHandler(settings.NewService(settings.NewPostgresRepository(pool))),
	}

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(rootCtx, cfg, log, verifier, handlers)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case <-rootCtx.Done():
		log.Info("shutdown_signal_received")
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// Startup wiring only. After startup every error is returned and handled.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
