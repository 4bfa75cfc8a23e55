// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/taibuivan/kahasolusi/internal/company"
	"github.com/taibuivan/kahasolusi/internal/cta"
	"github.com/taibuivan/kahasolusi/internal/feedback"
	"github.com/taibuivan/kahasolusi/internal/media"
	"github.com/taibuivan/kahasolusi/internal/platform/config"
	"github.com/taibuivan/kahasolusi/internal/platform/constants"
	"github.com/taibuivan/kahasolusi/internal/platform/middleware"
	"github.com/taibuivan/kahasolusi/internal/portfolio"
	"github.com/taibuivan/kahasolusi/internal/reference"
	"github.com/taibuivan/kahasolusi/internal/settings"
	"github.com/taibuivan/kahasolusi/internal/team"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler. Always 200 while the process runs.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. 200 when PostgreSQL answers.
	Readiness http.HandlerFunc

	// Portfolio serves the portfolio aggregate.
	Portfolio *portfolio.Handler

	// Categories, Technologies and Clients serve the reference tables.
	Categories   *reference.Handler
	Technologies *reference.Handler
	Clients      *reference.Handler

	Company  *company.Handler
	Team     *team.Handler
	Feedback *feedback.Handler
	Media    *media.Handler
	CTA      *cta.Handler
	Settings *settings.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// The rate limiter's cleanup goroutine lives as long as context.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Tracing wraps everything so the logger's status recorder stays
	// visible to Authenticate.
	r.Use(otelhttp.NewMiddleware(constants.AppName,
		otelhttp.WithSpanNameFormatter(func(_ string, request *http.Request) string {
			return request.Method + " " + request.URL.Path
		}),
	))
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context, middleware.RateLimitOptions{}))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.Authenticate(verifier))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/portfolio", h.Portfolio.Routes())
		api.Mount("/categories", h.Categories.Routes())
		api.Mount("/technologies", h.Technologies.Routes())
		api.Mount("/clients", h.Clients.Routes())
		api.Mount("/company", h.Company.Routes())
		api.Mount("/team", h.Team.Routes())
		api.Mount("/feedback", h.Feedback.Routes())
		api.Mount("/media", h.Media.Routes())
		api.Mount("/cta", h.CTA.Routes())
		api.Mount("/settings", h.Settings.Routes())
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the fully wired router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
