// Package server exposes the scheduling engine over a REST API: sessions
// with their own job registries, per-policy runs, comparisons, and the
// persisted workload library.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/me/gosched/internal/config"
	"github.com/me/gosched/internal/store"
)

// Server is the simulator REST API server.
type Server struct {
	router    chi.Router
	logger    *slog.Logger
	config    config.ServerConfig
	startTime time.Time
	sessions  *sessionStore
	store     store.Store
	metrics   *metricsSet
}

// New creates a new Server with all routes registered. st may be nil when
// the workload library is disabled (e.g. in tests that only exercise runs).
func New(cfg config.ServerConfig, st store.Store, logger *slog.Logger) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		logger:    logger.With("component", "server"),
		config:    cfg,
		startTime: time.Now(),
		sessions:  newSessionStore(cfg.Capacity),
		store:     st,
		metrics:   newMetricsSet(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(requestIDMiddleware)
	s.router.Use(loggingMiddleware(s.logger))
	s.router.Use(s.metrics.middleware)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Method(http.MethodGet, "/metrics",
		promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleCreateSession)
			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/", s.handleGetSession)
				r.Delete("/", s.handleDeleteSession)
				r.Post("/jobs", s.handleRegisterJob)
				r.Get("/jobs", s.handleListJobs)
				r.Post("/runs/{policy}", s.handleRunPolicy)
				r.Post("/compare", s.handleCompare)
			})
		})

		r.Route("/workloads", func(r chi.Router) {
			r.Get("/", s.handleListWorkloads)
			r.Post("/", s.handleCreateWorkload)
			r.Route("/{name}", func(r chi.Router) {
				r.Get("/", s.handleGetWorkload)
				r.Delete("/", s.handleDeleteWorkload)
				r.Post("/compare", s.handleCompareWorkload)
			})
		})
	})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.router
}
