package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/gymtracker/internal/metrics"
	"github.com/meltforce/gymtracker/internal/tracker"
	"github.com/meltforce/gymtracker/internal/view"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	tracker *tracker.Service
	view    *view.Controller
	metrics *metrics.Metrics
	log     *slog.Logger
	apiKey  string
	router  chi.Router
}

// New creates a new Server with all routes configured.
// m may be nil.
func New(svc *tracker.Service, ctrl *view.Controller, apiKey string, m *metrics.Metrics, log *slog.Logger) *Server {
	s := &Server{
		tracker: svc,
		view:    ctrl,
		metrics: m,
		log:     log,
		apiKey:  apiKey,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(RequestMetrics(s.metrics))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		// Read endpoints (no auth; tsnet handles access)
		r.Get("/routines", s.handleListRoutines)
		r.Get("/routines/{id}", s.handleGetRoutine)
		r.Get("/progress", s.handleProgress)
		r.Get("/calendar", s.handleCalendar)
		r.Get("/view", s.handleViewState)

		// Mutating endpoints (API key required)
		r.Group(func(r chi.Router) {
			r.Use(APIKeyAuth(s.apiKey))

			r.Post("/coach/advice", s.handleCoachAdvice)

			r.Post("/view/routines/{id}", s.handleSelectRoutine)
			r.Post("/view/back", s.handleBack)
			r.Post("/view/finish", s.handleFinish)

			r.Post("/view/session/exercises/{exerciseID}/toggle", s.handleToggleExercise)
			r.Post("/view/session/exercises/{exerciseID}/advice", s.handleRequestAdvice)
			r.Delete("/view/session/exercises/{exerciseID}/advice", s.handleDismissAdvice)

			r.Post("/view/simulator", s.handleOpenSimulator)
			r.Post("/view/simulator/photo", s.handleSelectPhoto)
			r.Post("/view/simulator/timeframe", s.handleSetTimeframe)
			r.Post("/view/simulator/run", s.handleRunSimulation)
		})
	})
}

// SetMetricsHandler mounts the Prometheus scrape endpoint at /metrics.
func (s *Server) SetMetricsHandler(h http.Handler) {
	s.router.Handle("/metrics", h)
}

// SetMCP mounts an MCP handler at /mcp behind the API key.
func (s *Server) SetMCP(h http.Handler) {
	s.router.With(APIKeyAuth(s.apiKey)).Handle("/mcp", h)
}
