package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/zerohour"
	"github.com/aretw0/zerohour/internal/logging"
	"github.com/aretw0/zerohour/pkg/domain"
	"github.com/aretw0/zerohour/pkg/observability"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dashboard defines what the HTTP surface needs from the core.
type Dashboard interface {
	Current() domain.Snapshot
	Progression() []domain.ProgressionStep
	Scenarios() []domain.Scenario
	States() []domain.State
	Summary() (*domain.Summary, bool)
	Domains() (*domain.Domains, bool)
	Timeline() (*domain.Timeline, bool)
	Signals() []domain.Signal
	Target() domain.TargetEntity
	Countdown() domain.Countdown
	SetScenario(scenario domain.Scenario, state domain.State) (domain.TransitionResult, error)
	SetState(state domain.State) (domain.TransitionResult, error)
	Reset() domain.TransitionResult
}

var _ Dashboard = (*zerohour.Dashboard)(nil)

// Server holds the HTTP handlers for the dashboard.
type Server struct {
	Dashboard Dashboard
	Streams   *StreamManager

	adminToken string
	metrics    *observability.Metrics
	gatherer   prometheus.Gatherer
	staticDir  string
	logger     *slog.Logger
	now        func() time.Time
}

// Option configures the Server.
type Option func(*Server)

// WithAdminToken sets the bearer token required by the /admin routes.
func WithAdminToken(token string) Option {
	return func(s *Server) {
		s.adminToken = token
	}
}

// WithMetrics records request metrics into m and exposes g on /metrics.
func WithMetrics(m *observability.Metrics, g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = m
		s.gatherer = g
	}
}

// WithStreams shares a stream manager whose Hooks are attached to the Dashboard.
// Without it /scenario/events only receives the connection ping.
func WithStreams(sm *StreamManager) Option {
	return func(s *Server) {
		s.Streams = sm
	}
}

// WithStaticDir serves the frontend from dir for every unmatched GET.
func WithStaticDir(dir string) Option {
	return func(s *Server) {
		s.staticDir = dir
	}
}

// WithLogger sets the logger used for request and error lines.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler for the dashboard.
func NewHandler(dash Dashboard, opts ...Option) http.Handler {
	s := &Server{
		Dashboard:  dash,
		adminToken: "DEMO_ADMIN_TOKEN",
		logger:     logging.NewNop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.Streams == nil {
		s.Streams = NewStreamManager(s.logger)
	}
	return s.routes()
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(enableCORS)
	r.Use(s.logRequests)
	r.Use(s.recoverer)

	r.NotFound(s.notFound)
	r.MethodNotAllowed(s.methodNotAllowed)

	r.Get("/health", s.GetHealth)
	r.Get("/api", s.GetIndex)

	r.Route("/scenario", func(r chi.Router) {
		r.Get("/current", s.GetCurrent)
		r.Get("/list", s.ListScenarios)
		r.Get("/events", s.SubscribeEvents)
	})

	r.Route("/exposure", func(r chi.Router) {
		r.Get("/summary", s.GetSummary)
		r.Get("/domains", s.GetDomains)
		r.Get("/timeline", s.GetTimeline)
		r.Get("/signals", s.GetSignals)
	})

	r.Route("/target", func(r chi.Router) {
		r.Get("/current", s.GetTarget)
		r.Get("/countdown", s.GetCountdown)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(s.requireAdmin)
		r.Post("/setScenario", s.SetScenario)
		r.Post("/setState", s.SetState)
		r.Post("/reset", s.Reset)
	})

	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	if s.staticDir != "" {
		r.Handle("/*", s.static())
	}

	return r
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"service":   "zerohour-demo-backend",
		"timestamp": s.now().UTC().Format(time.RFC3339Nano),
	})
}

// GetIndex handles GET /api.
func (s *Server) GetIndex(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"service": "ZeroHour Demo Backend",
		"version": strings.TrimSpace(zerohour.Version),
		"auth":    "Authorization: Bearer DEMO_ADMIN_TOKEN",
		"endpoints": map[string]any{
			"health": "GET /health",
			"ui":     "GET / (static frontend)",
			"scenario": map[string]string{
				"current": "GET /scenario/current",
				"list":    "GET /scenario/list",
				"events":  "GET /scenario/events (text/event-stream)",
			},
			"exposure": map[string]string{
				"summary":  "GET /exposure/summary → { risk_level, confidence, domains, summary }",
				"domains":  "GET /exposure/domains → { legal, cyber, reputational, third_party }",
				"timeline": "GET /exposure/timeline → { past, present, next }",
				"signals":  "GET /exposure/signals",
			},
			"target": map[string]string{
				"current":   "GET /target/current",
				"countdown": "GET /target/countdown",
			},
			"admin": map[string]string{
				"setScenario": "POST /admin/setScenario (requires Bearer token)",
				"setState":    "POST /admin/setState (requires Bearer token)",
				"reset":       "POST /admin/reset (requires Bearer token)",
			},
		},
	})
}

type currentResponse struct {
	domain.Snapshot
	Progression []domain.ProgressionStep `json:"progression"`
}

// GetCurrent handles GET /scenario/current.
func (s *Server) GetCurrent(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, currentResponse{
		Snapshot:    s.Dashboard.Current(),
		Progression: s.Dashboard.Progression(),
	})
}

// ListScenarios handles GET /scenario/list.
func (s *Server) ListScenarios(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"scenarios": s.Dashboard.Scenarios(),
		"states":    s.Dashboard.States(),
	})
}

// GetSummary handles GET /exposure/summary.
func (s *Server) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, ok := s.Dashboard.Summary()
	s.writeView(w, summary, ok)
}

// GetDomains handles GET /exposure/domains.
func (s *Server) GetDomains(w http.ResponseWriter, r *http.Request) {
	domains, ok := s.Dashboard.Domains()
	s.writeView(w, domains, ok)
}

// GetTimeline handles GET /exposure/timeline.
func (s *Server) GetTimeline(w http.ResponseWriter, r *http.Request) {
	timeline, ok := s.Dashboard.Timeline()
	s.writeView(w, timeline, ok)
}

// GetSignals handles GET /exposure/signals.
func (s *Server) GetSignals(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Dashboard.Signals())
}

// GetTarget handles GET /target/current.
func (s *Server) GetTarget(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Dashboard.Target())
}

// GetCountdown handles GET /target/countdown.
func (s *Server) GetCountdown(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Dashboard.Countdown())
}

func (s *Server) writeView(w http.ResponseWriter, v any, ok bool) {
	if !ok {
		s.writeJSON(w, http.StatusNotFound, errorBody{Error: "Scenario data not found"})
		return
	}
	s.writeJSON(w, http.StatusOK, v)
}

type errorBody struct {
	Error string `json:"error"`
	Type  string `json:"type,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusNotFound, errorBody{
		Error: "Route not found: " + r.Method + " " + r.URL.Path,
		Type:  "not_found",
	})
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusMethodNotAllowed, errorBody{
		Error: "Method not allowed: " + r.Method + " " + r.URL.Path,
		Type:  "method_not_allowed",
	})
}
