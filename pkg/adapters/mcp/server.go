package mcp

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/zerohour"
	"github.com/aretw0/zerohour/internal/logging"
	"github.com/aretw0/zerohour/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const currentURI = "zerohour://scenario/current"

// Dashboard defines what the MCP server needs from the core.
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

// Server wraps the Dashboard and exposes it as an MCP Server.
type Server struct {
	dash       Dashboard
	adminToken string
	logger     *slog.Logger
	mcpServer  *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithAdminToken sets the token the write tools expect.
func WithAdminToken(token string) Option {
	return func(s *Server) {
		s.adminToken = token
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(dash Dashboard, opts ...Option) *Server {
	s := &Server{
		dash:       dash,
		adminToken: "DEMO_ADMIN_TOKEN",
		logger:     logging.NewNop(),
		mcpServer:  server.NewMCPServer("zerohour-mcp", strings.TrimSpace(zerohour.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the SSE transport on port until ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("shutdown signal received, stopping MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	readOnly := []struct {
		name, description string
		handler           server.ToolHandlerFunc
	}{
		{"get_current", "Get the active scenario, state and escalation progression.", s.handleGetCurrent},
		{"list_scenarios", "List every scenario and the ordered escalation states.", s.handleListScenarios},
		{"get_summary", "Get the risk summary for the active scenario and state.", s.handleGetSummary},
		{"get_domains", "Get the per-domain status (legal, cyber, reputational, third_party).", s.handleGetDomains},
		{"get_timeline", "Get the past, present and next escalation states.", s.handleGetTimeline},
		{"get_signals", "Get the observed signal cards for the active scenario.", s.handleGetSignals},
		{"get_target", "Get the monitored target entity.", s.handleGetTarget},
		{"get_countdown", "Get the disclosure countdown clock.", s.handleGetCountdown},
	}
	for _, t := range readOnly {
		s.mcpServer.AddTool(mcp.NewTool(t.name, mcp.WithDescription(t.description)), t.handler)
	}

	s.mcpServer.AddTool(mcp.NewTool("set_scenario",
		mcp.WithDescription("Activate a scenario, optionally jumping to a state. Requires the admin token."),
		mcp.WithString("scenario", mcp.Required(), mcp.Description("Scenario identifier")),
		mcp.WithString("state", mcp.Description("State to jump to (defaults to the initial state)")),
		mcp.WithString("token", mcp.Required(), mcp.Description("Admin token")),
	), s.handleSetScenario)

	s.mcpServer.AddTool(mcp.NewTool("set_state",
		mcp.WithDescription("Move the active scenario to a state. Requires the admin token."),
		mcp.WithString("state", mcp.Required(), mcp.Description("State identifier")),
		mcp.WithString("token", mcp.Required(), mcp.Description("Admin token")),
	), s.handleSetState)

	s.mcpServer.AddTool(mcp.NewTool("reset",
		mcp.WithDescription("Restore the default scenario and state. Requires the admin token."),
		mcp.WithString("token", mcp.Required(), mcp.Description("Admin token")),
	), s.handleReset)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(b)), nil
}

func viewResult(v any, ok bool) (*mcp.CallToolResult, error) {
	if !ok {
		return mcp.NewToolResultError("Scenario data not found"), nil
	}
	return jsonResult(v)
}

type currentView struct {
	domain.Snapshot
	Progression []domain.ProgressionStep `json:"progression"`
}

func (s *Server) handleGetCurrent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(currentView{Snapshot: s.dash.Current(), Progression: s.dash.Progression()})
}

func (s *Server) handleListScenarios(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]any{
		"scenarios": s.dash.Scenarios(),
		"states":    s.dash.States(),
	})
}

func (s *Server) handleGetSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	v, ok := s.dash.Summary()
	return viewResult(v, ok)
}

func (s *Server) handleGetDomains(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	v, ok := s.dash.Domains()
	return viewResult(v, ok)
}

func (s *Server) handleGetTimeline(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	v, ok := s.dash.Timeline()
	return viewResult(v, ok)
}

func (s *Server) handleGetSignals(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.dash.Signals())
}

func (s *Server) handleGetTarget(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.dash.Target())
}

func (s *Server) handleGetCountdown(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.dash.Countdown())
}

// authorized reports whether the request carries the admin token.
func (s *Server) authorized(request mcp.CallToolRequest) bool {
	token := request.GetString("token", "")
	return subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) == 1
}

func (s *Server) transitionResult(res domain.TransitionResult, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return mcp.NewToolResultError(res.Error), nil
	}
	return jsonResult(res)
}

func (s *Server) handleSetScenario(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.authorized(request) {
		s.logger.Warn("MCP set_scenario: admin token rejected")
		return mcp.NewToolResultError("Invalid admin token."), nil
	}
	scenario := request.GetString("scenario", "")
	if scenario == "" {
		return mcp.NewToolResultError("Scenario is required."), nil
	}
	state := request.GetString("state", "")
	return s.transitionResult(s.dash.SetScenario(domain.Scenario(scenario), domain.State(state)))
}

func (s *Server) handleSetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.authorized(request) {
		s.logger.Warn("MCP set_state: admin token rejected")
		return mcp.NewToolResultError("Invalid admin token."), nil
	}
	state := request.GetString("state", "")
	if state == "" {
		return mcp.NewToolResultError("State is required."), nil
	}
	return s.transitionResult(s.dash.SetState(domain.State(state)))
}

func (s *Server) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.authorized(request) {
		s.logger.Warn("MCP reset: admin token rejected")
		return mcp.NewToolResultError("Invalid admin token."), nil
	}
	return jsonResult(s.dash.Reset())
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(currentURI, "Current Scenario",
		mcp.WithResourceDescription("Active scenario, state and progression"),
		mcp.WithMIMEType("application/json"),
	), s.readCurrent)
}

func (s *Server) readCurrent(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	b, err := json.Marshal(currentView{Snapshot: s.dash.Current(), Progression: s.dash.Progression()})
	if err != nil {
		return nil, fmt.Errorf("failed to encode current scenario: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      currentURI,
			MIMEType: "application/json",
			Text:     string(b),
		},
	}, nil
}
