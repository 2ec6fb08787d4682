package http

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aretw0/zerohour/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

type setScenarioRequest struct {
	Scenario string `mapstructure:"scenario"`
	State    string `mapstructure:"state"`
}

type setStateRequest struct {
	State string `mapstructure:"state"`
}

// requireAdmin rejects requests without the configured bearer token.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			s.writeJSON(w, http.StatusUnauthorized, errorBody{
				Error: "Authorization header required. Use: Authorization: Bearer DEMO_ADMIN_TOKEN",
			})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			s.writeJSON(w, http.StatusUnauthorized, errorBody{
				Error: "Invalid authorization format. Use: Authorization: Bearer <token>",
			})
			return
		}

		if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(s.adminToken)) != 1 {
			s.logger.Warn("admin token rejected", "path", r.URL.Path)
			s.writeJSON(w, http.StatusUnauthorized, errorBody{Error: "Invalid admin token."})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// decodeBody reads a JSON object and maps it onto out. An empty body is an empty object.
func decodeBody(r *http.Request, out any) error {
	raw := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	if err := mapstructure.Decode(raw, out); err != nil {
		return fmt.Errorf("invalid request fields: %w", err)
	}
	return nil
}

// SetScenario handles POST /admin/setScenario.
func (s *Server) SetScenario(w http.ResponseWriter, r *http.Request) {
	var req setScenarioRequest
	if err := decodeBody(r, &req); err != nil {
		s.logger.Warn("setScenario: invalid request body", "error", err)
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error(), Type: "validation_error"})
		return
	}
	if req.Scenario == "" {
		s.writeJSON(w, http.StatusBadRequest, domain.TransitionResult{Error: "Scenario is required."})
		return
	}

	res, err := s.Dashboard.SetScenario(domain.Scenario(req.Scenario), domain.State(req.State))
	s.writeTransition(w, res, err)
}

// SetState handles POST /admin/setState.
func (s *Server) SetState(w http.ResponseWriter, r *http.Request) {
	var req setStateRequest
	if err := decodeBody(r, &req); err != nil {
		s.logger.Warn("setState: invalid request body", "error", err)
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error(), Type: "validation_error"})
		return
	}
	if req.State == "" {
		s.writeJSON(w, http.StatusBadRequest, domain.TransitionResult{Error: "State is required."})
		return
	}

	res, err := s.Dashboard.SetState(domain.State(req.State))
	s.writeTransition(w, res, err)
}

// Reset handles POST /admin/reset.
func (s *Server) Reset(w http.ResponseWriter, r *http.Request) {
	s.writeTransition(w, s.Dashboard.Reset(), nil)
}

func (s *Server) writeTransition(w http.ResponseWriter, res domain.TransitionResult, err error) {
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, res)
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}
