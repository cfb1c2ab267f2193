// Package statusserver exposes the registry's current-target and
// current-order state over HTTP, adapted from the teacher
// application's health-check webserver (internal/app/healthcheck*.go)
// into a richer JSON status endpoint for this domain.
package statusserver

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/vk/buildgrid/internal/target"
)

// Server serves a point-in-time snapshot of a target.Registry's
// run-scoped diagnostic state.
type Server struct {
	logger *slog.Logger
	reg    *target.Registry
}

// New builds a Server reporting on reg.
func New(logger *slog.Logger, reg *target.Registry) *Server {
	return &Server{logger: logger, reg: reg}
}

type statusResponse struct {
	CurrentTarget string     `json:"current_target"`
	CurrentOrder  [][]string `json:"current_order"`
	HasErrors     bool       `json:"has_errors"`
}

func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	s.logger.Debug("status endpoint hit", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	resp := statusResponse{
		CurrentTarget: s.reg.CurrentTarget(),
		CurrentOrder:  s.reg.CurrentOrder(),
		HasErrors:     s.reg.HasErrors(),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("failed to encode status response", "error", err)
	}
}

// Start launches the status HTTP server on port in a background
// goroutine. port == 0 is handled by the caller (Start is not invoked).
func (s *Server) Start(port int) {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", s.statusHandler)

	addr := fmt.Sprintf(":%d", port)
	go func() {
		s.logger.Info("status server starting", "address", fmt.Sprintf("http://localhost%s/status", addr))
		if err := http.ListenAndServe(addr, mux); err != nil {
			s.logger.Error("status server failed", "error", err)
		}
	}()
}
