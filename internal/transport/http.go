package transport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ganot/livenotes/internal/domain/state"
	"github.com/ganot/livenotes/internal/hub"
	"github.com/gorilla/websocket"
)

// ConnectionHandler owns a websocket connection after upgrade.
type ConnectionHandler interface {
	HandleConnection(ctx context.Context, conn hub.Conn)
}

// StateReader serves the REST read endpoints.
type StateReader interface {
	Snapshot(ctx context.Context) (*state.Snapshot, error)
}

// Server wires HTTP handlers.
type Server struct {
	hub      ConnectionHandler
	state    StateReader
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewHandler creates the HTTP router: the /ws sync endpoint plus the
// read-only debug endpoints backed by the same snapshot read.
func NewHandler(h ConnectionHandler, st StateReader, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	srv := &Server{hub: h, state: st, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", srv.handleWS)
	mux.HandleFunc("/state", srv.handleState)
	mux.HandleFunc("/projects", srv.handleProjects)
	mux.HandleFunc("/notes", srv.handleNotes)
	mux.HandleFunc("/health", srv.handleHealth)

	return mux
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote an HTTP error to the client.
		s.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	s.hub.HandleConnection(r.Context(), conn)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	snap, err := s.state.Snapshot(r.Context())
	if err != nil {
		s.logger.Error("failed to read state", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, snap)
}

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	snap, err := s.state.Snapshot(r.Context())
	if err != nil {
		s.logger.Error("failed to read projects", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, snap.Projects)
}

func (s *Server) handleNotes(w http.ResponseWriter, r *http.Request) {
	snap, err := s.state.Snapshot(r.Context())
	if err != nil {
		s.logger.Error("failed to read notes", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, snap.Notes)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}
