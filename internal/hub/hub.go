package hub

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ganot/livenotes/internal/domain/note"
	"github.com/ganot/livenotes/internal/domain/project"
	"github.com/ganot/livenotes/internal/domain/state"
)

// StateReader recomputes the full snapshot.
type StateReader interface {
	Snapshot(ctx context.Context) (*state.Snapshot, error)
}

// ProjectWriter applies project upserts.
type ProjectWriter interface {
	Upsert(ctx context.Context, name, color string) (*project.Project, error)
}

// NoteWriter applies note creations.
type NoteWriter interface {
	Create(ctx context.Context, req note.CreateRequest) (*note.Note, error)
}

// Hub coordinates connected clients: it registers each connection, sends it
// the current snapshot, applies its mutations, and fans the recomputed
// snapshot out to everyone. Mutations from different connections are applied
// independently; each broadcast ships whatever state is current at that
// moment, so every client eventually observes a snapshot at least as new as
// its own last mutation.
type Hub struct {
	registry *Registry
	state    StateReader
	projects ProjectWriter
	notes    NoteWriter
	logger   *slog.Logger
}

// New creates a hub around the given registry and services.
func New(registry *Registry, st StateReader, projects ProjectWriter, notes NoteWriter, logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		registry: registry,
		state:    st,
		projects: projects,
		notes:    notes,
		logger:   logger,
	}
}

// HandleConnection owns one client connection for its whole lifetime:
// register, send the initial snapshot, then read mutations until the client
// goes away. It blocks until the connection closes.
func (h *Hub) HandleConnection(ctx context.Context, conn Conn) {
	peer := NewPeer(conn)
	h.registry.Register(peer)
	h.logger.Info("client connected", "peer", peer.ID(), "clients", h.registry.Len())

	defer func() {
		h.registry.Unregister(peer)
		_ = peer.Close()
		h.logger.Info("client disconnected", "peer", peer.ID(), "clients", h.registry.Len())
	}()

	snap, err := h.state.Snapshot(ctx)
	if err != nil {
		h.logger.Error("failed to read snapshot for new client", "peer", peer.ID(), "error", err)
		return
	}
	if err := peer.Send(snap); err != nil {
		h.logger.Warn("failed to send initial snapshot", "peer", peer.ID(), "error", err)
		return
	}

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			h.logger.Debug("read loop ended", "peer", peer.ID(), "error", err)
			return
		}
		h.handleMessage(ctx, peer, raw)
	}
}

// handleMessage applies one inbound frame and, unless the note payload failed
// validation, broadcasts the resulting snapshot to every peer including the
// sender. Validation failures are dropped silently: no broadcast, no error
// reply, connection stays open.
func (h *Hub) handleMessage(ctx context.Context, peer *Peer, raw []byte) {
	m := DecodeMutation(raw)

	if m.Project != nil {
		if _, err := h.projects.Upsert(ctx, m.Project.Name, m.Project.Color); err != nil {
			h.logger.Error("project upsert failed", "peer", peer.ID(), "error", err)
			return
		}
	}

	if m.Note != nil {
		_, err := h.notes.Create(ctx, note.CreateRequest{
			Title:        m.Note.Title,
			Content:      m.Note.Content,
			ProjectName:  m.Note.ProjectName,
			ProjectColor: m.Note.ProjectColor,
		})
		if errors.Is(err, note.ErrMissingFields) {
			h.logger.Debug("dropping note with missing fields", "peer", peer.ID())
			return
		}
		if err != nil {
			h.logger.Error("note create failed", "peer", peer.ID(), "error", err)
			return
		}
	}

	h.Broadcast(ctx)
}

// Broadcast recomputes the snapshot once and sends it to every registered
// peer. A send failure removes only that peer; the remaining fan-out always
// completes.
func (h *Hub) Broadcast(ctx context.Context) {
	snap, err := h.state.Snapshot(ctx)
	if err != nil {
		h.logger.Error("failed to compute snapshot for broadcast", "error", err)
		return
	}

	for _, p := range h.registry.Peers() {
		if err := p.Send(snap); err != nil {
			h.registry.Unregister(p)
			_ = p.Close()
			h.logger.Warn("dropping unreachable client", "peer", p.ID(), "error", err)
		}
	}
}
