package mcp

import (
	"context"
	"log/slog"

	"github.com/ganot/livenotes/internal/domain/note"
	"github.com/ganot/livenotes/internal/domain/project"
	"github.com/ganot/livenotes/internal/domain/state"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// StateService defines state operations needed by MCP.
type StateService interface {
	Snapshot(ctx context.Context) (*state.Snapshot, error)
}

// ProjectService defines project operations needed by MCP.
type ProjectService interface {
	Upsert(ctx context.Context, name, color string) (*project.Project, error)
}

// NoteService defines note operations needed by MCP.
type NoteService interface {
	Create(ctx context.Context, req note.CreateRequest) (*note.Note, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	State    StateService
	Projects ProjectService
	Notes    NoteService
}

const serverInstructions = `livenotes stores Projects and Notes and syncs them to phone/wear
clients over WebSocket. This MCP surface is a local inspection and scripting
interface over the same store: read the current state or create notes and
projects. Mutations made here become visible to sync clients on their next
snapshot (connect or any accepted mutation).`

// NewServer creates and configures the MCP inspection server.
func NewServer(services Services, logger *slog.Logger) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "livenotes",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       logger,
	})

	registerTools(server, services)

	return server
}
