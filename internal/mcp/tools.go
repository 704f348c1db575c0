package mcp

import (
	"context"
	"fmt"

	"github.com/ganot/livenotes/internal/domain/note"
	"github.com/ganot/livenotes/internal/domain/project"
	"github.com/ganot/livenotes/internal/domain/state"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetStateInput has no parameters.
type GetStateInput struct{}

// ListProjectsInput has no parameters.
type ListProjectsInput struct{}

// ListNotesInput has no parameters.
type ListNotesInput struct{}

// UpsertProjectInput defines the upsert_project tool parameters.
type UpsertProjectInput struct {
	Name  string `json:"name,omitempty" jsonschema:"project name (defaults to General when blank)"`
	Color string `json:"color,omitempty" jsonschema:"display color, e.g. a hex code"`
}

// CreateNoteInput defines the create_note tool parameters.
type CreateNoteInput struct {
	Title        string `json:"title" jsonschema:"note title (required)"`
	Content      string `json:"content" jsonschema:"note body (required)"`
	ProjectName  string `json:"projectName,omitempty" jsonschema:"project to file the note under"`
	ProjectColor string `json:"projectColor,omitempty" jsonschema:"color for the project if it is created"`
}

// ProjectsPayload wraps the project list tool result.
type ProjectsPayload struct {
	Projects []project.Project `json:"projects"`
}

// NotesPayload wraps the note list tool result.
type NotesPayload struct {
	Notes []note.Note `json:"notes"`
}

func registerTools(server *sdkmcp.Server, services Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_state",
		Description: "Get the full current state: all projects and all notes",
	}, getStateHandler(services.State))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List all projects ordered by name",
	}, listProjectsHandler(services.State))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_notes",
		Description: "List all notes, newest first, with resolved project fields",
	}, listNotesHandler(services.State))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "upsert_project",
		Description: "Create a project or update an existing project's color",
	}, upsertProjectHandler(services.Projects))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_note",
		Description: "Create a note, filing it under a project by name",
	}, createNoteHandler(services.Notes))
}

func getStateHandler(st StateService) sdkmcp.ToolHandlerFor[GetStateInput, state.Snapshot] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ GetStateInput) (*sdkmcp.CallToolResult, state.Snapshot, error) {
		snap, err := st.Snapshot(ctx)
		if err != nil {
			return nil, state.Snapshot{}, fmt.Errorf("reading state: %w", err)
		}
		return nil, *snap, nil
	}
}

func listProjectsHandler(st StateService) sdkmcp.ToolHandlerFor[ListProjectsInput, ProjectsPayload] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ ListProjectsInput) (*sdkmcp.CallToolResult, ProjectsPayload, error) {
		snap, err := st.Snapshot(ctx)
		if err != nil {
			return nil, ProjectsPayload{}, fmt.Errorf("reading state: %w", err)
		}
		return nil, ProjectsPayload{Projects: snap.Projects}, nil
	}
}

func listNotesHandler(st StateService) sdkmcp.ToolHandlerFor[ListNotesInput, NotesPayload] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ ListNotesInput) (*sdkmcp.CallToolResult, NotesPayload, error) {
		snap, err := st.Snapshot(ctx)
		if err != nil {
			return nil, NotesPayload{}, fmt.Errorf("reading state: %w", err)
		}
		return nil, NotesPayload{Notes: snap.Notes}, nil
	}
}

func upsertProjectHandler(projects ProjectService) sdkmcp.ToolHandlerFor[UpsertProjectInput, project.Project] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input UpsertProjectInput) (*sdkmcp.CallToolResult, project.Project, error) {
		proj, err := projects.Upsert(ctx, input.Name, input.Color)
		if err != nil {
			return nil, project.Project{}, fmt.Errorf("upserting project: %w", err)
		}
		return nil, *proj, nil
	}
}

func createNoteHandler(notes NoteService) sdkmcp.ToolHandlerFor[CreateNoteInput, note.Note] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input CreateNoteInput) (*sdkmcp.CallToolResult, note.Note, error) {
		n, err := notes.Create(ctx, note.CreateRequest{
			Title:        input.Title,
			Content:      input.Content,
			ProjectName:  input.ProjectName,
			ProjectColor: input.ProjectColor,
		})
		if err != nil {
			return nil, note.Note{}, fmt.Errorf("creating note: %w", err)
		}
		return nil, *n, nil
	}
}
