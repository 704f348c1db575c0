package repository

import (
	"context"

	"github.com/ganot/livenotes/internal/domain/note"
	"github.com/ganot/livenotes/internal/domain/project"
)

// ProjectRepository provides persistence for projects. Upsert is keyed by
// name and must be atomic at the storage layer so concurrent connections
// racing on a new name cannot create duplicates.
type ProjectRepository interface {
	Upsert(ctx context.Context, name, color string) (int64, error)
	List(ctx context.Context) ([]project.Project, error)
}

// NoteRepository provides persistence for notes.
type NoteRepository interface {
	Insert(ctx context.Context, n *note.Note) error
	List(ctx context.Context) ([]note.Note, error)
}
