package note

import (
	"context"

	"github.com/ganot/livenotes/internal/domain/project"
)

// Repository provides persistence for notes.
type Repository interface {
	// Insert stores the note and assigns its ID.
	Insert(ctx context.Context, n *Note) error
	List(ctx context.Context) ([]Note, error)
}

// ProjectResolver resolves a project reference by name at note-write time.
type ProjectResolver interface {
	Upsert(ctx context.Context, name, color string) (*project.Project, error)
}
