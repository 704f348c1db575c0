package state

import (
	"context"
	"fmt"

	"github.com/ganot/livenotes/internal/domain/note"
	"github.com/ganot/livenotes/internal/domain/project"
)

// ProjectLister reads the full project list.
type ProjectLister interface {
	List(ctx context.Context) ([]project.Project, error)
}

// NoteLister reads the full note list.
type NoteLister interface {
	List(ctx context.Context) ([]note.Note, error)
}

// Service composes the snapshot read model. It is recomputed fresh on every
// call; nothing is cached.
type Service struct {
	projects ProjectLister
	notes    NoteLister
}

// NewService creates a new state service.
func NewService(projects ProjectLister, notes NoteLister) *Service {
	return &Service{projects: projects, notes: notes}
}

// Snapshot returns the current full state. Empty collections serialize as
// empty arrays, never null.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading projects: %w", err)
	}
	notes, err := s.notes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading notes: %w", err)
	}

	if projects == nil {
		projects = []project.Project{}
	}
	if notes == nil {
		notes = []note.Note{}
	}

	return &Snapshot{Projects: projects, Notes: notes}, nil
}
