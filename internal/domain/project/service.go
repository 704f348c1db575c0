package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Service handles project operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Upsert resolves a project by name, creating it if unseen and updating only
// the color otherwise. Blank name and color fall back to the defaults, so the
// call never fails validation. Returns the resolved row.
func (s *Service) Upsert(ctx context.Context, name, color string) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	color = strings.TrimSpace(color)
	if color == "" {
		color = DefaultColor
	}

	id, err := s.repo.Upsert(ctx, name, color)
	if err != nil {
		return nil, fmt.Errorf("upserting project: %w", err)
	}

	s.logger.Debug("project upserted", "id", id, "name", name)

	return &Project{ID: id, Name: name, Color: color}, nil
}

// List returns all projects ordered by name.
func (s *Service) List(ctx context.Context) ([]Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}
