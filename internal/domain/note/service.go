package note

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Service handles note operations.
type Service struct {
	repo     Repository
	projects ProjectResolver
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a new note service.
func NewService(repo Repository, projects ProjectResolver, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, projects: projects, logger: logger, now: time.Now}
}

// CreateRequest defines note creation inputs. Clients reference the project
// by name, never by id; the project is created on first use.
type CreateRequest struct {
	Title        string
	Content      string
	ProjectName  string
	ProjectColor string
}

// Create validates and stores a note. The project reference is resolved via
// upsert, updatedAt is stamped server-side in milliseconds, and the returned
// note carries the resolved project fields.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Note, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return nil, ErrMissingFields
	}

	proj, err := s.projects.Upsert(ctx, req.ProjectName, req.ProjectColor)
	if err != nil {
		return nil, fmt.Errorf("resolving project: %w", err)
	}

	n := &Note{
		Title:        title,
		Content:      content,
		ProjectID:    &proj.ID,
		ProjectName:  &proj.Name,
		ProjectColor: &proj.Color,
		UpdatedAt:    s.now().UnixMilli(),
	}

	if err := s.repo.Insert(ctx, n); err != nil {
		return nil, fmt.Errorf("inserting note: %w", err)
	}

	s.logger.Debug("note created", "id", n.ID, "project", proj.Name)

	return n, nil
}

// List returns all notes, newest first.
func (s *Service) List(ctx context.Context) ([]Note, error) {
	notes, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	return notes, nil
}
