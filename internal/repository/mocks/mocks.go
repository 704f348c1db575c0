package mocks

import (
	"context"

	"github.com/ganot/livenotes/internal/domain/note"
	"github.com/ganot/livenotes/internal/domain/project"
	"github.com/stretchr/testify/mock"
)

// ProjectRepository is a mock for repository.ProjectRepository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Upsert(ctx context.Context, name, color string) (int64, error) {
	args := m.Called(ctx, name, color)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// NoteRepository is a mock for repository.NoteRepository.
type NoteRepository struct {
	mock.Mock
}

func (m *NoteRepository) Insert(ctx context.Context, n *note.Note) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *NoteRepository) List(ctx context.Context) ([]note.Note, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]note.Note); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ProjectResolver is a mock for note.ProjectResolver.
type ProjectResolver struct {
	mock.Mock
}

func (m *ProjectResolver) Upsert(ctx context.Context, name, color string) (*project.Project, error) {
	args := m.Called(ctx, name, color)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}
