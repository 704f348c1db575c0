package state_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ganot/livenotes/internal/domain/note"
	"github.com/ganot/livenotes/internal/domain/project"
	"github.com/ganot/livenotes/internal/domain/state"
	"github.com/ganot/livenotes/internal/repository/mocks"
	"github.com/stretchr/testify/require"
)

func TestStateService_SnapshotComposes(t *testing.T) {
	ctx := context.Background()

	projID := int64(1)
	projName := "General"

	projects := &mocks.ProjectRepository{}
	projects.On("List", ctx).Return([]project.Project{
		{ID: projID, Name: projName, Color: project.DefaultColor},
	}, nil)

	notes := &mocks.NoteRepository{}
	notes.On("List", ctx).Return([]note.Note{
		{ID: 5, Title: "t", Content: "c", ProjectID: &projID, ProjectName: &projName, UpdatedAt: 1000},
	}, nil)

	svc := state.NewService(projects, notes)
	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Projects, 1)
	require.Len(t, snap.Notes, 1)
	require.Equal(t, "General", *snap.Notes[0].ProjectName)
}

func TestStateService_SnapshotNeverNil(t *testing.T) {
	ctx := context.Background()

	projects := &mocks.ProjectRepository{}
	projects.On("List", ctx).Return(nil, nil)
	notes := &mocks.NoteRepository{}
	notes.On("List", ctx).Return(nil, nil)

	svc := state.NewService(projects, notes)
	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap.Projects, "empty projects must serialize as [], not null")
	require.NotNil(t, snap.Notes, "empty notes must serialize as [], not null")
	require.Empty(t, snap.Projects)
	require.Empty(t, snap.Notes)
}

func TestStateService_SnapshotPropagatesErrors(t *testing.T) {
	ctx := context.Background()

	listErr := errors.New("db gone")
	projects := &mocks.ProjectRepository{}
	projects.On("List", ctx).Return(nil, listErr)
	notes := &mocks.NoteRepository{}

	svc := state.NewService(projects, notes)
	_, err := svc.Snapshot(ctx)
	require.ErrorIs(t, err, listErr)
}
