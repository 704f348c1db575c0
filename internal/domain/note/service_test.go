package note_test

import (
	"context"
	"testing"
	"time"

	"github.com/ganot/livenotes/internal/domain/note"
	"github.com/ganot/livenotes/internal/domain/project"
	"github.com/ganot/livenotes/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNoteService_CreateRejectsMissingFields(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.NoteRepository{}
	resolver := &mocks.ProjectResolver{}
	svc := note.NewService(repo, resolver, nil)

	cases := []struct {
		name string
		req  note.CreateRequest
	}{
		{"empty title", note.CreateRequest{Title: "", Content: "x"}},
		{"empty content", note.CreateRequest{Title: "x", Content: ""}},
		{"whitespace only", note.CreateRequest{Title: "   ", Content: "\t\n"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.req)
			require.ErrorIs(t, err, note.ErrMissingFields)
		})
	}

	// A rejected note must not touch the store at all.
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	resolver.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
}

func TestNoteService_CreateResolvesProject(t *testing.T) {
	ctx := context.Background()

	resolver := &mocks.ProjectResolver{}
	resolver.On("Upsert", ctx, "Errands", "#FFCC00").Return(&project.Project{
		ID: 3, Name: "Errands", Color: "#FFCC00",
	}, nil)

	repo := &mocks.NoteRepository{}
	repo.On("Insert", ctx, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*note.Note).ID = 7
	}).Return(nil)

	svc := note.NewService(repo, resolver, nil)
	n, err := svc.Create(ctx, note.CreateRequest{
		Title:        "  Buy milk ",
		Content:      "2%",
		ProjectName:  "Errands",
		ProjectColor: "#FFCC00",
	})
	require.NoError(t, err)
	require.Equal(t, int64(7), n.ID)
	require.Equal(t, "Buy milk", n.Title, "title is trimmed")
	require.Equal(t, "2%", n.Content)
	require.NotNil(t, n.ProjectID)
	require.Equal(t, int64(3), *n.ProjectID)
	require.Equal(t, "Errands", *n.ProjectName)
	require.Equal(t, "#FFCC00", *n.ProjectColor)
	require.NotZero(t, n.UpdatedAt)
	repo.AssertExpectations(t)
	resolver.AssertExpectations(t)
}

func TestNoteService_CreateStampsServerTime(t *testing.T) {
	ctx := context.Background()

	resolver := &mocks.ProjectResolver{}
	resolver.On("Upsert", ctx, "", "").Return(&project.Project{
		ID: 1, Name: project.DefaultName, Color: project.DefaultColor,
	}, nil)

	repo := &mocks.NoteRepository{}
	repo.On("Insert", ctx, mock.Anything).Return(nil)

	svc := note.NewService(repo, resolver, nil)

	before := time.Now().UnixMilli()
	first, err := svc.Create(ctx, note.CreateRequest{Title: "a", Content: "b"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, note.CreateRequest{Title: "c", Content: "d"})
	require.NoError(t, err)
	after := time.Now().UnixMilli()

	require.GreaterOrEqual(t, first.UpdatedAt, before)
	require.LessOrEqual(t, second.UpdatedAt, after)
	require.GreaterOrEqual(t, second.UpdatedAt, first.UpdatedAt, "updatedAt is non-decreasing")
}
