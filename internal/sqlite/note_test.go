package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/ganot/livenotes/internal/domain/note"
	"github.com/ganot/livenotes/internal/repository"
	"github.com/stretchr/testify/require"
)

func insertTestNote(t *testing.T, repo *NoteRepository, projectID *int64, title string, updatedAt int64) *note.Note {
	t.Helper()
	n := &note.Note{
		Title:     title,
		Content:   "content of " + title,
		ProjectID: projectID,
		UpdatedAt: updatedAt,
	}
	require.NoError(t, repo.Insert(context.Background(), n))
	return n
}

func TestNoteRepository_InsertAssignsUniqueIDs(t *testing.T) {
	db := NewTestDB(t)
	repo := NewNoteRepository(db)

	first := insertTestNote(t, repo, nil, "first", time.Now().UnixMilli())
	second := insertTestNote(t, repo, nil, "second", time.Now().UnixMilli())

	require.NotZero(t, first.ID)
	require.NotZero(t, second.ID)
	require.NotEqual(t, first.ID, second.ID)
}

func TestNoteRepository_InsertRejectsUnknownProject(t *testing.T) {
	db := NewTestDB(t)
	repo := NewNoteRepository(db)

	missing := int64(9999)
	n := &note.Note{
		Title:     "orphan",
		Content:   "x",
		ProjectID: &missing,
		UpdatedAt: time.Now().UnixMilli(),
	}
	err := repo.Insert(context.Background(), n)
	require.ErrorIs(t, err, repository.ErrForeignKeyViolation)
}

func TestNoteRepository_ListNewestFirst(t *testing.T) {
	db := NewTestDB(t)
	repo := NewNoteRepository(db)
	ctx := context.Background()

	insertTestNote(t, repo, nil, "old", 1000)
	insertTestNote(t, repo, nil, "new", 3000)
	insertTestNote(t, repo, nil, "middle", 2000)

	notes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	require.Equal(t, "new", notes[0].Title)
	require.Equal(t, "middle", notes[1].Title)
	require.Equal(t, "old", notes[2].Title)
}

func TestNoteRepository_ListDenormalizesProject(t *testing.T) {
	db := NewTestDB(t)
	projects := NewProjectRepository(db)
	repo := NewNoteRepository(db)
	ctx := context.Background()

	projID, err := projects.Upsert(ctx, "Work", "#FF0000")
	require.NoError(t, err)

	insertTestNote(t, repo, &projID, "with project", 2000)
	insertTestNote(t, repo, nil, "without project", 1000)

	notes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)

	withProject := notes[0]
	require.NotNil(t, withProject.ProjectID)
	require.Equal(t, projID, *withProject.ProjectID)
	require.NotNil(t, withProject.ProjectName)
	require.Equal(t, "Work", *withProject.ProjectName)
	require.NotNil(t, withProject.ProjectColor)
	require.Equal(t, "#FF0000", *withProject.ProjectColor)

	withoutProject := notes[1]
	require.Nil(t, withoutProject.ProjectID)
	require.Nil(t, withoutProject.ProjectName)
	require.Nil(t, withoutProject.ProjectColor)
}

func TestNoteRepository_ProjectRecolorReflectsInList(t *testing.T) {
	db := NewTestDB(t)
	projects := NewProjectRepository(db)
	repo := NewNoteRepository(db)
	ctx := context.Background()

	projID, err := projects.Upsert(ctx, "Work", "#FF0000")
	require.NoError(t, err)
	insertTestNote(t, repo, &projID, "note", 1000)

	_, err = projects.Upsert(ctx, "Work", "#ABCDEF")
	require.NoError(t, err)

	notes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.NotNil(t, notes[0].ProjectColor)
	require.Equal(t, "#ABCDEF", *notes[0].ProjectColor, "denormalized color follows the last upsert")
}
