package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ganot/livenotes/internal/domain/note"
	"github.com/ganot/livenotes/internal/repository"
)

// NoteRepository implements repository.NoteRepository for SQLite
type NoteRepository struct {
	db *DB
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(db *DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Insert stores a note and assigns its id. The write is committed before the
// call returns; the sync layer relies on that before broadcasting.
func (r *NoteRepository) Insert(ctx context.Context, n *note.Note) error {
	query := `
		INSERT INTO notes (title, content, project_id, updated_at)
		VALUES (?, ?, ?, ?)
	`

	res, err := r.db.ExecContext(ctx, query,
		n.Title,
		n.Content,
		n.ProjectID,
		n.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to insert note: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get note id: %w", err)
	}
	n.ID = id

	return nil
}

// List returns all notes ordered by updated_at descending, each denormalized
// with its project's name and color. Notes without a resolvable project keep
// null project fields.
func (r *NoteRepository) List(ctx context.Context) ([]note.Note, error) {
	query := `
		SELECT n.id, n.title, n.content, n.project_id, n.updated_at,
		       p.name, p.color
		FROM notes n
		LEFT JOIN projects p ON p.id = n.project_id
		ORDER BY n.updated_at DESC, n.id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []note.Note
	for rows.Next() {
		var n note.Note
		var projectID sql.NullInt64
		var projectName, projectColor sql.NullString

		err := rows.Scan(
			&n.ID,
			&n.Title,
			&n.Content,
			&projectID,
			&n.UpdatedAt,
			&projectName,
			&projectColor,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}

		if projectID.Valid {
			n.ProjectID = &projectID.Int64
		}
		if projectName.Valid {
			n.ProjectName = &projectName.String
		}
		if projectColor.Valid {
			n.ProjectColor = &projectColor.String
		}

		notes = append(notes, n)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating note rows: %w", err)
	}

	return notes, nil
}
