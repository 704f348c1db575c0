package state

import (
	"github.com/ganot/livenotes/internal/domain/note"
	"github.com/ganot/livenotes/internal/domain/project"
)

// Snapshot is the complete current state as shipped to clients: projects
// ordered by name ascending, notes by updatedAt descending. The protocol is
// not delta-based; this whole structure is resent on connect and after every
// accepted mutation.
type Snapshot struct {
	Projects []project.Project `json:"projects"`
	Notes    []note.Note       `json:"notes"`
}
