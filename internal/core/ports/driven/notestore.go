package driven

import (
	"context"

	"github.com/lanternsoft/notesift-cli/internal/core/domain"
)

// NoteStore reads note rows from the Notes database.
// Backed by a read-only copy of NoteStore.sqlite.
type NoteStore interface {
	// GetNoteByTitle returns the most recently modified, not-deleted
	// note with the given title. Returns domain.ErrNotFound when no
	// such note exists.
	GetNoteByTitle(ctx context.Context, title string) (*domain.Note, error)

	// Close releases the database copy.
	Close() error
}
