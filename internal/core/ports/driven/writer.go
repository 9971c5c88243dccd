package driven

import (
	"context"

	"github.com/lanternsoft/notesift-cli/internal/core/domain"
)

// ThoughtWriter persists extracted thoughts.
// Backed by a JSON file in the default implementation.
type ThoughtWriter interface {
	// WriteThoughts writes the full set of thoughts to path,
	// replacing any previous contents atomically.
	WriteThoughts(ctx context.Context, path string, thoughts []domain.Thought) error
}
