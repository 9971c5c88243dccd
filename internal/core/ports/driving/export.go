package driving

import (
	"context"

	"github.com/lanternsoft/notesift-cli/internal/core/domain"
)

// ExportOrchestrator coordinates note extraction and export.
type ExportOrchestrator interface {
	// Export reads the note with the given title, extracts its plain
	// text, segments it into thoughts and writes them to outputPath.
	Export(ctx context.Context, title, outputPath string) (*domain.ExportResult, error)

	// Preview reads and extracts the note without writing anything.
	Preview(ctx context.Context, title string) (*domain.ExportResult, error)
}
