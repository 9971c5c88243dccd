package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/lanternsoft/notesift-cli/internal/core/domain"
	"github.com/lanternsoft/notesift-cli/internal/core/ports/driven"
	"github.com/lanternsoft/notesift-cli/internal/core/ports/driving"
	"github.com/lanternsoft/notesift-cli/internal/coredata"
	"github.com/lanternsoft/notesift-cli/internal/logger"
)

// Ensure ExportOrchestrator implements the interface.
var _ driving.ExportOrchestrator = (*ExportOrchestrator)(nil)

// ExportOrchestrator coordinates note extraction and export.
type ExportOrchestrator struct {
	notes     driven.NoteStore
	extractor driven.TextExtractor
	writer    driven.ThoughtWriter

	mu      sync.Mutex
	running bool
}

// NewExportOrchestrator creates a new export orchestrator.
func NewExportOrchestrator(
	notes driven.NoteStore,
	extractor driven.TextExtractor,
	writer driven.ThoughtWriter,
) *ExportOrchestrator {
	return &ExportOrchestrator{
		notes:     notes,
		extractor: extractor,
		writer:    writer,
	}
}

// Export reads the note with the given title, extracts its plain text,
// segments it into thoughts and writes them to outputPath.
func (o *ExportOrchestrator) Export(ctx context.Context, title, outputPath string) (*domain.ExportResult, error) {
	result, err := o.extract(ctx, title)
	if err != nil {
		return nil, err
	}

	if err := o.writer.WriteThoughts(ctx, outputPath, result.Thoughts); err != nil {
		return nil, fmt.Errorf("write thoughts: %w", err)
	}
	result.OutputPath = outputPath

	logger.Info("Exported %d thoughts to %s", len(result.Thoughts), outputPath)
	return result, nil
}

// Preview reads and extracts the note without writing anything.
func (o *ExportOrchestrator) Preview(ctx context.Context, title string) (*domain.ExportResult, error) {
	return o.extract(ctx, title)
}

// extract runs the shared fetch-extract-segment steps.
func (o *ExportOrchestrator) extract(ctx context.Context, title string) (*domain.ExportResult, error) {
	o.mu.Lock()
	if o.running {
		o.mu.Unlock()
		return nil, domain.ErrExportInProgress
	}
	o.running = true
	o.mu.Unlock()
	defer func() {
		o.mu.Lock()
		o.running = false
		o.mu.Unlock()
	}()

	note, err := o.notes.GetNoteByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("get note %q: %w", title, err)
	}

	logger.Debug("Note %q: %d byte body, modified %s",
		note.Title, len(note.Body), note.ModifiedAt.Format("2006-01-02"))

	text, tier := o.extractor.ExtractTier(note.Body)
	if text == "" {
		// An unreadable body is degraded output, not a failure.
		logger.Warn("Note %q produced no text", title)
	} else {
		logger.Debug("Extracted %d characters via %s tier", len(text), tier)
	}

	date := note.ModifiedAt.Format("2006-01-02")
	if note.ModifiedAt.IsZero() {
		date = coredata.DateString(0)
	}

	segmenter := NewSegmenter(WithTitleLine(title))
	thoughts := segmenter.Segment(text, date)

	return &domain.ExportResult{
		NoteTitle: note.Title,
		Thoughts:  thoughts,
		Tier:      tier,
	}, nil
}
