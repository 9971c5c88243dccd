// Package extract adapts the noteblob pipeline to the TextExtractor port.
package extract

import (
	"github.com/lanternsoft/notesift-cli/internal/core/ports/driven"
	"github.com/lanternsoft/notesift-cli/internal/noteblob"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// Extractor wraps the tiered noteblob pipeline.
type Extractor struct {
	pipeline *noteblob.Extractor
}

// New creates an extractor. Pass noteblob.WithFieldPath to override the
// schema path from configuration.
func New(opts ...noteblob.Option) *Extractor {
	return &Extractor{pipeline: noteblob.NewExtractor(opts...)}
}

// Extract returns the best-effort plain text for blob.
func (e *Extractor) Extract(blob []byte) string {
	return e.pipeline.Extract(blob)
}

// ExtractTier returns the text and the name of the tier that produced it.
func (e *Extractor) ExtractTier(blob []byte) (string, string) {
	text, tier := e.pipeline.ExtractTier(blob)
	return text, tier.String()
}
