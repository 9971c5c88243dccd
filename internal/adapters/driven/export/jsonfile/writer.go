// Package jsonfile writes extracted thoughts to a JSON file.
//
// The output shape matches what the consuming site expects:
//
//	{
//	  "thoughts": [
//	    {"text": "...", "date": "YYYY-MM-DD"}
//	  ]
//	}
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lanternsoft/notesift-cli/internal/core/domain"
	"github.com/lanternsoft/notesift-cli/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.ThoughtWriter = (*Writer)(nil)

// Writer persists thoughts as an indented JSON document.
type Writer struct{}

// New creates a new JSON file writer.
func New() *Writer {
	return &Writer{}
}

// document is the serialised file shape.
type document struct {
	Thoughts []domain.Thought `json:"thoughts"`
}

// WriteThoughts writes thoughts to path, replacing previous contents.
// The write goes through a temp file in the same directory and a rename
// so a crash never leaves a half-written file behind.
func (w *Writer) WriteThoughts(ctx context.Context, path string, thoughts []domain.Thought) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if path == "" {
		return fmt.Errorf("output path: %w", domain.ErrInvalidInput)
	}

	if thoughts == nil {
		// An empty export still serialises as an array, not null.
		thoughts = []domain.Thought{}
	}

	// An Encoder instead of MarshalIndent so &, < and > stay literal
	// in note text rather than becoming & escapes.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{Thoughts: thoughts}); err != nil {
		return fmt.Errorf("encoding thoughts: %w", err)
	}
	data := buf.Bytes()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".thoughts-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing thoughts: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing output file: %w", err)
	}
	return nil
}
