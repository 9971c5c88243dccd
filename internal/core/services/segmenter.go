package services

import (
	"strings"

	"github.com/google/uuid"

	"github.com/lanternsoft/notesift-cli/internal/core/domain"
)

// Segmenter splits extracted note text into thoughts, one per
// paragraph. Paragraphs are runs of non-blank lines separated by blank
// lines; lines inside a paragraph are joined with single spaces.
type Segmenter struct {
	dropTitle string
}

// SegmenterOption configures the segmenter.
type SegmenterOption func(*Segmenter)

// WithTitleLine sets a title to drop when it appears as the first line.
// Notes repeats the note title at the top of the body text.
func WithTitleLine(title string) SegmenterOption {
	return func(s *Segmenter) {
		s.dropTitle = title
	}
}

// NewSegmenter creates a segmenter with the given options.
func NewSegmenter(opts ...SegmenterOption) *Segmenter {
	s := &Segmenter{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Segment splits text into thoughts, all carrying the given date.
// Empty text produces no thoughts.
func (s *Segmenter) Segment(text, date string) []domain.Thought {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	if s.dropTitle != "" && len(lines) > 0 && strings.TrimSpace(lines[0]) == s.dropTitle {
		lines = lines[1:]
	}

	var thoughts []domain.Thought
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		paragraph := strings.TrimSpace(strings.Join(current, " "))
		current = current[:0]
		if paragraph == "" {
			return
		}
		thoughts = append(thoughts, domain.Thought{
			ID:   uuid.New().String(),
			Text: paragraph,
			Date: date,
		})
	}

	for _, line := range lines {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return thoughts
}
