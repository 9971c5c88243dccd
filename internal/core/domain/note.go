package domain

import "time"

// Note represents a single note row fetched from the Notes database.
// The Body is the opaque, compressed blob exactly as stored; it is only
// given meaning by the extraction pipeline.
type Note struct {
	// PK is the database primary key of the note row.
	PK int64

	// Title is the note's title as stored by the producing application.
	Title string

	// Body is the raw compressed body blob. May be empty.
	Body []byte

	// ModifiedAt is when the note was last modified.
	ModifiedAt time.Time
}

// Thought is one paragraph of extracted note text, the unit the
// exporter serialises.
type Thought struct {
	// ID is the unique identifier for the thought.
	ID string `json:"-"`

	// Text is the paragraph text with intra-paragraph newlines collapsed.
	Text string `json:"text"`

	// Date is the note's modification date as YYYY-MM-DD.
	Date string `json:"date"`
}

// ExportResult summarises one export run.
type ExportResult struct {
	// NoteTitle is the title of the note that was exported.
	NoteTitle string

	// Thoughts is the set of paragraphs written out.
	Thoughts []Thought

	// OutputPath is where the thoughts were written.
	OutputPath string

	// Tier names which extraction tier produced the text
	// ("schema", "heuristic", "lossy" or "empty").
	Tier string
}
