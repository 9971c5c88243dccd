// Package file provides a TOML file-backed implementation of the
// ConfigStore port.
//
// Configuration lives in ~/.notesift/config.toml. Nested TOML tables
// are flattened to dot-notation keys, so
//
//	[note]
//	title = "Thoughts"
//
// is read as GetString("note.title").
package file
