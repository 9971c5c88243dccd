// Package sqlite reads notes from an Apple Notes NoteStore.sqlite
// database.
//
// The live database belongs to the Notes process and may be locked, so
// the store copies the database file and its -wal/-shm sidecars into a
// temporary directory and queries the copy. Nothing here ever touches
// the original database.
package sqlite
