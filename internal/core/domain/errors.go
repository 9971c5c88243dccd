package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	// Returned by the note store when no note matches the title.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStoreUnavailable indicates the Notes database could not be
	// opened. Typically the path is wrong or the process lacks
	// Full Disk Access.
	ErrStoreUnavailable = errors.New("note store unavailable")

	// ErrExportInProgress indicates an export is already running.
	ErrExportInProgress = errors.New("export in progress")
)
