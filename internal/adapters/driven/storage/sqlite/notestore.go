package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/lanternsoft/notesift-cli/internal/core/domain"
	"github.com/lanternsoft/notesift-cli/internal/core/ports/driven"
	"github.com/lanternsoft/notesift-cli/internal/coredata"
	"github.com/lanternsoft/notesift-cli/internal/logger"
)

// Ensure NoteStore implements the interface.
var _ driven.NoteStore = (*NoteStore)(nil)

// NoteStore reads note rows from a copy of NoteStore.sqlite.
type NoteStore struct {
	db      *sql.DB
	tempDir string
}

// DefaultDBPath returns the NoteStore.sqlite location used by Notes on
// macOS.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home,
		"Library", "Group Containers", "group.com.apple.notes", "NoteStore.sqlite"), nil
}

// NewNoteStore copies the database at dbPath aside and opens the copy.
// If dbPath is empty, the default macOS location is used.
func NewNoteStore(dbPath string) (*NoteStore, error) {
	if dbPath == "" {
		var err error
		dbPath, err = DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}

	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrStoreUnavailable, dbPath)
	}

	tempDir, err := os.MkdirTemp("", "notesift-db-")
	if err != nil {
		return nil, fmt.Errorf("creating temp directory: %w", err)
	}

	dbCopy := filepath.Join(tempDir, "NoteStore.sqlite")
	if err := copySnapshot(dbPath, dbCopy); err != nil {
		os.RemoveAll(tempDir)
		return nil, fmt.Errorf("copying database: %w", err)
	}

	// The copy must stay writable: sqlite recovers a pending -wal
	// journal on open.
	db, err := sql.Open("sqlite", dbCopy+"?_pragma=busy_timeout(5000)")
	if err != nil {
		os.RemoveAll(tempDir)
		return nil, fmt.Errorf("opening database: %w", err)
	}

	logger.Debug("Opened database copy at %s", dbCopy)

	return &NoteStore{
		db:      db,
		tempDir: tempDir,
	}, nil
}

// Close closes the database and removes the temporary copy.
func (s *NoteStore) Close() error {
	err := s.db.Close()
	if rmErr := os.RemoveAll(s.tempDir); rmErr != nil && err == nil {
		err = rmErr
	}
	return err
}

// GetNoteByTitle returns the most recently modified, not-deleted note
// with the given title.
func (s *NoteStore) GetNoteByTitle(ctx context.Context, title string) (*domain.Note, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT
			n.Z_PK,
			n.ZTITLE1,
			n.ZMODIFICATIONDATE1,
			nd.ZDATA
		FROM ZICCLOUDSYNCINGOBJECT n
		LEFT JOIN ZICNOTEDATA nd
			ON nd.ZNOTE = n.Z_PK
		WHERE n.ZTITLE1 = ?
			AND n.ZMARKEDFORDELETION != 1
		ORDER BY n.ZMODIFICATIONDATE1 DESC
		LIMIT 1
	`, title)

	var (
		pk       int64
		rowTitle sql.NullString
		modified sql.NullFloat64
		body     []byte
	)
	if err := row.Scan(&pk, &rowTitle, &modified, &body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("note %q: %w", title, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("querying note: %w", err)
	}

	note := &domain.Note{
		PK:    pk,
		Title: rowTitle.String,
		Body:  body,
	}
	if modified.Valid {
		note.ModifiedAt = coredata.Time(modified.Float64)
	}

	return note, nil
}

// copySnapshot copies the database file plus any -wal and -shm sidecars
// so the copy sees every committed write.
func copySnapshot(src, dst string) error {
	if err := copyFile(src, dst); err != nil {
		return err
	}
	for _, suffix := range []string{"-wal", "-shm"} {
		sidecar := src + suffix
		if _, err := os.Stat(sidecar); err != nil {
			continue
		}
		if err := copyFile(sidecar, dst+suffix); err != nil {
			return err
		}
	}
	return nil
}

// copyFile copies src to dst, creating or truncating dst.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
