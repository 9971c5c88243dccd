package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanternsoft/notesift-cli/internal/core/domain"
	"github.com/lanternsoft/notesift-cli/internal/coredata"
)

// fixtureNote is one row for the test database.
type fixtureNote struct {
	pk       int64
	title    string
	modified float64
	deleted  int
	body     []byte
}

// createFixtureDB builds a minimal NoteStore.sqlite with the tables and
// columns the store queries.
func createFixtureDB(t *testing.T, notes []fixtureNote) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "NoteStore.sqlite")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE ZICCLOUDSYNCINGOBJECT (
			Z_PK INTEGER PRIMARY KEY,
			ZTITLE1 TEXT,
			ZMODIFICATIONDATE1 REAL,
			ZMARKEDFORDELETION INTEGER NOT NULL DEFAULT 0
		);
		CREATE TABLE ZICNOTEDATA (
			Z_PK INTEGER PRIMARY KEY,
			ZNOTE INTEGER,
			ZDATA BLOB
		);
	`)
	require.NoError(t, err)

	for _, n := range notes {
		_, err = db.Exec(
			`INSERT INTO ZICCLOUDSYNCINGOBJECT (Z_PK, ZTITLE1, ZMODIFICATIONDATE1, ZMARKEDFORDELETION)
			 VALUES (?, ?, ?, ?)`,
			n.pk, n.title, n.modified, n.deleted)
		require.NoError(t, err)

		_, err = db.Exec(
			`INSERT INTO ZICNOTEDATA (ZNOTE, ZDATA) VALUES (?, ?)`,
			n.pk, n.body)
		require.NoError(t, err)
	}

	return path
}

func TestNewNoteStore_MissingDatabase(t *testing.T) {
	_, err := NewNoteStore(filepath.Join(t.TempDir(), "nope.sqlite"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestGetNoteByTitle_ReturnsNote(t *testing.T) {
	path := createFixtureDB(t, []fixtureNote{
		{pk: 1, title: "Thoughts", modified: 700000000, body: []byte{0x1f, 0x8b, 0x08}},
	})

	store, err := NewNoteStore(path)
	require.NoError(t, err)
	defer store.Close()

	note, err := store.GetNoteByTitle(context.Background(), "Thoughts")

	require.NoError(t, err)
	assert.Equal(t, int64(1), note.PK)
	assert.Equal(t, "Thoughts", note.Title)
	assert.Equal(t, []byte{0x1f, 0x8b, 0x08}, note.Body)
	assert.Equal(t, coredata.Time(700000000), note.ModifiedAt)
}

func TestGetNoteByTitle_NotFound(t *testing.T) {
	path := createFixtureDB(t, nil)

	store, err := NewNoteStore(path)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.GetNoteByTitle(context.Background(), "Missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetNoteByTitle_NewestMatchWins(t *testing.T) {
	path := createFixtureDB(t, []fixtureNote{
		{pk: 1, title: "Thoughts", modified: 100, body: []byte("old")},
		{pk: 2, title: "Thoughts", modified: 200, body: []byte("new")},
	})

	store, err := NewNoteStore(path)
	require.NoError(t, err)
	defer store.Close()

	note, err := store.GetNoteByTitle(context.Background(), "Thoughts")

	require.NoError(t, err)
	assert.Equal(t, int64(2), note.PK)
	assert.Equal(t, []byte("new"), note.Body)
}

func TestGetNoteByTitle_DeletedNotesIgnored(t *testing.T) {
	path := createFixtureDB(t, []fixtureNote{
		{pk: 1, title: "Thoughts", modified: 300, deleted: 1, body: []byte("gone")},
		{pk: 2, title: "Thoughts", modified: 100, body: []byte("kept")},
	})

	store, err := NewNoteStore(path)
	require.NoError(t, err)
	defer store.Close()

	note, err := store.GetNoteByTitle(context.Background(), "Thoughts")

	require.NoError(t, err)
	assert.Equal(t, []byte("kept"), note.Body)
}

func TestGetNoteByTitle_NullModificationDate(t *testing.T) {
	path := createFixtureDB(t, nil)

	// Insert directly so ZMODIFICATIONDATE1 is NULL.
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(
		`INSERT INTO ZICCLOUDSYNCINGOBJECT (Z_PK, ZTITLE1, ZMARKEDFORDELETION) VALUES (1, 'Thoughts', 0)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO ZICNOTEDATA (ZNOTE, ZDATA) VALUES (1, x'00')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	store, err := NewNoteStore(path)
	require.NoError(t, err)
	defer store.Close()

	note, err := store.GetNoteByTitle(context.Background(), "Thoughts")

	require.NoError(t, err)
	assert.True(t, note.ModifiedAt.IsZero())
}

func TestNoteStore_CopyLeavesOriginalUntouched(t *testing.T) {
	path := createFixtureDB(t, []fixtureNote{
		{pk: 1, title: "Thoughts", modified: 100, body: []byte("body")},
	})

	store, err := NewNoteStore(path)
	require.NoError(t, err)

	_, err = store.GetNoteByTitle(context.Background(), "Thoughts")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// The original must still open and contain the row.
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM ZICCLOUDSYNCINGOBJECT`).Scan(&count))
	assert.Equal(t, 1, count)
}
