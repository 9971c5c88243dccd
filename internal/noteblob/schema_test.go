package noteblob

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPath_DefaultPath(t *testing.T) {
	buf := noteBody(DefaultFieldPath, []byte("sample text"))

	assert.Equal(t, "sample text", ExtractPath(buf, DefaultFieldPath))
}

func TestExtractPath_TrimsWhitespace(t *testing.T) {
	buf := noteBody(DefaultFieldPath, []byte("  padded body\n\n"))

	assert.Equal(t, "padded body", ExtractPath(buf, DefaultFieldPath))
}

func TestExtractPath_SkipsPrecedingRecords(t *testing.T) {
	// Real blobs open with a varint field 1 before the field 2 payload.
	inner := noteBody([]uint64{3, 2}, []byte("note text"))
	buf := append(varField(1, 1), lenField(2, inner)...)

	assert.Equal(t, "note text", ExtractPath(buf, DefaultFieldPath))
}

func TestExtractPath_FirstMatchWins(t *testing.T) {
	first := noteBody([]uint64{3, 2}, []byte("first"))
	second := noteBody([]uint64{3, 2}, []byte("second"))
	buf := append(lenField(2, first), lenField(2, second)...)

	assert.Equal(t, "first", ExtractPath(buf, DefaultFieldPath))
}

func TestExtractPath_MissingLevelReturnsEmpty(t *testing.T) {
	// Field 3 is absent inside the field 2 payload.
	buf := lenField(2, lenField(5, []byte("elsewhere")))

	assert.Empty(t, ExtractPath(buf, DefaultFieldPath))
}

func TestExtractPath_VarintAtPathFieldIgnored(t *testing.T) {
	// A varint record sharing the path's field number is not a
	// payload to descend into.
	buf := varField(2, 99)

	assert.Empty(t, ExtractPath(buf, DefaultFieldPath))
}

func TestExtractPath_InvalidUTF8LeafReturnsEmpty(t *testing.T) {
	buf := noteBody(DefaultFieldPath, []byte{0xff, 0xfe, 0x80})

	assert.Empty(t, ExtractPath(buf, DefaultFieldPath))
}

func TestExtractPath_EmptyInputs(t *testing.T) {
	assert.Empty(t, ExtractPath(nil, DefaultFieldPath))
	assert.Empty(t, ExtractPath(noteBody(DefaultFieldPath, []byte("x")), nil))
}

func TestExtractPath_TruncatedBuffer(t *testing.T) {
	buf := noteBody(DefaultFieldPath, []byte("sample text"))

	// Chopping anywhere must not panic; it may still recover a prefix
	// of the leaf because overlong lengths clamp to the buffer end.
	for i := range buf {
		assert.NotPanics(t, func() { ExtractPath(buf[:i], DefaultFieldPath) })
	}
}

func TestExtractPath_CustomPath(t *testing.T) {
	path := []uint64{7, 1}
	buf := noteBody(path, []byte("moved leaf"))

	assert.Equal(t, "moved leaf", ExtractPath(buf, path))
	assert.Empty(t, ExtractPath(buf, DefaultFieldPath))
}

func TestExtractPath_UnicodeLeaf(t *testing.T) {
	buf := noteBody(DefaultFieldPath, []byte("héllo wörld — 日本語"))

	assert.Equal(t, "héllo wörld — 日本語", ExtractPath(buf, DefaultFieldPath))
}
