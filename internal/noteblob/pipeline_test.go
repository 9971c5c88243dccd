package noteblob

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_SchemaPath(t *testing.T) {
	ex := NewExtractor()
	blob := gz(noteBody(DefaultFieldPath, []byte("sample text")))

	text, tier := ex.ExtractTier(blob)

	assert.Equal(t, "sample text", text)
	assert.Equal(t, TierSchema, tier)
}

func TestExtract_FallsBackToHeuristic(t *testing.T) {
	// No field path in the payload, but readable ASCII embedded in
	// binary noise.
	payload := append([]byte{0x08, 0x01, 0x03}, []byte("Hello world")...)
	payload = append(payload, 0x02)

	ex := NewExtractor()
	text, tier := ex.ExtractTier(gz(payload))

	assert.Contains(t, text, "Hello world")
	assert.Equal(t, TierHeuristic, tier)
}

func TestExtract_InvalidLeafFallsThrough(t *testing.T) {
	// The schema path resolves but its leaf is not UTF-8; the pipeline
	// must move on to the heuristic scan, not report a decode failure.
	leaf := []byte{0xff, 0xfe}
	payload := append(noteBody(DefaultFieldPath, leaf), []byte(" readable tail")...)

	ex := NewExtractor()
	text, tier := ex.ExtractTier(gz(payload))

	assert.Contains(t, text, "readable tail")
	assert.Equal(t, TierHeuristic, tier)
}

func TestExtract_DecompressionFailureUsesRawBytes(t *testing.T) {
	// Not gzip at all: the raw bytes go straight to the lossy decode.
	ex := NewExtractor()
	text, tier := ex.ExtractTier([]byte("plain, never compressed"))

	assert.Equal(t, "plain, never compressed", text)
	assert.Equal(t, TierLossy, tier)
}

func TestExtract_EmptyInput(t *testing.T) {
	ex := NewExtractor()

	text, tier := ex.ExtractTier(nil)
	assert.Empty(t, text)
	assert.Equal(t, TierEmpty, tier)

	text, tier = ex.ExtractTier([]byte{})
	assert.Empty(t, text)
	assert.Equal(t, TierEmpty, tier)
}

func TestExtract_AllInvalidBytes(t *testing.T) {
	blob := make([]byte, 32)
	for i := range blob {
		blob[i] = 0x80
	}

	ex := NewExtractor()
	text, tier := ex.ExtractTier(blob)

	assert.Empty(t, text)
	assert.Equal(t, TierEmpty, tier)
}

func TestExtract_Idempotent(t *testing.T) {
	ex := NewExtractor()
	blob := gz(noteBody(DefaultFieldPath, []byte("same in, same out")))

	first := ex.Extract(blob)
	second := ex.Extract(blob)

	assert.Equal(t, first, second)
	assert.Equal(t, "same in, same out", first)
}

func TestExtract_CustomFieldPath(t *testing.T) {
	path := []uint64{4, 1, 1}
	ex := NewExtractor(WithFieldPath(path))
	blob := gz(noteBody(path, []byte("relocated text")))

	text, tier := ex.ExtractTier(blob)

	assert.Equal(t, "relocated text", text)
	assert.Equal(t, TierSchema, tier)
}

func TestExtract_TruncatedGzipStream(t *testing.T) {
	blob := gz(noteBody(DefaultFieldPath, []byte("cut short")))
	truncated := blob[:len(blob)-4]

	ex := NewExtractor()
	assert.NotPanics(t, func() { ex.Extract(truncated) })
}

func TestTier_String(t *testing.T) {
	assert.Equal(t, "schema", TierSchema.String())
	assert.Equal(t, "heuristic", TierHeuristic.String())
	assert.Equal(t, "lossy", TierLossy.String())
	assert.Equal(t, "empty", TierEmpty.String())
}
