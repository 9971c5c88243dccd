package noteblob

import (
	"bytes"
	"compress/gzip"
	"io"
	"strings"
	"unicode/utf8"
)

// Tier identifies which extraction stage produced a result.
type Tier int

const (
	// TierEmpty means no tier recovered any text.
	TierEmpty Tier = iota

	// TierSchema means the field-path walk found the text leaf.
	TierSchema

	// TierHeuristic means the byte scan recovered the text.
	TierHeuristic

	// TierLossy means the last-resort UTF-8 decode produced the text.
	TierLossy
)

// String returns the tier name for logging.
func (t Tier) String() string {
	switch t {
	case TierSchema:
		return "schema"
	case TierHeuristic:
		return "heuristic"
	case TierLossy:
		return "lossy"
	default:
		return "empty"
	}
}

// Extractor runs the tiered extraction pipeline over note body blobs.
// It holds only configuration; invocations share no state and are safe
// to run concurrently.
type Extractor struct {
	path []uint64
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithFieldPath overrides the schema field path. Useful when a Notes
// version moves the text leaf.
func WithFieldPath(path []uint64) Option {
	return func(e *Extractor) {
		if len(path) > 0 {
			e.path = path
		}
	}
}

// NewExtractor creates an extractor with the default field path.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{path: DefaultFieldPath}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the best-effort plain text for blob. It never fails:
// unrecognised or empty input yields "".
func (e *Extractor) Extract(blob []byte) string {
	text, _ := e.ExtractTier(blob)
	return text
}

// ExtractTier is Extract plus the tier that produced the text. Tiers
// run in strict order - decompress, field path, heuristic scan, lossy
// decode - and each later tier runs only when the earlier ones yielded
// nothing. When decompression itself fails the original blob bytes go
// straight to the lossy tier.
func (e *Extractor) ExtractTier(blob []byte) (string, Tier) {
	if len(blob) == 0 {
		return "", TierEmpty
	}

	buf, err := inflate(blob)
	if err != nil {
		return lossyTier(blob)
	}

	if text := ExtractPath(buf, e.path); text != "" {
		return text, TierSchema
	}
	if text := ScanText(buf); text != "" {
		return text, TierHeuristic
	}
	return lossyTier(buf)
}

// inflate gunzips blob into a fresh buffer owned by this invocation.
func inflate(blob []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(blob))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	buf, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// lossyTier reports the lossy decode of buf, or TierEmpty when nothing
// survives it.
func lossyTier(buf []byte) (string, Tier) {
	if text := lossyDecode(buf); text != "" {
		return text, TierLossy
	}
	return "", TierEmpty
}

// lossyDecode converts buf to a string, dropping byte sequences that do
// not form valid UTF-8.
func lossyDecode(buf []byte) string {
	var out strings.Builder
	for i := 0; i < len(buf); {
		r, size := utf8.DecodeRune(buf[i:])
		if r == utf8.RuneError && size <= 1 {
			i++
			continue
		}
		out.Write(buf[i : i+size])
		i += size
	}
	return strings.TrimSpace(out.String())
}
