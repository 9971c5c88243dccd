package driven

// TextExtractor decodes a compressed note body blob into plain text.
// Implementations never fail: unrecognised input yields an empty
// string, and empty is a legitimate result rather than an error.
type TextExtractor interface {
	// Extract returns the best-effort plain text for blob.
	Extract(blob []byte) string

	// ExtractTier additionally names the decoding tier that produced
	// the text ("schema", "heuristic", "lossy" or "empty"), for
	// diagnostics.
	ExtractTier(blob []byte) (text string, tier string)
}
