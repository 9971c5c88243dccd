package noteblob

import (
	"strings"
	"unicode/utf8"
)

// DefaultFieldPath locates the note text in current Notes databases:
// top-level field 2, then field 3 within its payload, then field 2
// again, whose payload is the UTF-8 body text. The path is reverse
// engineered from real note blobs, not a published schema, so callers
// can override it via configuration.
var DefaultFieldPath = []uint64{2, 3, 2}

// ExtractPath descends buf along path, recursing into the first
// length-delimited record matching each field number, and decodes the
// final payload as UTF-8 text.
//
// First match wins at every level; a note body carries exactly one
// record per path step. It returns the trimmed text, or "" when any
// level lacks the expected field, the buffer runs out early, or the
// leaf is not valid UTF-8. An empty return means "try the next tier",
// never a failure.
func ExtractPath(buf []byte, path []uint64) string {
	if len(path) == 0 {
		return ""
	}

	cur := buf
	for _, num := range path {
		var payload []byte
		found := false
		Walk(cur, func(r FieldRecord) bool {
			if r.Type == WireLengthDelim && r.Num == num {
				payload = r.Payload
				found = true
				return false
			}
			return true
		})
		if !found {
			return ""
		}
		cur = payload
	}

	if !utf8.Valid(cur) {
		return ""
	}
	return strings.TrimSpace(string(cur))
}
