package noteblob

import (
	"strings"
	"unicode/utf8"
)

// ScanText recovers readable text from buf without assuming any record
// structure. The note format interleaves formatting metadata with the
// literal text bytes; this scan keeps what reads as text and silently
// drops the rest, which makes it stable across Notes versions where the
// field-path assumption breaks.
//
// Scanning left to right: printable ASCII (0x20-0x7E) plus newline and
// carriage return is copied verbatim. A byte >= 0x80 is tried as the
// start of a UTF-8 sequence of length 4, then 3, then 2 - longest
// first, so a valid long sequence is never mis-split into a shorter
// invalid one. Undecodable lead bytes and other control bytes are
// dropped one at a time. The result is trimmed of surrounding
// whitespace.
func ScanText(buf []byte) string {
	var out strings.Builder
	for i := 0; i < len(buf); {
		b := buf[i]
		switch {
		case b >= 0x20 && b <= 0x7e, b == '\n', b == '\r':
			out.WriteByte(b)
			i++
		case b >= 0x80:
			if n := multibyteLen(buf[i:]); n > 0 {
				out.Write(buf[i : i+n])
				i += n
			} else {
				i++
			}
		default:
			i++
		}
	}
	return strings.TrimSpace(out.String())
}

// multibyteLen returns the length of the single valid UTF-8 sequence at
// the start of buf, trying 4, then 3, then 2 bytes, or 0 if none
// decodes to exactly one rune of that length. A decode failure reports
// size 1, so size == n already rules it out; comparing the rune against
// RuneError would wrongly reject a literal U+FFFD.
func multibyteLen(buf []byte) int {
	for _, n := range [...]int{4, 3, 2} {
		if n > len(buf) {
			continue
		}
		if _, size := utf8.DecodeRune(buf[:n]); size == n {
			return n
		}
	}
	return 0
}
