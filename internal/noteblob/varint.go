package noteblob

// ReadUvarint decodes an unsigned base-128 varint from buf starting at
// pos. Each byte contributes its low 7 bits; a set high bit signals
// continuation. It returns the decoded value and the position
// immediately past the last consumed byte.
//
// Decoding is deliberately lenient: if the buffer ends before a
// terminating byte, the value accumulated so far is returned with the
// position at len(buf). Truncated trailing data must never abort a
// walk, only end it.
func ReadUvarint(buf []byte, pos int) (uint64, int) {
	var value uint64
	var shift uint
	for pos < len(buf) {
		b := buf[pos]
		value |= uint64(b&0x7f) << shift
		pos++
		if b&0x80 == 0 {
			break
		}
		shift += 7
	}
	return value, pos
}
