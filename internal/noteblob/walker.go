package noteblob

// WireType is the low three bits of a record tag, indicating how the
// field value is encoded.
type WireType int

// Wire types observed in note body blobs. The format only uses varint
// and length-delimited records; anything else marks the end of
// parseable data.
const (
	WireVarint      WireType = 0
	WireLengthDelim WireType = 2
)

// FieldRecord is one tag/length/value record yielded by Walk.
// Payload is a read-only view into the walked buffer, valid only for
// the duration of the callback.
type FieldRecord struct {
	// Num is the field number from the tag's upper bits.
	Num uint64

	// Type is the record's wire type.
	Type WireType

	// Value holds the decoded integer for WireVarint records.
	Value uint64

	// Payload holds the byte view for WireLengthDelim records.
	Payload []byte
}

// Walk iterates one level of tag/length/value records in buf, calling
// fn for each. fn returning false stops the walk early.
//
// An unknown wire type ends the walk without error: in practice it
// means the remaining bytes are not field records. A length-delimited
// record whose declared length overruns the buffer is clamped to the
// buffer boundary. Walk never mutates buf and keeps no state between
// calls; restart by calling it again.
func Walk(buf []byte, fn func(FieldRecord) bool) {
	pos := 0
	for pos < len(buf) {
		tag, next := ReadUvarint(buf, pos)
		pos = next

		num := tag >> 3
		switch WireType(tag & 0x07) {
		case WireVarint:
			value, next := ReadUvarint(buf, pos)
			pos = next
			if !fn(FieldRecord{Num: num, Type: WireVarint, Value: value}) {
				return
			}
		case WireLengthDelim:
			length, next := ReadUvarint(buf, pos)
			pos = next

			end := len(buf)
			if length < uint64(len(buf)-pos) {
				end = pos + int(length)
			}
			payload := buf[pos:end]
			pos = end

			if !fn(FieldRecord{Num: num, Type: WireLengthDelim, Payload: payload}) {
				return
			}
		default:
			return
		}
	}
}
