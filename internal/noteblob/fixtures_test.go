package noteblob

import (
	"bytes"
	"compress/gzip"
)

// Test fixtures are hand-encoded tag/length/value buffers; there is no
// schema to generate them from, which is rather the point.

// putUvarint encodes v as a base-128 varint.
func putUvarint(v uint64) []byte {
	var out []byte
	for v >= 0x80 {
		out = append(out, byte(v)|0x80)
		v >>= 7
	}
	return append(out, byte(v))
}

// lenField encodes a length-delimited record for num wrapping payload.
func lenField(num uint64, payload []byte) []byte {
	out := putUvarint(num<<3 | uint64(WireLengthDelim))
	out = append(out, putUvarint(uint64(len(payload)))...)
	return append(out, payload...)
}

// varField encodes a varint record for num holding v.
func varField(num, v uint64) []byte {
	out := putUvarint(num<<3 | uint64(WireVarint))
	return append(out, putUvarint(v)...)
}

// noteBody nests text under the given field path, innermost last.
func noteBody(path []uint64, text []byte) []byte {
	payload := text
	for i := len(path) - 1; i >= 0; i-- {
		payload = lenField(path[i], payload)
	}
	return payload
}

// gz compresses data the way Notes compresses note bodies.
func gz(data []byte) []byte {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	zw.Write(data)
	zw.Close()
	return buf.Bytes()
}
