// Package noteblob extracts plain text from the compressed binary blob
// Apple Notes stores as a note body.
//
// The blob is a gzipped, protobuf-style buffer with no published schema,
// and its layout has shifted across Notes versions. The package therefore
// decodes in tiers, each more tolerant than the last:
//
//  1. Schema path: walk the tag/length/value structure along the field
//     path observed in current Notes databases and read the text leaf.
//  2. Heuristic scan: recover printable ASCII runs and valid multi-byte
//     UTF-8 sequences from the raw decompressed bytes.
//  3. Lossy decode: interpret the bytes as UTF-8, dropping anything that
//     does not decode.
//
// Every tier absorbs malformed input; the pipeline always returns a
// string and an empty string is a valid outcome, not an error.
package noteblob
