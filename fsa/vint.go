package fsa

import (
	"github.com/multiformats/go-varint"
)

// Variable-length integers in CFSA2 are little-endian 7-bit groups with the
// high bit as the continuation marker. The varint library caps values at 63
// bits and rejects non-minimal encodings; both conditions only arise from
// corrupted input, so they map to *CorruptedError.

// readVInt decodes a varint from the start of buf, returning the value and
// the number of bytes consumed.
func readVInt(buf []byte) (int, int, error) {
	if len(buf) == 0 {
		return 0, 0, ErrUnexpectedEOF
	}
	v, n, err := varint.FromUvarint(buf)
	if err != nil {
		return 0, 0, corruptedf("varint: %v", err)
	}
	return int(v), n, nil
}

// writeVInt appends the varint encoding of v to dst.
func writeVInt(dst []byte, v int) []byte {
	return append(dst, varint.ToUvarint(uint64(v))...)
}
