package lzss

import "encoding/binary"

// headerSize is the width of the original-size field at the start of
// every container: an 8-byte little-endian u64.
const headerSize = 8

// writeHeader appends the 8-byte little-endian original-size header to out.
func writeHeader(out []byte, n uint64) []byte {
	var buf [headerSize]byte
	binary.LittleEndian.PutUint64(buf[:], n)
	return append(out, buf[:]...)
}

// PeekOriginalSize reports the original (decompressed) size recorded in a
// container's header without decoding its body. It returns 0 if compressed
// is shorter than the header — the documented sentinel for "invalid".
func PeekOriginalSize(compressed []byte) uint64 {
	if len(compressed) < headerSize {
		return 0
	}

	return binary.LittleEndian.Uint64(compressed[:headerSize])
}

// MaxCompressedSize returns an upper bound on the size of Compress's output
// for an input of length n: header + all-literal worst case + one flag byte
// per 8 literals + slack. A conforming encoder never exceeds this bound.
func MaxCompressedSize(n uint64) uint64 {
	return headerSize + n + (n+7)/8 + 16
}
