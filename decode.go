package lzss

// Decompress decodes a container produced by Compress back to the exact
// original bytes. A nil cfg uses DefaultConfig; decoding only needs
// cfg.MinMatch (the bitstream is otherwise self-describing — see spec
// §4.4), so the same cfg value works regardless of which window size the
// encoder used.
func Decompress(cfg *Config, compressed []byte) ([]byte, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	return decompress(cfg, compressed)
}

// decompress is the core decoder: read the header, then walk groups of 8
// flagged items (literal or back-reference) until the declared size is
// reached.
func decompress(cfg *Config, src []byte) ([]byte, error) {
	if len(src) < headerSize {
		return nil, ErrInvalidInput
	}

	n := PeekOriginalSize(src)
	minMatch := int(cfg.minMatch)

	// No body byte can expand to more than minMatch+255 output bytes, so a
	// larger declared size is truncated by construction; rejecting it here
	// also keeps an adversarial header from driving the allocation below.
	if n > uint64(len(src)-headerSize)*uint64(minMatch+255) {
		return nil, ErrTruncated
	}
	dst := make([]byte, n)

	inPos := headerSize
	outPos := 0

	for uint64(outPos) < n {
		if inPos >= len(src) {
			return nil, ErrTruncated
		}
		flag := src[inPos]
		inPos++

		for i := 0; i < 8 && uint64(outPos) < n; i++ {
			if flag&(1<<uint(i)) == 0 {
				if inPos >= len(src) {
					return nil, ErrTruncated
				}
				dst[outPos] = src[inPos]
				inPos++
				outPos++
				continue
			}

			if inPos+3 > len(src) {
				return nil, ErrTruncated
			}
			dist := int(src[inPos]) | int(src[inPos+1])<<8
			lengthCode := int(src[inPos+2])
			inPos += 3

			length := lengthCode + minMatch
			if dist == 0 || dist > outPos || outPos+length > int(n) {
				return nil, ErrInvalidReference
			}

			if err := copyBackRef(dst, outPos, dist, length); err != nil {
				return nil, err
			}
			outPos += length
		}
	}

	if uint64(outPos) != n {
		return nil, ErrTruncated
	}

	return dst, nil
}
