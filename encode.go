package lzss

// Compress compresses input into a self-delimiting container under cfg. A
// nil cfg uses DefaultConfig. Compress succeeds for every input and never
// emits more than MaxCompressedSize(len(input)) bytes.
func Compress(cfg *Config, input []byte) ([]byte, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	out, err := compress(cfg, input)
	if err != nil {
		return nil, err
	}

	if uint64(len(out)) > MaxCompressedSize(uint64(len(input))) {
		return nil, ErrInternal
	}

	return out, nil
}

// compress is the core encoder: hash-chain match search over a sliding
// window followed by group-of-8 token emission (spec §4.3).
func compress(cfg *Config, input []byte) ([]byte, error) {
	n := len(input)
	out := make([]byte, 0, MaxCompressedSize(uint64(n)))
	out = writeHeader(out, uint64(n))

	if n == 0 {
		return out, nil
	}

	tw := newTokenWriter(out)
	minMatch := int(cfg.minMatch)
	maxLen := cfg.maxMatchLen()

	// Short inputs can never yield a 3-byte key lookup; fast-path them as
	// all-literal without touching the chain table at all.
	if n < keyLen {
		for i := 0; i < n; i++ {
			tw.literal(input[i])
		}
		return tw.finish(), nil
	}

	ct := acquireChainTable(cfg.window, n)
	defer releaseChainTable(ct)

	p := 0
	for p < n {
		if p+keyLen > n {
			// Tail shorter than a hash key: no more matches are possible.
			tw.literal(input[p])
			p++
			continue
		}

		remain := n - p
		limit := maxLen
		if limit > remain {
			limit = remain
		}

		bestLen, bestDist := ct.findBestMatch(input, p, cfg.window, limit)
		ct.insert(input, p)

		if bestLen >= minMatch {
			tw.match(uint32(bestDist), uint32(bestLen), cfg.minMatch)
			ct.insertRange(input, p+1, bestLen-1)
			p += bestLen
			continue
		}

		tw.literal(input[p])
		p++
	}

	return tw.finish(), nil
}
