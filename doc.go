/*
Package lzss implements an in-memory LZSS (Lempel-Ziv-Storer-Szymanski)
codec: Compress and Decompress are a matched pair of pure functions that
turn a byte slice into a self-delimiting compressed container and back.

The codec is single-shot — it operates on whole buffers already resident
in memory, not on streams — and is configured by a sliding-window size and
a (currently fixed) minimum match length:

	cfg, err := lzss.NewConfig(4096, 3)
	out, err := lzss.Compress(cfg, data)
	back, err := lzss.Decompress(cfg, out)

A nil *Config defaults to DefaultConfig() (window 4096, min-match 3).
Decoding only depends on cfg.MinMatch; the window size and match lengths
used during encoding are recorded implicitly in the container itself.

# Container format

	offset 0..8   original size, u64 little-endian
	offset 8..end token stream: groups of [1 flag byte][up to 8 items]

Bit i of a group's flag byte (LSB=0) marks item i as a back-reference
(1) or literal (0). A literal is one raw byte; a back-reference is a
2-byte little-endian distance followed by a 1-byte length code, where the
decoded length equals the length code plus MinMatch.
*/
package lzss
