package lzss

import "github.com/cespare/xxhash/v2"

// keyLen is the fixed prefix width the chain table hashes on, tied to the
// fixed MinMatch of 3 (see config.go).
const keyLen = 3

// defaultMaxChainLen bounds how many candidates findBestMatch probes per
// position. Purely a speed/ratio knob (spec §9): it never changes what a
// conforming decoder produces, only how hard the encoder searches.
const defaultMaxChainLen = 256

// emptyNode marks an empty chain-table head or an end-of-chain link.
const emptyNode = -1

// chainTable is the hash-chain dictionary the encoder uses to find
// back-reference candidates. It is built once per Compress call, owned
// exclusively by that call, and discarded (or pooled) afterward — see
// hashchain_pool.go. Unlike a streaming codec's ring buffer, this table
// indexes the whole input buffer directly, since encode operates on an
// in-memory buffer rather than an unbounded stream.
type chainTable struct {
	mask     uint32  // table size - 1 (table size is a power of two)
	head     []int32 // hash key -> most recently inserted position + emptyNode sentinel
	link     []int32 // position -> previous position with the same key (most-recent-first chain)
	maxChain int
}

// newChainTable allocates a chain table sized for a window of the given
// size and an input of the given length. Table size is the next power of
// two at or above 4*window, per spec §4.3.
func newChainTable(window uint32, inputLen int) *chainTable {
	ct := &chainTable{}
	ct.reset(window, inputLen)
	return ct
}

// reset (re)sizes the table for a new Compress call, reusing backing
// arrays when their capacity already suffices. Used directly by
// newChainTable and by the pool in hashchain_pool.go.
func (ct *chainTable) reset(window uint32, inputLen int) {
	tableSize := nextPow2(4 * int(window))

	if cap(ct.head) >= tableSize {
		ct.head = ct.head[:tableSize]
	} else {
		ct.head = make([]int32, tableSize)
	}
	for i := range ct.head {
		ct.head[i] = emptyNode
	}

	if cap(ct.link) >= inputLen {
		ct.link = ct.link[:inputLen]
	} else {
		ct.link = make([]int32, inputLen)
	}

	ct.mask = uint32(tableSize - 1)
	ct.maxChain = defaultMaxChainLen
}

// nextPow2 returns the smallest power of two >= n (at least 1).
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// hashKey returns the table index for the 3-byte prefix at b[0:3].
func (ct *chainTable) hashKey(b []byte) uint32 {
	return uint32(xxhash.Sum64(b[:keyLen])) & ct.mask
}

// insert links position pos into the chain for its own 3-byte prefix,
// becoming the new most-recent candidate for that key.
func (ct *chainTable) insert(input []byte, pos int) {
	if pos+keyLen > len(input) {
		return
	}

	key := ct.hashKey(input[pos:])
	ct.link[pos] = ct.head[key]
	ct.head[key] = int32(pos)
}

// insertRange inserts every position in [start, start+count) — used after
// accepting a match so that later searches can still find candidates that
// start inside bytes the match already covered (spec §4.3's "simplest,
// best-ratio" insertion policy).
func (ct *chainTable) insertRange(input []byte, start, count int) {
	for i := start; i < start+count; i++ {
		ct.insert(input, i)
	}
}

// findBestMatch walks the chain for the 3-byte prefix at input[pos:] and
// returns the longest match within the window, tie-broken to the smallest
// distance. limit bounds the match length it will extend to (the caller
// passes min(maxMatchLen, bytes remaining)). It does NOT insert pos —
// callers must call insert/insertRange themselves once they know whether
// pos starts a literal or a match.
func (ct *chainTable) findBestMatch(input []byte, pos int, window uint32, limit int) (bestLen, bestDist int) {
	if pos+keyLen > len(input) {
		return 0, 0
	}

	key := ct.hashKey(input[pos:])
	node := ct.head[key]
	chances := ct.maxChain

	for node >= 0 && chances > 0 {
		cand := int(node)
		dist := pos - cand

		// The chain is most-recent-first, and positions only grow, so
		// distance strictly increases as we walk it: once one candidate
		// is outside the window every remaining one is too.
		if dist > int(window) {
			break
		}

		l := matchLength(input, cand, pos, limit)
		if l > bestLen {
			bestLen = l
			bestDist = dist
			if bestLen >= limit {
				break
			}
		}

		node = ct.link[cand]
		chances--
	}

	return bestLen, bestDist
}

// matchLength returns how many leading bytes of input[pos:] and
// input[cand:] agree, bounded by limit.
func matchLength(input []byte, cand, pos, limit int) int {
	l := 0
	for l < limit && input[cand+l] == input[pos+l] {
		l++
	}
	return l
}
