package lzss

import "sync"

// chainTablePool recycles chainTable scratch slices across Compress calls.
// Each acquire gets an exclusive table until it is released; concurrent
// callers never share one, so this introduces no cross-call mutable state
// (see spec §5).
var chainTablePool = sync.Pool{
	New: func() any {
		return &chainTable{}
	},
}

// acquireChainTable gets a chain table sized for window/inputLen from the
// pool, resetting it for the new call.
func acquireChainTable(window uint32, inputLen int) *chainTable {
	ct := chainTablePool.Get().(*chainTable)
	ct.reset(window, inputLen)
	return ct
}

// releaseChainTable returns a chain table to the pool for reuse.
func releaseChainTable(ct *chainTable) {
	if ct == nil {
		return
	}

	chainTablePool.Put(ct)
}
