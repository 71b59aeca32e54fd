// Command capi builds as a C shared library (-buildmode=c-shared) exposing
// the lzss codec through a cgo-exported ABI. Handles are int64 indices into
// a process-wide table rather than raw Go pointers: cgo forbids C code from
// holding a Go pointer across calls that might let the Go runtime move or
// collect it, so every value crossing the boundary is either a plain
// integer or a copy into C-owned memory.
package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/windlane/lzss"
)

var (
	handlesMu sync.Mutex
	handles   = make(map[int64]*lzss.Config)
	nextID    int64
)

// lzss_config_new validates window/minMatch and returns an opaque handle,
// or -1 on invalid configuration.
//
//export lzss_config_new
func lzss_config_new(window, minMatch C.uint32_t) C.int64_t {
	cfg, err := lzss.NewConfig(uint32(window), uint32(minMatch))
	if err != nil {
		return -1
	}

	handlesMu.Lock()
	defer handlesMu.Unlock()
	nextID++
	id := nextID
	handles[id] = cfg
	return C.int64_t(id)
}

// lzss_config_free releases a handle returned by lzss_config_new. Freeing
// an unknown or already-freed handle is a no-op.
//
//export lzss_config_free
func lzss_config_free(handle C.int64_t) {
	handlesMu.Lock()
	defer handlesMu.Unlock()
	delete(handles, int64(handle))
}

func lookupConfig(handle C.int64_t) *lzss.Config {
	if handle == 0 {
		return nil // nil config -> DefaultConfig(), matching the Go API
	}
	handlesMu.Lock()
	defer handlesMu.Unlock()
	return handles[int64(handle)]
}

// lzss_max_compressed_size returns the worst-case compressed size for an
// input of the given length, per lzss.MaxCompressedSize.
//
//export lzss_max_compressed_size
func lzss_max_compressed_size(inputLen C.uint64_t) C.uint64_t {
	return C.uint64_t(lzss.MaxCompressedSize(uint64(inputLen)))
}

// lzss_peek_original_size reads the declared original size out of a
// container header without decoding the body.
//
//export lzss_peek_original_size
func lzss_peek_original_size(src *C.uint8_t, srcLen C.int64_t) C.uint64_t {
	return C.uint64_t(lzss.PeekOriginalSize(cBytes(src, srcLen)))
}

// lzss_compress writes Compress(cfg, src) into dst and returns the number
// of bytes written, or -1 if dst is too small or compression fails. The
// caller must size dst using lzss_max_compressed_size beforehand.
//
//export lzss_compress
func lzss_compress(configHandle C.int64_t, src *C.uint8_t, srcLen C.int64_t, dst *C.uint8_t, dstCap C.int64_t) C.int64_t {
	out, err := lzss.Compress(lookupConfig(configHandle), cBytes(src, srcLen))
	if err != nil {
		return -1
	}
	if C.int64_t(len(out)) > dstCap {
		return -1
	}
	if len(out) > 0 {
		copy(unsafe.Slice((*byte)(unsafe.Pointer(dst)), len(out)), out)
	}
	return C.int64_t(len(out))
}

// lzss_decompress writes Decompress(cfg, src) into dst and returns the
// number of bytes written, or -1 on any decode error (including dst being
// too small — the caller should size dst via lzss_peek_original_size).
//
//export lzss_decompress
func lzss_decompress(configHandle C.int64_t, src *C.uint8_t, srcLen C.int64_t, dst *C.uint8_t, dstCap C.int64_t) C.int64_t {
	out, err := lzss.Decompress(lookupConfig(configHandle), cBytes(src, srcLen))
	if err != nil {
		return -1
	}
	if C.int64_t(len(out)) > dstCap {
		return -1
	}
	if len(out) > 0 {
		copy(unsafe.Slice((*byte)(unsafe.Pointer(dst)), len(out)), out)
	}
	return C.int64_t(len(out))
}

func cBytes(p *C.uint8_t, n C.int64_t) []byte {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), int(n))
}

func main() {}
