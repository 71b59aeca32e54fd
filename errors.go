package lzss

import "errors"

// Sentinel errors returned by the codec. Callers should compare with
// errors.Is rather than direct equality.
var (
	// ErrInvalidConfig is returned when Window or MinMatch is out of range.
	ErrInvalidConfig = errors.New("lzss: invalid config")
	// ErrInvalidInput is returned when a compressed buffer is shorter than the 8-byte header.
	ErrInvalidInput = errors.New("lzss: invalid input")
	// ErrTruncated is returned when a stream ends before the declared number of bytes is produced.
	ErrTruncated = errors.New("lzss: truncated stream")
	// ErrInvalidReference is returned when a back-reference has distance 0, points
	// before the start of output, or would write past the declared original size.
	ErrInvalidReference = errors.New("lzss: invalid back-reference")

	// ErrInternal is returned when the encoder discovers it has exceeded
	// MaxCompressedSize, which indicates a bug in the bound rather than bad input.
	ErrInternal = errors.New("lzss: internal encoder error")
)
