package lzss

// Config holds the immutable parameters an encode/decode call shares: the
// sliding-window size and the minimum match length. A Config is safe to
// share across goroutines and across many Compress/Decompress calls.
type Config struct {
	window   uint32
	minMatch uint32
}

const (
	// MinWindow and MaxWindow bound the sliding-window size. The upper bound
	// matches the wire format's 16-bit distance field.
	MinWindow = 1
	MaxWindow = 65535

	// fixedMinMatch is the only MinMatch value this port accepts. The hash
	// chain is keyed on a fixed 3-byte prefix; supporting other minimum
	// match lengths would require a variable-width key, which is out of
	// scope until a real need for it arises.
	fixedMinMatch = 3

	// defaultWindow matches the window size used throughout spec scenarios
	// and is a reasonable general-purpose default.
	defaultWindow = 4096
)

// NewConfig validates and constructs a Config. window must be in
// [MinWindow, MaxWindow]; minMatch must currently equal 3.
func NewConfig(window, minMatch uint32) (*Config, error) {
	if window < MinWindow || window > MaxWindow {
		return nil, ErrInvalidConfig
	}
	if minMatch != fixedMinMatch {
		return nil, ErrInvalidConfig
	}

	return &Config{window: window, minMatch: minMatch}, nil
}

// DefaultConfig returns a Config with window 4096 and min-match 3.
func DefaultConfig() *Config {
	cfg, err := NewConfig(defaultWindow, fixedMinMatch)
	if err != nil {
		panic("lzss: invalid built-in default config")
	}

	return cfg
}

// Window returns the configured sliding-window size.
func (c *Config) Window() uint32 { return c.window }

// MinMatch returns the configured minimum match length.
func (c *Config) MinMatch() uint32 { return c.minMatch }

// maxMatchLen returns the longest match length the 1-byte length code can
// represent under this config: MinMatch + 254, reserving code 255 unused.
func (c *Config) maxMatchLen() int {
	return int(c.minMatch) + 254
}
