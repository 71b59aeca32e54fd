package lzss

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRoundTrip_Identity is P1 from spec §8: Decompress(Compress(x)) == x
// for every config/input pair exercised here.
func TestRoundTrip_Identity(t *testing.T) {
	configs := []*Config{
		nil, // DefaultConfig
		mustConfig(t, 1, 3),
		mustConfig(t, 64, 3),
		mustConfig(t, 65535, 3),
	}

	inputs := [][]byte{
		nil,
		[]byte("A"),
		[]byte("ABABABAB"),
		repeatedBytes(64, 1024), // 64KiB of structured, highly repetitive text
		randomBytes(t, 64*1024),
		loremIpsumRepeated(64),
	}

	for _, cfg := range configs {
		for _, in := range inputs {
			out, err := Compress(cfg, in)
			require.NoError(t, err)

			back, err := Decompress(cfg, out)
			require.NoError(t, err)
			require.Equal(t, in, back)
		}
	}
}

// TestRoundTrip_Deterministic is P7: compressing the same input under the
// same config twice produces byte-identical output.
func TestRoundTrip_Deterministic(t *testing.T) {
	in := loremIpsumRepeated(8)
	a, err := Compress(nil, in)
	require.NoError(t, err)
	b, err := Compress(nil, in)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

// TestRoundTrip_AchievesRatioOnHighlyRepetitiveInput is S5/S6: text
// repeated 64 times compresses to well under its original size.
func TestRoundTrip_AchievesRatioOnHighlyRepetitiveInput(t *testing.T) {
	in := loremIpsumRepeated(64)
	out, err := Compress(nil, in)
	require.NoError(t, err)
	require.Less(t, len(out), len(in)/4)

	back, err := Decompress(nil, out)
	require.NoError(t, err)
	require.Equal(t, in, back)
}

// TestDecompress_NeverPanicsOnArbitraryBytes is P4: malformed or
// adversarial containers surface a sentinel error, never a panic.
func TestDecompress_NeverPanicsOnArbitraryBytes(t *testing.T) {
	samples := [][]byte{
		nil,
		{0},
		{1, 0, 0, 0, 0, 0, 0, 0},
		{2, 0, 0, 0, 0, 0, 0, 0, 0xFF},
		{5, 0, 0, 0, 0, 0, 0, 0, 0xFF, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		repeatedBytes(3, 50),
	}

	for _, s := range samples {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("Decompress panicked on %v: %v", s, r)
				}
			}()
			_, _ = Decompress(nil, s)
		}()
	}
}

// TestCompress_NeverEmitsMatchShorterThanMinMatch is P5.
func TestCompress_NeverEmitsMatchShorterThanMinMatch(t *testing.T) {
	cfg := DefaultConfig()
	in := loremIpsumRepeated(16)
	out, err := Compress(cfg, in)
	require.NoError(t, err)

	pos := headerSize
	for pos < len(out) {
		flag := out[pos]
		pos++
		for i := 0; i < 8 && pos < len(out); i++ {
			if flag&(1<<uint(i)) == 0 {
				pos++
				continue
			}
			require.LessOrEqual(t, pos+3, len(out))
			lengthCode := int(out[pos+2])
			length := lengthCode + int(cfg.MinMatch())
			require.GreaterOrEqual(t, length, int(cfg.MinMatch()))
			pos += 3
		}
	}
}

func FuzzCompressDecompressRoundTrip(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("A"))
	f.Add([]byte("ABABABAB"))
	f.Add([]byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"))
	f.Add(repeatedBytes(32, 40))

	f.Fuzz(func(t *testing.T, in []byte) {
		out, err := Compress(nil, in)
		if err != nil {
			t.Fatalf("Compress returned error on valid input: %v", err)
		}
		back, err := Decompress(nil, out)
		if err != nil {
			t.Fatalf("Decompress returned error on our own output: %v", err)
		}
		if string(back) != string(in) && !(len(back) == 0 && len(in) == 0) {
			t.Fatalf("round trip mismatch: in=%q back=%q", in, back)
		}
	})
}

func mustConfig(t *testing.T, window, minMatch uint32) *Config {
	t.Helper()
	cfg, err := NewConfig(window, minMatch)
	require.NoError(t, err)
	return cfg
}

func loremIpsumRepeated(times int) []byte {
	const unit = "Lorem ipsum dolor sit amet, consectetur adipiscing elit. " +
		"Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. "
	out := make([]byte, 0, len(unit)*times)
	for i := 0; i < times; i++ {
		out = append(out, unit...)
	}
	return out
}
