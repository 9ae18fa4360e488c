package compress

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	data := []byte("2024-01-15 10:30:45 INFO User logged in from 192.168.1.100\n")

	for _, backend := range []Backend{BackendNone, BackendZstd, BackendS2, BackendLZ4} {
		for _, level := range []Level{Fast, Balanced, Best} {
			t.Run(string(backend)+"/"+level.String(), func(t *testing.T) {
				codec, err := NewCodec(backend, level)
				require.NoError(t, err)

				compressed, err := codec.Compress(data)
				require.NoError(t, err)

				decompressed, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.Equal(t, data, decompressed)
			})
		}
	}
}

func TestCodecEmptyInput(t *testing.T) {
	codec, err := NewCodec(BackendZstd, Balanced)
	require.NoError(t, err)

	compressed, err := codec.Compress(nil)
	require.NoError(t, err)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Empty(t, decompressed)
}

func TestNewCodecUnknownBackend(t *testing.T) {
	_, err := NewCodec(Backend("bogus"), Balanced)
	require.Error(t, err)
}

func TestCompressionStats(t *testing.T) {
	stats := CompressionStats{OriginalSize: 100, CompressedSize: 25}
	require.InDelta(t, 0.25, stats.CompressionRatio(), 1e-9)
	require.InDelta(t, 75.0, stats.SpaceSavings(), 1e-9)

	zero := CompressionStats{}
	require.Equal(t, 0.0, zero.CompressionRatio())
}
