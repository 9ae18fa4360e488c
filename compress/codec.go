// Package compress provides the entropy-coder back-end adapter: a thin,
// pluggable facade over general-purpose block compressors.
//
// The container format (package container) treats this package as an
// opaque boundary: it only ever sees a Level (Fast, Balanced, Best) and a
// Codec's Compress/Decompress methods. No compressor-specific parameter,
// header, or framing detail is allowed to leak past this package.
package compress

import "fmt"

// Level selects a speed/ratio tradeoff without exposing backend-specific
// parameters to callers. It is the only tunable the container format
// surfaces on the wire (stored as the single compression_level byte in the
// v3 header).
type Level uint8

const (
	// Fast favors throughput over ratio.
	Fast Level = iota
	// Balanced is a middle ground, the default for general use.
	Balanced
	// Best favors ratio over throughput.
	Best
)

func (l Level) String() string {
	switch l {
	case Fast:
		return "Fast"
	case Balanced:
		return "Balanced"
	case Best:
		return "Best"
	default:
		return "Unknown"
	}
}

// Backend names a concrete compression algorithm. The container format never
// stores a Backend value on disk; it is a construction-time choice only,
// exposed so library callers can pick a codec explicitly when the
// default (zstd) isn't a good fit for a particular column's data.
type Backend string

const (
	BackendNone Backend = "none"
	BackendZstd Backend = "zstd"
	BackendS2   Backend = "s2"
	BackendLZ4  Backend = "lz4"
)

// Compressor compresses a byte slice produced by the per-column serializer
// (package serialize) into an opaque compressed byte slice.
type Compressor interface {
	// Compress compresses data and returns the result. The input slice is
	// not modified; NoOpCompressor returns the input slice itself.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor.
type Decompressor interface {
	// Decompress reverses Compress. Returns an error if data is corrupted
	// or was not produced by the same backend.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines Compressor and Decompressor. Every column blob in a v3
// container is produced and consumed through exactly one Codec.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats summarizes one compression operation, used by the CLI's
// estimate command.
type CompressionStats struct {
	Backend        Backend
	Level          Level
	OriginalSize   int64
	CompressedSize int64
}

// CompressionRatio returns compressed/original size; values below 1.0
// indicate the data shrank.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space saved as a percentage; it is negative when
// the compressed size exceeds the original size.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// NewCodec builds a Codec for the given backend tuned to the given level.
// BackendNone ignores level entirely (there is nothing to tune).
func NewCodec(backend Backend, level Level) (Codec, error) {
	switch backend {
	case BackendNone:
		return NewNoOpCompressor(), nil
	case BackendZstd:
		return NewZstdCompressor(level), nil
	case BackendS2:
		return NewS2Compressor(), nil
	case BackendLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("compress: unknown backend %q", backend)
	}
}

// DefaultBackend is used by container.Writer when no explicit backend is
// configured via options. Zstd is chosen for the same reason the teacher
// repo makes it the primary backend: the best ratio for highly repetitive,
// mostly-textual payloads, which is exactly what skeleton and string-fallback
// columns look like.
const DefaultBackend = BackendZstd
