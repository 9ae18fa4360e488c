package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdLevelFor maps the container format's three abstract levels onto
// klauspost/compress/zstd's encoder speed settings. This is the pure-Go
// analog of the reference implementation's CompressionLevel::zstd_level(),
// which picks zstd levels 3/10/19 for Fast/Balanced/Best respectively;
// klauspost's EncoderLevel enum is the speed-named equivalent.
func zstdLevelFor(level Level) zstd.EncoderLevel {
	switch level {
	case Fast:
		return zstd.SpeedFastest
	case Best:
		return zstd.SpeedBestCompression
	default:
		return zstd.SpeedDefault
	}
}

// zstdDecoderPool pools zstd decoders for reuse to eliminate allocation
// overhead. klauspost/compress/zstd is explicitly designed for decoder
// reuse: "The decoder has been designed to operate without allocations
// after a warmup. This means that you should store the decoder for best
// performance."
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("compress: failed to create zstd decoder: %v", err))
		}

		return decoder
	},
}

// zstdEncoderPools holds one encoder pool per Level, since encoders are
// constructed with a fixed speed setting and can't be retuned after the
// fact.
var zstdEncoderPools = map[Level]*sync.Pool{
	Fast:     newZstdEncoderPool(Fast),
	Balanced: newZstdEncoderPool(Balanced),
	Best:     newZstdEncoderPool(Best),
}

func newZstdEncoderPool(level Level) *sync.Pool {
	speed := zstdLevelFor(level)

	return &sync.Pool{
		New: func() any {
			encoder, err := zstd.NewWriter(nil,
				zstd.WithEncoderLevel(speed),
				zstd.WithEncoderCRC(false),
			)
			if err != nil {
				panic(fmt.Sprintf("compress: failed to create zstd encoder: %v", err))
			}

			return encoder
		},
	}
}

// ZstdCompressor compresses column blobs with Zstandard at a fixed Level.
//
// Best for skeleton and string-fallback columns (emails, URLs, paths,
// other), which are highly repetitive UTF-8 text and compress best under
// zstd's larger window and entropy coding relative to S2/LZ4.
type ZstdCompressor struct {
	level Level
}

var _ Codec = ZstdCompressor{}

// NewZstdCompressor creates a Zstd codec tuned to level.
func NewZstdCompressor(level Level) ZstdCompressor {
	return ZstdCompressor{level: level}
}

// Compress compresses data using a pooled, level-tuned encoder.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	pool := zstdEncoderPools[c.level]
	encoder := pool.Get().(*zstd.Encoder)
	defer pool.Put(encoder)

	return encoder.EncodeAll(data, nil), nil
}

// Decompress decompresses Zstd-compressed data using a pooled decoder.
// Decoding doesn't need to know which level compressed the data.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}
