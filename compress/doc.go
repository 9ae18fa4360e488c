// Package compress implements component C7, the entropy-coder back-end
// adapter.
//
// It exposes one boundary — Codec.Compress/Decompress — behind which the
// container format is indifferent to the chosen algorithm. Four backends
// are available: Zstd (default, best ratio on text-heavy columns), S2 (fast,
// good ratio), LZ4 (fastest decompression), and None (passthrough, for
// columns that are already incompressible or for debugging).
//
// Compression level is abstracted to three values (Fast, Balanced, Best);
// only Zstd currently varies its internal parameters per level, since S2
// and LZ4 don't expose a comparable knob in their Go APIs — both still
// honor the Level argument in NewCodec for a uniform call site, they just
// don't tune anything on it.
package compress
