package container

import (
	"io"
	"sort"
	"unicode/utf8"

	"github.com/ext-sakamoro/alicetxt/column"
	"github.com/ext-sakamoro/alicetxt/columnar"
	"github.com/ext-sakamoro/alicetxt/compress"
	"github.com/ext-sakamoro/alicetxt/errs"
	"github.com/ext-sakamoro/alicetxt/internal/options"
	"github.com/ext-sakamoro/alicetxt/pattern"
	"github.com/ext-sakamoro/alicetxt/serialize"
)

// Writer encodes text into a v3 container. A Writer is not safe for
// concurrent use by multiple goroutines (spec.md §5: single-writer).
type Writer struct {
	level   compress.Level
	backend compress.Backend
	ext     *pattern.Extractor
}

// WithLevel selects the compression level. Default is compress.Balanced.
func WithLevel(level compress.Level) options.Option[*Writer] {
	return options.NoError(func(w *Writer) { w.level = level })
}

// WithBackend selects a non-default entropy-coder backend. The CLI does not
// use it; every CLI command writes with compress.DefaultBackend. A file written
// with a non-default backend can only be read back by a Reader configured
// with the matching backend, since the v3 header persists only the Level,
// not the Backend (spec.md §9: "the container format must not leak
// back-end specifics").
func WithBackend(backend compress.Backend) options.Option[*Writer] {
	return options.NoError(func(w *Writer) { w.backend = backend })
}

// NewWriter creates a Writer with compress.Balanced and compress.DefaultBackend
// unless overridden by opts.
func NewWriter(opts ...options.Option[*Writer]) (*Writer, error) {
	w := &Writer{
		level:   compress.Balanced,
		backend: compress.DefaultBackend,
		ext:     pattern.New(),
	}

	if err := options.Apply(w, opts...); err != nil {
		return nil, err
	}

	return w, nil
}

// Write encodes text and writes a complete v3 container to out. Text that
// is not valid UTF-8 is rejected with errs.ErrInvalidUTF8 before anything
// is written.
func (w *Writer) Write(out io.Writer, text string) error {
	if !utf8.ValidString(text) {
		return errs.ErrInvalidUTF8
	}

	payload := columnar.New()
	payload.Encode(text, w.ext)

	raw, rowCounts, err := serialize.EncodeColumns(payload)
	if err != nil {
		return err
	}

	codec, err := compress.NewCodec(w.backend, w.level)
	if err != nil {
		return err
	}

	tags := make([]column.Tag, 0, len(raw))
	for tag := range raw {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })

	compressed := make(map[column.Tag][]byte, len(tags))
	for _, tag := range tags {
		blob, err := codec.Compress(raw[tag])
		if err != nil {
			return err
		}
		compressed[tag] = blob
	}

	dir := make([]DirEntry, len(tags))
	offset := uint64(headerEnd + len(tags)*dirEntrySize)
	for i, tag := range tags {
		blob := compressed[tag]
		dir[i] = DirEntry{
			Tag:              tag,
			Offset:           offset,
			CompressedSize:   uint32(len(blob)),
			UncompressedSize: uint32(len(raw[tag])),
			RowCount:         rowCounts[tag],
		}
		offset += uint64(len(blob))
	}

	hdr := Header{
		OriginalLength:   uint64(len(text)),
		CompressionLevel: w.level,
		ColumnCount:      uint16(len(tags)),
		RowCount:         payload.RowCount,
	}

	if _, err := out.Write([]byte(Magic)); err != nil {
		return err
	}
	if _, err := out.Write([]byte{VersionMajor, VersionMinor}); err != nil {
		return err
	}
	if _, err := out.Write(hdr.encode()); err != nil {
		return err
	}
	for _, e := range dir {
		if _, err := out.Write(e.encode()); err != nil {
			return err
		}
	}
	for _, tag := range tags {
		if _, err := out.Write(compressed[tag]); err != nil {
			return err
		}
	}

	return nil
}
