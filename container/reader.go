package container

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/ext-sakamoro/alicetxt/column"
	"github.com/ext-sakamoro/alicetxt/compress"
	"github.com/ext-sakamoro/alicetxt/errs"
	"github.com/ext-sakamoro/alicetxt/internal/options"
)

// Source is a read-only byte view over a v3 container. Both a file and an
// in-memory buffer satisfy it identically (spec.md §9), so the query engine
// never cares which one it was given.
type Source interface {
	io.ReaderAt
	Size() int64
}

// FileSource backs a Source with an *os.File, read via pread-style
// ReadAt calls so concurrent column fetches need no shared seek cursor
// (spec.md §5: readers share the backing view without locks).
type FileSource struct {
	f    *os.File
	size int64
}

// OpenFile opens path as a FileSource.
func OpenFile(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()

		return nil, err
	}

	return &FileSource{f: f, size: info.Size()}, nil
}

func (s *FileSource) ReadAt(p []byte, off int64) (int, error) { return s.f.ReadAt(p, off) }
func (s *FileSource) Size() int64                             { return s.size }
func (s *FileSource) Close() error                             { return s.f.Close() }

// BufferSource backs a Source with an in-memory byte slice.
type BufferSource struct {
	b []byte
}

// NewBufferSource wraps b as a Source. b is not copied; the caller must not
// mutate it while a Reader is open over it.
func NewBufferSource(b []byte) *BufferSource {
	return &BufferSource{b: b}
}

func (s *BufferSource) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= int64(len(s.b)) {
		if off == int64(len(s.b)) && len(p) == 0 {
			return 0, nil
		}

		return 0, io.EOF
	}

	n := copy(p, s.b[off:])
	if n < len(p) {
		return n, io.EOF
	}

	return n, nil
}

func (s *BufferSource) Size() int64 { return int64(len(s.b)) }

// Reader exposes metadata-only open plus lazy, selective column decode over
// a v3 container (spec.md §4.5/§4.6).
type Reader struct {
	src     Source
	header  Header
	dir     []DirEntry
	byTag   map[column.Tag]DirEntry
	backend compress.Backend
}

// WithReadBackend overrides the entropy-coder backend used to decompress
// column blobs. Must match the Backend the file was written with (see
// WithBackend's doc comment on Writer); default is compress.DefaultBackend.
func WithReadBackend(backend compress.Backend) options.Option[*Reader] {
	return options.NoError(func(r *Reader) { r.backend = backend })
}

// Open validates the magic and major version, then reads the header and
// directory. It performs no column decode: exactly one metadata read
// (spec.md §4.6, §8's "Columns-only open" scenario).
func Open(src Source, opts ...options.Option[*Reader]) (*Reader, error) {
	r := &Reader{src: src, backend: compress.DefaultBackend}
	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}

	prefix := make([]byte, prefixSize)
	if err := readFull(src, prefix, 0); err != nil {
		return nil, err
	}
	if err := validateMagicAndVersion(prefix); err != nil {
		return nil, err
	}

	hdrBytes := make([]byte, headerSize)
	if err := readFull(src, hdrBytes, prefixSize); err != nil {
		return nil, err
	}
	hdr, err := decodeHeader(hdrBytes)
	if err != nil {
		return nil, err
	}
	r.header = hdr

	dirBytes := make([]byte, int(hdr.ColumnCount)*dirEntrySize)
	if err := readFull(src, dirBytes, headerEnd); err != nil {
		return nil, err
	}

	r.dir = make([]DirEntry, hdr.ColumnCount)
	r.byTag = make(map[column.Tag]DirEntry, hdr.ColumnCount)
	for i := 0; i < int(hdr.ColumnCount); i++ {
		e, err := decodeDirEntry(dirBytes[i*dirEntrySize : (i+1)*dirEntrySize])
		if err != nil {
			return nil, err
		}
		if _, dup := r.byTag[e.Tag]; dup {
			return nil, fmt.Errorf("%w: tag %d", errs.ErrDuplicateColumn, e.Tag)
		}
		if int64(e.Offset)+int64(e.CompressedSize) > src.Size() {
			return nil, errs.ErrTruncated
		}

		r.dir[i] = e
		r.byTag[e.Tag] = e
	}

	return r, nil
}

func readFull(src Source, buf []byte, off int) error {
	if len(buf) == 0 {
		return nil
	}
	if int64(off)+int64(len(buf)) > src.Size() {
		return errs.ErrTruncated
	}

	n, err := src.ReadAt(buf, int64(off))
	if n == len(buf) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrTruncated, err)
	}

	return errs.ErrTruncated
}

// Header returns the container's fixed header.
func (r *Reader) Header() Header { return r.header }

// Columns returns the directory's column tags, in directory order.
func (r *Reader) Columns() []column.Tag {
	tags := make([]column.Tag, len(r.dir))
	for i, e := range r.dir {
		tags[i] = e.Tag
	}

	return tags
}

// HasColumn reports whether tag appears in the directory.
func (r *Reader) HasColumn(tag column.Tag) bool {
	_, ok := r.byTag[tag]

	return ok
}

// RowCount returns the directory-advertised cell count for tag.
func (r *Reader) RowCount(tag column.Tag) (uint32, bool) {
	e, ok := r.byTag[tag]
	if !ok {
		return 0, false
	}

	return e.RowCount, true
}

// FetchColumnRaw seeks to tag's blob, reads exactly its compressed_size
// bytes, and decompresses it, returning the raw (uncompressed) column
// bytes package serialize decodes. Safe to call concurrently for distinct
// tags: each call only touches its own byte range of the read-only src
// (spec.md §5).
func (r *Reader) FetchColumnRaw(tag column.Tag) ([]byte, error) {
	e, ok := r.byTag[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownColumn, tag)
	}

	compressed := make([]byte, e.CompressedSize)
	if err := readFull(r.src, compressed, int(e.Offset)); err != nil {
		return nil, err
	}

	codec, err := compress.NewCodec(r.backend, r.header.CompressionLevel)
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("%w: tag %s: %w", errs.ErrBackEnd, tag, err)
	}

	return raw, nil
}

// sortedTags returns the directory's tags in ascending numeric order,
// independent of on-disk ordering.
func (r *Reader) sortedTags() []column.Tag {
	tags := r.Columns()
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })

	return tags
}
