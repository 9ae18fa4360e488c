// Package container implements component C5, the v3 on-disk layout: a fixed
// magic/version prefix, a fixed 32-byte header, a per-column directory, and
// appended independently-compressed column blobs (spec.md §6.1).
package container

import (
	"encoding/binary"
	"fmt"

	"github.com/ext-sakamoro/alicetxt/column"
	"github.com/ext-sakamoro/alicetxt/compress"
	"github.com/ext-sakamoro/alicetxt/errs"
)

// Magic is the fixed 8-byte file signature.
const Magic = "ALICETXT"

const (
	VersionMajor = 3
	VersionMinor = 0
)

const (
	prefixSize   = 10 // magic + version_major + version_minor
	headerSize   = 32
	dirEntrySize = 21
	// headerEnd is the absolute offset where the column directory begins.
	headerEnd = prefixSize + headerSize
)

// Header is the fixed 32-byte record following the magic/version prefix
// (spec.md §6.1).
type Header struct {
	OriginalLength   uint64
	CompressionLevel compress.Level
	ColumnCount      uint16
	RowCount         uint64
}

func (h Header) encode() []byte {
	b := make([]byte, headerSize)
	binary.LittleEndian.PutUint64(b[0:8], h.OriginalLength)
	b[8] = byte(h.CompressionLevel)
	binary.LittleEndian.PutUint16(b[9:11], h.ColumnCount)
	binary.LittleEndian.PutUint64(b[11:19], h.RowCount)
	// b[19:32] stays zero: 13 reserved bytes.

	return b
}

func decodeHeader(b []byte) (Header, error) {
	if len(b) < headerSize {
		return Header{}, errs.ErrTruncated
	}

	return Header{
		OriginalLength:   binary.LittleEndian.Uint64(b[0:8]),
		CompressionLevel: compress.Level(b[8]),
		ColumnCount:      binary.LittleEndian.Uint16(b[9:11]),
		RowCount:         binary.LittleEndian.Uint64(b[11:19]),
	}, nil
}

// DirEntry locates one column's compressed blob within the container
// (spec.md §6.1, 21 bytes on the wire).
type DirEntry struct {
	Tag              column.Tag
	Offset           uint64
	CompressedSize   uint32
	UncompressedSize uint32
	RowCount         uint32
}

func (e DirEntry) encode() []byte {
	b := make([]byte, dirEntrySize)
	b[0] = byte(e.Tag)
	binary.LittleEndian.PutUint64(b[1:9], e.Offset)
	binary.LittleEndian.PutUint32(b[9:13], e.CompressedSize)
	binary.LittleEndian.PutUint32(b[13:17], e.UncompressedSize)
	binary.LittleEndian.PutUint32(b[17:21], e.RowCount)

	return b
}

func decodeDirEntry(b []byte) (DirEntry, error) {
	if len(b) < dirEntrySize {
		return DirEntry{}, errs.ErrTruncated
	}

	return DirEntry{
		Tag:              column.Tag(b[0]),
		Offset:           binary.LittleEndian.Uint64(b[1:9]),
		CompressedSize:   binary.LittleEndian.Uint32(b[9:13]),
		UncompressedSize: binary.LittleEndian.Uint32(b[13:17]),
		RowCount:         binary.LittleEndian.Uint32(b[17:21]),
	}, nil
}

func validateMagicAndVersion(prefix []byte) error {
	if len(prefix) < prefixSize {
		return errs.ErrTruncated
	}
	if string(prefix[0:8]) != Magic {
		return errs.ErrInvalidMagic
	}
	if prefix[8] != VersionMajor {
		return fmt.Errorf("%w: major %d", errs.ErrUnsupportedVersion, prefix[8])
	}

	return nil
}
