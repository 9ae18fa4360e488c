// Package alicetxt is the root facade: one-call Compress/Decompress over
// the v3 container format (package container), for callers that don't need
// the query engine's selective access.
package alicetxt

import (
	"bytes"

	"github.com/ext-sakamoro/alicetxt/compress"
	"github.com/ext-sakamoro/alicetxt/container"
	"github.com/ext-sakamoro/alicetxt/internal/options"
)

// Level re-exports compress.Level so callers need only import this package
// for the common case.
type Level = compress.Level

const (
	Fast     = compress.Fast
	Balanced = compress.Balanced
	Best     = compress.Best
)

// Compress encodes text into a complete v3 container at the given level.
func Compress(text string, level Level) ([]byte, error) {
	w, err := container.NewWriter(container.WithLevel(level))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := w.Write(&buf, text); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress restores the original text from a v3 container held entirely
// in memory.
func Decompress(data []byte) (string, error) {
	r, err := container.Open(container.NewBufferSource(data))
	if err != nil {
		return "", err
	}

	return r.Decode()
}

// DecompressFile restores the original text from a v3 container on disk.
func DecompressFile(path string) (string, error) {
	src, err := container.OpenFile(path)
	if err != nil {
		return "", err
	}
	defer src.Close()

	r, err := container.Open(src)
	if err != nil {
		return "", err
	}

	return r.Decode()
}

// Open opens a v3 container for querying without decoding it (see package
// query for the typed query engine built on top of this).
func Open(src container.Source, opts ...options.Option[*container.Reader]) (*container.Reader, error) {
	return container.Open(src, opts...)
}
