package container

import (
	"github.com/ext-sakamoro/alicetxt/columnar"
	"github.com/ext-sakamoro/alicetxt/serialize"
)

// Decode fetches and decompresses every column in the directory, reconstructs
// a columnar.Payload, and restores the original text (spec.md §4.5's
// decompression path: C5 → C4 → C2/C3).
func (r *Reader) Decode() (string, error) {
	payload := columnar.New()

	for _, tag := range r.sortedTags() {
		raw, err := r.FetchColumnRaw(tag)
		if err != nil {
			return "", err
		}
		if err := serialize.DecodeInto(payload, tag, raw); err != nil {
			return "", err
		}
	}

	return payload.Restore(), nil
}
