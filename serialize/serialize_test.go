package serialize

import (
	"testing"

	"github.com/ext-sakamoro/alicetxt/column"
	"github.com/ext-sakamoro/alicetxt/columnar"
	"github.com/ext-sakamoro/alicetxt/pattern"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	ext := pattern.New()
	text := "2024-01-15 10:30:45 INFO User 192.168.1.100 logged in, id=550e8400-e29b-41d4-a716-446655440000"

	p := columnar.New()
	p.Encode(text, ext)

	raw, rowCounts, err := EncodeColumns(p)
	if err != nil {
		t.Fatalf("EncodeColumns: %v", err)
	}
	if rowCounts[column.Skeleton] == 0 {
		t.Errorf("expected non-zero skeleton row count")
	}

	out := columnar.New()
	for tag, b := range raw {
		if err := DecodeInto(out, tag, b); err != nil {
			t.Fatalf("DecodeInto(%d): %v", tag, err)
		}
	}

	if got := out.Restore(); got != text {
		t.Fatalf("round-trip Restore() = %q, want %q", got, text)
	}
}

func TestDecodeIntoUnknownTag(t *testing.T) {
	p := columnar.New()
	if err := DecodeInto(p, column.Tag(255), []byte{0, 0, 0, 0}); err == nil {
		t.Fatal("expected error for unknown tag")
	}
}

func TestDecodeIntoTruncated(t *testing.T) {
	p := columnar.New()
	if err := DecodeInto(p, column.IPv4Tag, []byte{1, 0}); err == nil {
		t.Fatal("expected truncation error")
	}
}

func TestEncodeDecodeStrings(t *testing.T) {
	vs := []string{"a", "bb", "", "ccc"}
	raw := encodeStrings(vs)

	got, err := decodeStrings(raw)
	if err != nil {
		t.Fatalf("decodeStrings: %v", err)
	}
	if len(got) != len(vs) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(vs))
	}
	for i := range vs {
		if got[i] != vs[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], vs[i])
		}
	}
}

func TestEncodeDecodeU64Pairs(t *testing.T) {
	hi := []uint64{1, 2, 3}
	lo := []uint64{10, 20, 30}
	raw := encodeU64Pairs(hi, lo)

	gotHi, gotLo, err := decodeU64Pairs(raw)
	if err != nil {
		t.Fatalf("decodeU64Pairs: %v", err)
	}
	for i := range hi {
		if gotHi[i] != hi[i] || gotLo[i] != lo[i] {
			t.Errorf("pair[%d] = (%d,%d), want (%d,%d)", i, gotHi[i], gotLo[i], hi[i], lo[i])
		}
	}
}
