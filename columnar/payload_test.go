package columnar

import (
	"testing"

	"github.com/ext-sakamoro/alicetxt/column"
	"github.com/ext-sakamoro/alicetxt/pattern"
)

func TestPayloadRoundTripLogLine(t *testing.T) {
	ext := pattern.New()
	text := "2024-01-15 10:30:45 INFO User logged in from 192.168.1.100"

	p := New()
	p.Encode(text, ext)

	if got := p.Restore(); got != text {
		t.Fatalf("Restore() = %q, want %q", got, text)
	}

	if p.IPv4.Len() != 1 {
		t.Fatalf("IPv4 column has %d cells, want 1", p.IPv4.Len())
	}
	if got := p.IPv4.Get(0); got != "192.168.1.100" {
		t.Errorf("IPv4.Get(0) = %q, want %q", got, "192.168.1.100")
	}

	if p.LogLevels.Len() != 1 {
		t.Fatalf("LogLevels column has %d cells, want 1", p.LogLevels.Len())
	}
	if p.LogLevels.Values[0] != uint8(column.LevelInfo) {
		t.Errorf("LogLevels.Values[0] = %d, want %d", p.LogLevels.Values[0], column.LevelInfo)
	}

	if p.Timestamps.Len() != 1 {
		t.Fatalf("Timestamps column has %d cells, want 1", p.Timestamps.Len())
	}
}

func TestPayloadRoundTripNoPatterns(t *testing.T) {
	ext := pattern.New()
	text := "just plain text with no recognizable structure"

	p := New()
	p.Encode(text, ext)

	if got := p.Restore(); got != text {
		t.Fatalf("Restore() = %q, want %q", got, text)
	}
	if len(p.PlaceholderMap) != 0 {
		t.Errorf("expected empty placeholder map, got %d entries", len(p.PlaceholderMap))
	}
}

func TestPayloadRoundTripEmpty(t *testing.T) {
	ext := pattern.New()

	p := New()
	p.Encode("", ext)

	if got := p.Restore(); got != "" {
		t.Fatalf("Restore() = %q, want empty", got)
	}
	if p.RowCount != 0 {
		t.Errorf("RowCount = %d, want 0", p.RowCount)
	}
}

func TestPayloadRoundTripMultiLine(t *testing.T) {
	ext := pattern.New()
	text := "2024-01-15 10:00:00 start\n2024-01-15 10:00:01 middle\n2024-01-15 10:00:03 end"

	p := New()
	p.Encode(text, ext)

	if got := p.Restore(); got != text {
		t.Fatalf("Restore() = %q, want %q", got, text)
	}
	if p.RowCount != 3 {
		t.Errorf("RowCount = %d, want 3", p.RowCount)
	}

	want := []int64{0, 1000, 2000}
	for i, w := range want {
		if p.Timestamps.Deltas[i] != w {
			t.Errorf("Deltas[%d] = %d, want %d", i, p.Timestamps.Deltas[i], w)
		}
	}
}

func TestPayloadRoundTripNumberCanonicalForm(t *testing.T) {
	ext := pattern.New()
	text := "Count: 42 Value: 3.14"

	p := New()
	p.Encode(text, ext)

	if got := p.Restore(); got != text {
		t.Fatalf("Restore() = %q, want %q", got, text)
	}
}
