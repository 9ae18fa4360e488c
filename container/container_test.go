package container

import (
	"bytes"
	"testing"

	"github.com/ext-sakamoro/alicetxt/column"
	"github.com/ext-sakamoro/alicetxt/compress"
)

func writeSample(t *testing.T, text string, level compress.Level) []byte {
	t.Helper()

	w, err := NewWriter(WithLevel(level))
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}

	var buf bytes.Buffer
	if err := w.Write(&buf, text); err != nil {
		t.Fatalf("Write: %v", err)
	}

	return buf.Bytes()
}

func TestWriteOpenDecodeRoundTrip(t *testing.T) {
	text := "2024-01-15 10:30:45 INFO User logged in from 192.168.1.100\n2024-01-15 10:30:46 WARN retrying"

	data := writeSample(t, text, compress.Balanced)

	r, err := Open(NewBufferSource(data))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if r.Header().OriginalLength != uint64(len(text)) {
		t.Errorf("OriginalLength = %d, want %d", r.Header().OriginalLength, len(text))
	}
	if !r.HasColumn(column.Skeleton) {
		t.Error("expected Skeleton column in directory")
	}

	got, err := r.Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != text {
		t.Fatalf("Decode() = %q, want %q", got, text)
	}
}

func TestOpenMetadataOnlyDoesNotDecodeColumns(t *testing.T) {
	text := "plain text, no patterns here at all"
	data := writeSample(t, text, compress.Fast)

	r, err := Open(NewBufferSource(data))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if int(r.Header().ColumnCount) != len(r.Columns()) {
		t.Errorf("ColumnCount = %d, len(Columns()) = %d", r.Header().ColumnCount, len(r.Columns()))
	}
}

func TestOpenRejectsBadMagic(t *testing.T) {
	data := writeSample(t, "hello", compress.Balanced)
	data[0] = 'X'

	if _, err := Open(NewBufferSource(data)); err == nil {
		t.Fatal("expected error for corrupted magic")
	}
}

func TestOpenRejectsTruncatedDirectory(t *testing.T) {
	data := writeSample(t, "2024-01-15 10:30:45 INFO hello 192.168.1.1", compress.Balanced)

	truncated := data[:headerEnd+5]
	if _, err := Open(NewBufferSource(truncated)); err == nil {
		t.Fatal("expected error for truncated directory")
	}
}

func TestFetchColumnRawUnknownTag(t *testing.T) {
	data := writeSample(t, "no patterns", compress.Balanced)

	r, err := Open(NewBufferSource(data))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if _, err := r.FetchColumnRaw(column.IPv4Tag); err == nil {
		t.Fatal("expected error fetching an absent column")
	}
}

func TestAllLevelsRoundTrip(t *testing.T) {
	text := "2024-01-15T10:00:00Z ERROR db timeout for user@example.com at /var/log/app.log"

	for _, lvl := range []compress.Level{compress.Fast, compress.Balanced, compress.Best} {
		data := writeSample(t, text, lvl)

		r, err := Open(NewBufferSource(data))
		if err != nil {
			t.Fatalf("level %s: Open: %v", lvl, err)
		}

		got, err := r.Decode()
		if err != nil {
			t.Fatalf("level %s: Decode: %v", lvl, err)
		}
		if got != text {
			t.Fatalf("level %s: Decode() = %q, want %q", lvl, got, text)
		}
	}
}
