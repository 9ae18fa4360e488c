package serialize

import (
	"testing"

	"github.com/ext-sakamoro/alicetxt/column"
)

func TestDecodeColumnStringsIPv4(t *testing.T) {
	raw := encodeU32s([]uint32{0xC0A80001, 0xC0A80002})

	got, err := DecodeColumnStrings(column.IPv4Tag, raw)
	if err != nil {
		t.Fatalf("DecodeColumnStrings: %v", err)
	}

	want := []string{"192.168.0.1", "192.168.0.2"}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("got[%d] = %q, want %q", i, got[i], w)
		}
	}
}

func TestDecodeColumnStringsLogLevels(t *testing.T) {
	raw := encodeU8s([]uint8{uint8(column.LevelError), uint8(column.LevelInfo)})

	got, err := DecodeColumnStrings(column.LogLevels, raw)
	if err != nil {
		t.Fatalf("DecodeColumnStrings: %v", err)
	}
	if got[0] != "ERROR" || got[1] != "INFO" {
		t.Errorf("got = %v", got)
	}
}

func TestDecodeColumnStringsUnknownTag(t *testing.T) {
	if _, err := DecodeColumnStrings(column.Tag(255), []byte{0, 0, 0, 0}); err == nil {
		t.Fatal("expected error for unknown tag")
	}
}

func TestDecodeTimestampMs(t *testing.T) {
	tc := column.NewTimestampColumn()
	tc.Add("2024-01-15T10:00:00Z")
	tc.Add("2024-01-15T10:00:01Z")
	raw := encodeTimestamps(tc)

	ms, err := DecodeTimestampMs(raw)
	if err != nil {
		t.Fatalf("DecodeTimestampMs: %v", err)
	}
	if len(ms) != 2 {
		t.Fatalf("len(ms) = %d, want 2", len(ms))
	}
	if ms[1]-ms[0] != 1000 {
		t.Errorf("delta = %d, want 1000", ms[1]-ms[0])
	}
}
