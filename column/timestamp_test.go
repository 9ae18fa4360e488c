package column

import "testing"

func TestTimestampColumnDeltaCoding(t *testing.T) {
	c := NewTimestampColumn()

	inputs := []string{
		"2024-01-15 10:00:00",
		"2024-01-15 10:00:01",
		"2024-01-15 10:00:03",
	}

	for _, in := range inputs {
		isDelta, _ := c.Add(in)
		if !isDelta {
			t.Fatalf("Add(%q): expected delta-coded, got raw fallback", in)
		}
	}

	if !c.HasBase() {
		t.Fatal("expected base to be set")
	}
	if got, want := c.BaseMs(), int64(1705312800000); got != want {
		t.Fatalf("BaseMs() = %d, want %d", got, want)
	}

	want := []int64{0, 1000, 2000}
	if len(c.Deltas) != len(want) {
		t.Fatalf("Deltas = %v, want %v", c.Deltas, want)
	}
	for i := range want {
		if c.Deltas[i] != want[i] {
			t.Fatalf("Deltas[%d] = %d, want %d", i, c.Deltas[i], want[i])
		}
	}

	c.PrepareForRead()
	for i, in := range inputs {
		if got := c.Get(i); got != in {
			t.Errorf("Get(%d) = %q, want %q", i, got, in)
		}
	}
}

func TestTimestampColumnZSuffixRoundTrip(t *testing.T) {
	c := NewTimestampColumn()

	in := "2024-01-15T10:00:00Z"
	isDelta, idx := c.Add(in)
	if !isDelta {
		t.Fatal("expected delta-coded")
	}

	c.PrepareForRead()
	if got := c.Get(idx); got != in {
		t.Errorf("Get(%d) = %q, want %q", idx, got, in)
	}
}

func TestTimestampColumnOffsetRoundTrip(t *testing.T) {
	c := NewTimestampColumn()

	in := "2024-01-15T10:00:00+02:00"
	isDelta, idx := c.Add(in)
	if !isDelta {
		t.Fatal("expected delta-coded")
	}

	c.PrepareForRead()
	if got := c.Get(idx); got != in {
		t.Errorf("Get(%d) = %q, want %q", idx, got, in)
	}
}

func TestTimestampColumnUnparsableFallsBackToRaw(t *testing.T) {
	c := NewTimestampColumn()

	isDelta, idx := c.Add("not-a-timestamp")
	if isDelta {
		t.Fatal("expected raw fallback")
	}
	if got := c.GetRaw(idx); got != "not-a-timestamp" {
		t.Errorf("GetRaw(%d) = %q, want %q", idx, got, "not-a-timestamp")
	}
}

func TestTimestampColumnFractionalSeconds(t *testing.T) {
	c := NewTimestampColumn()

	in := "2024-01-15 10:00:00.250"
	_, idx := c.Add(in)
	c.PrepareForRead()

	if got := c.Get(idx); got != in {
		t.Errorf("Get(%d) = %q, want %q", idx, got, in)
	}
}

func TestParseQueryTimestamp(t *testing.T) {
	ms, ok := ParseQueryTimestamp("2024-01-15")
	if !ok {
		t.Fatal("expected bare date to parse")
	}

	ms2, ok := ParseQueryTimestamp("2024-01-15 00:00:00")
	if !ok {
		t.Fatal("expected full timestamp to parse")
	}

	if ms != ms2 {
		t.Errorf("bare date ms %d != full timestamp ms %d", ms, ms2)
	}
}
