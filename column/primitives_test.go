package column

import "testing"

func TestIPv4RoundTrip(t *testing.T) {
	c := NewIPv4Column()
	idx, ok := c.Add("192.168.1.100")
	if !ok {
		t.Fatal("expected valid IPv4 literal to parse")
	}
	if got := c.Get(idx); got != "192.168.1.100" {
		t.Errorf("Get(%d) = %q, want %q", idx, got, "192.168.1.100")
	}

	if _, ok := c.Add("not.an.ip.address"); ok {
		t.Error("expected invalid literal to fail")
	}
	if _, ok := c.Add("2001:db8::1"); ok {
		t.Error("expected an IPv6 literal to be rejected by the IPv4 column")
	}
}

func TestIPv6RoundTrip(t *testing.T) {
	c := NewIPv6Column()
	idx, ok := c.Add("2001:db8::1")
	if !ok {
		t.Fatal("expected valid IPv6 literal to parse")
	}
	if got := c.Get(idx); got != "2001:db8::1" {
		t.Errorf("Get(%d) = %q, want %q", idx, got, "2001:db8::1")
	}
}

func TestUUIDRoundTrip(t *testing.T) {
	c := NewUUIDColumn()
	idx, ok := c.Add("550e8400-e29b-41d4-a716-446655440000")
	if !ok {
		t.Fatal("expected valid dashed UUID to parse")
	}
	if got := c.Get(idx); got != "550e8400-e29b-41d4-a716-446655440000" {
		t.Errorf("Get(%d) = %q, want dashed canonical form", idx, got)
	}

	idx2, ok := c.Add("550e8400e29b41d4a716446655440000")
	if !ok {
		t.Fatal("expected undashed UUID to parse")
	}
	if got := c.Get(idx2); got != "550e8400-e29b-41d4-a716-446655440000" {
		t.Errorf("undashed input re-emits as %q, want dashed form", got)
	}
}

func TestDateRoundTrip(t *testing.T) {
	c := NewDateColumn()
	idx, ok := c.Add("2024-01-15")
	if !ok {
		t.Fatal("expected ISO date to parse")
	}
	if got := c.Get(idx); got != "2024-01-15" {
		t.Errorf("Get(%d) = %q, want %q", idx, got, "2024-01-15")
	}

	idx2, ok := c.Add("15/01/2024")
	if !ok {
		t.Fatal("expected DD/MM/YYYY date to parse")
	}
	if got := c.Get(idx2); got != "2024-01-15" {
		t.Errorf("Get(%d) = %q, want canonical %q", idx2, got, "2024-01-15")
	}
}

func TestTimeRoundTrip(t *testing.T) {
	c := NewTimeColumn()
	idx, ok := c.Add("13:45:30")
	if !ok {
		t.Fatal("expected HH:MM:SS to parse")
	}
	if got := c.Get(idx); got != "13:45:30" {
		t.Errorf("Get(%d) = %q, want %q", idx, got, "13:45:30")
	}

	idx2, ok := c.Add("13:45:30.500")
	if !ok {
		t.Fatal("expected fractional time to parse")
	}
	if got := c.Get(idx2); got != "13:45:30.500" {
		t.Errorf("Get(%d) = %q, want %q", idx2, got, "13:45:30.500")
	}
}

func TestNumberCanonicalForm(t *testing.T) {
	c := NewNumberColumn()

	idx, ok := c.Add("42")
	if !ok {
		t.Fatal("expected integer literal to parse")
	}
	if got := c.Get(idx); got != "42" {
		t.Errorf("Get(%d) = %q, want %q", idx, got, "42")
	}

	idx2, ok := c.Add("3.14")
	if !ok {
		t.Fatal("expected float literal to parse")
	}
	if got := c.Get(idx2); got != "3.14" {
		t.Errorf("Get(%d) = %q, want %q", idx2, got, "3.14")
	}
}

func TestLogLevelUnknownNormalizes(t *testing.T) {
	c := NewLogLevelColumn()
	idx := c.Add("GARBAGE")
	if got := c.Get(idx); got != "UNKNOWN" {
		t.Errorf("Get(%d) = %q, want UNKNOWN", idx, got)
	}

	idx2 := c.Add("warning")
	if got := c.Get(idx2); got != "WARN" {
		t.Errorf("Get(%d) = %q, want WARN", idx2, got)
	}
}
