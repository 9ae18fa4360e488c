package column

import (
	"encoding/binary"
	"fmt"
	"net"
)

// IPv4Column stores dotted-quad addresses as network-order uint32 integers
// (spec.md §3).
type IPv4Column struct {
	Values []uint32
}

// NewIPv4Column creates an empty IPv4 column.
func NewIPv4Column() *IPv4Column {
	return &IPv4Column{}
}

// Add parses text as a dotted-quad IPv4 address. ok is false if text isn't
// a valid IPv4 literal, in which case the caller falls back to a raw string
// column per spec.md §4.2's invariant.
func (c *IPv4Column) Add(text string) (idx int, ok bool) {
	v, ok := parseIPv4(text)
	if !ok {
		return 0, false
	}

	c.Values = append(c.Values, v)

	return len(c.Values) - 1, true
}

// Get re-emits the canonical dotted-quad form for cell idx.
func (c *IPv4Column) Get(idx int) string {
	return formatIPv4(c.Values[idx])
}

// Len returns the number of cells.
func (c *IPv4Column) Len() int { return len(c.Values) }

func parseIPv4(text string) (uint32, bool) {
	ip := net.ParseIP(text)
	if ip == nil {
		return 0, false
	}

	v4 := ip.To4()
	if v4 == nil {
		return 0, false
	}

	return binary.BigEndian.Uint32(v4), true
}

func formatIPv4(v uint32) string {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)

	return net.IP(b[:]).String()
}

// IPv6Column stores addresses as a 128-bit network-order value held in two
// uint64 halves (Go has no native 128-bit integer).
type IPv6Column struct {
	Hi []uint64
	Lo []uint64
}

// NewIPv6Column creates an empty IPv6 column.
func NewIPv6Column() *IPv6Column {
	return &IPv6Column{}
}

// Add parses text as an IPv6 address.
func (c *IPv6Column) Add(text string) (idx int, ok bool) {
	hi, lo, ok := parseIPv6(text)
	if !ok {
		return 0, false
	}

	c.Hi = append(c.Hi, hi)
	c.Lo = append(c.Lo, lo)

	return len(c.Hi) - 1, true
}

// Get re-emits the canonical (net.IP.String) form for cell idx.
func (c *IPv6Column) Get(idx int) string {
	return formatIPv6(c.Hi[idx], c.Lo[idx])
}

// Len returns the number of cells.
func (c *IPv6Column) Len() int { return len(c.Hi) }

func parseIPv6(text string) (hi, lo uint64, ok bool) {
	ip := net.ParseIP(text)
	if ip == nil {
		return 0, 0, false
	}

	v6 := ip.To16()
	if v6 == nil || ip.To4() != nil {
		return 0, 0, false
	}

	return binary.BigEndian.Uint64(v6[0:8]), binary.BigEndian.Uint64(v6[8:16]), true
}

func formatIPv6(hi, lo uint64) string {
	var b [16]byte
	binary.BigEndian.PutUint64(b[0:8], hi)
	binary.BigEndian.PutUint64(b[8:16], lo)

	return net.IP(b[:]).String()
}

// IPv6Value packs hi/lo into the 128-bit big-endian byte representation
// used by the query engine's typed comparisons and by serialization.
func IPv6Value(hi, lo uint64) [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[0:8], hi)
	binary.BigEndian.PutUint64(b[8:16], lo)

	return b
}

// ParseIPv6Query parses a user-supplied IPv6 literal for query filtering,
// returning an error rather than silently failing (spec.md §4.6 requires
// query-time parse failures to surface).
func ParseIPv6Query(text string) (hi, lo uint64, err error) {
	hi, lo, ok := parseIPv6(text)
	if !ok {
		return 0, 0, fmt.Errorf("column: invalid IPv6 literal %q", text)
	}

	return hi, lo, nil
}

// ParseIPv4Query parses a user-supplied IPv4 literal for query filtering.
func ParseIPv4Query(text string) (uint32, error) {
	v, ok := parseIPv4(text)
	if !ok {
		return 0, fmt.Errorf("column: invalid IPv4 literal %q", text)
	}

	return v, nil
}

// FormatIPv4Value re-emits v in dotted-quad form; exported for the query
// engine's selective-column decode, which never builds a full IPv4Column.
func FormatIPv4Value(v uint32) string { return formatIPv4(v) }

// FormatIPv6Value re-emits hi/lo in canonical IPv6 form.
func FormatIPv6Value(hi, lo uint64) string { return formatIPv6(hi, lo) }
