package column

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// UUIDColumn stores UUIDs with dashes stripped, as a 128-bit value split
// into two uint64 halves (spec.md §3/§4.2).
type UUIDColumn struct {
	Hi []uint64
	Lo []uint64
}

// NewUUIDColumn creates an empty UUID column.
func NewUUIDColumn() *UUIDColumn {
	return &UUIDColumn{}
}

// Add parses text as a dashed or undashed 32-hex-digit UUID.
func (c *UUIDColumn) Add(text string) (idx int, ok bool) {
	hi, lo, ok := parseUUID(text)
	if !ok {
		return 0, false
	}

	c.Hi = append(c.Hi, hi)
	c.Lo = append(c.Lo, lo)

	return len(c.Hi) - 1, true
}

// Get re-emits the canonical lowercase, dashed form for cell idx.
func (c *UUIDColumn) Get(idx int) string {
	return formatUUID(c.Hi[idx], c.Lo[idx])
}

// Len returns the number of cells.
func (c *UUIDColumn) Len() int { return len(c.Hi) }

func parseUUID(text string) (hi, lo uint64, ok bool) {
	stripped := strings.ReplaceAll(text, "-", "")
	if len(stripped) != 32 {
		return 0, 0, false
	}

	raw, err := hex.DecodeString(stripped)
	if err != nil {
		return 0, 0, false
	}

	return binary.BigEndian.Uint64(raw[0:8]), binary.BigEndian.Uint64(raw[8:16]), true
}

func formatUUID(hi, lo uint64) string {
	var raw [16]byte
	binary.BigEndian.PutUint64(raw[0:8], hi)
	binary.BigEndian.PutUint64(raw[8:16], lo)

	enc := hex.EncodeToString(raw[:])

	return enc[0:8] + "-" + enc[8:12] + "-" + enc[12:16] + "-" + enc[16:20] + "-" + enc[20:32]
}

// ParseUUIDQuery parses a user-supplied UUID literal for query filtering.
func ParseUUIDQuery(text string) (hi, lo uint64, err error) {
	hi, lo, ok := parseUUID(text)
	if !ok {
		return 0, 0, fmt.Errorf("column: invalid UUID literal %q", text)
	}

	return hi, lo, nil
}

// FormatUUIDValue re-emits hi/lo in canonical lowercase, dashed form;
// exported for the query engine's selective-column decode.
func FormatUUIDValue(hi, lo uint64) string { return formatUUID(hi, lo) }
