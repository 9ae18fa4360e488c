package column

import (
	"fmt"
	"time"
)

// timeFormats are tried in order, matching spec.md §4.2: HH:MM:SS[.fff],
// HH:MM:SS, HH:MM.
var timeFormats = []string{
	"15:04:05.000",
	"15:04:05",
	"15:04",
}

// TimeColumn stores times as milliseconds since midnight, in
// [0, 86_400_000) (spec.md §3).
type TimeColumn struct {
	Values []uint32
}

// NewTimeColumn creates an empty time column.
func NewTimeColumn() *TimeColumn {
	return &TimeColumn{}
}

// Add parses text against the fixed time-format catalog.
func (c *TimeColumn) Add(text string) (idx int, ok bool) {
	ms, ok := parseTimeToMs(text)
	if !ok {
		return 0, false
	}

	c.Values = append(c.Values, ms)

	return len(c.Values) - 1, true
}

// Get re-emits HH:MM:SS, or HH:MM:SS.fff when the stored value has a
// sub-second component, for cell idx.
func (c *TimeColumn) Get(idx int) string {
	return formatTimeFromMs(c.Values[idx])
}

// Len returns the number of cells.
func (c *TimeColumn) Len() int { return len(c.Values) }

func parseTimeToMs(text string) (uint32, bool) {
	for _, layout := range timeFormats {
		t, err := time.Parse(layout, text)
		if err == nil {
			ms := (t.Hour()*3600+t.Minute()*60+t.Second())*1000 + t.Nanosecond()/1_000_000
			if ms < 0 || ms >= 86_400_000 {
				return 0, false
			}

			return uint32(ms), true
		}
	}

	return 0, false
}

func formatTimeFromMs(ms uint32) string {
	totalSec := ms / 1000
	sub := ms % 1000
	h := totalSec / 3600
	m := (totalSec / 60) % 60
	s := totalSec % 60

	if sub == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}

	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, sub)
}

// ParseTimeQuery parses a user-supplied time literal for query filtering.
func ParseTimeQuery(text string) (uint32, error) {
	ms, ok := parseTimeToMs(text)
	if !ok {
		return 0, fmt.Errorf("column: invalid time literal %q", text)
	}

	return ms, nil
}

// FormatTimeMsValue re-emits ms in canonical HH:MM:SS[.fff] form; exported
// for the query engine's selective-column decode.
func FormatTimeMsValue(ms uint32) string { return formatTimeFromMs(ms) }
