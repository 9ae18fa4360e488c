package column

import (
	"fmt"
	"time"
)

// dateFormats are tried in order, matching spec.md §4.2: YYYY-MM-DD,
// YYYY/MM/DD, DD-MM-YYYY, DD/MM/YYYY.
var dateFormats = []string{
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
}

// DateColumn stores dates as days since the Unix epoch (spec.md §3).
type DateColumn struct {
	Values []uint32
}

// NewDateColumn creates an empty date column.
func NewDateColumn() *DateColumn {
	return &DateColumn{}
}

// Add parses text against the fixed date-format catalog.
func (c *DateColumn) Add(text string) (idx int, ok bool) {
	days, ok := parseDateToDays(text)
	if !ok {
		return 0, false
	}

	c.Values = append(c.Values, days)

	return len(c.Values) - 1, true
}

// Get re-emits the canonical YYYY-MM-DD form for cell idx.
func (c *DateColumn) Get(idx int) string {
	return formatDateFromDays(c.Values[idx])
}

// Len returns the number of cells.
func (c *DateColumn) Len() int { return len(c.Values) }

func parseDateToDays(text string) (uint32, bool) {
	for _, layout := range dateFormats {
		t, err := time.Parse(layout, text)
		if err == nil {
			days := t.Unix() / 86400
			if days < 0 {
				return 0, false
			}

			return uint32(days), true
		}
	}

	return 0, false
}

func formatDateFromDays(days uint32) string {
	t := time.Unix(int64(days)*86400, 0).UTC()

	return t.Format("2006-01-02")
}

// ParseDateQuery parses a user-supplied date literal for query filtering.
func ParseDateQuery(text string) (uint32, error) {
	days, ok := parseDateToDays(text)
	if !ok {
		return 0, fmt.Errorf("column: invalid date literal %q", text)
	}

	return days, nil
}

// FormatDateDaysValue re-emits days in canonical YYYY-MM-DD form; exported
// for the query engine's selective-column decode.
func FormatDateDaysValue(days uint32) string { return formatDateFromDays(days) }
