package column

import (
	"math"
	"strconv"
)

// NumberColumn stores parsed numeric literals as float64 (spec.md §3).
// Integers representable in i64 re-emit without a fractional part, per
// spec.md §4.2 and the "Number canonical form" testable property (§8.6).
type NumberColumn struct {
	Values []float64
}

// NewNumberColumn creates an empty number column.
func NewNumberColumn() *NumberColumn {
	return &NumberColumn{}
}

// Add parses text as a float64.
func (c *NumberColumn) Add(text string) (idx int, ok bool) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}

	c.Values = append(c.Values, v)

	return len(c.Values) - 1, true
}

// Get re-emits the canonical form for cell idx: integral values with no
// decimal point, others via Go's shortest round-tripping float format.
func (c *NumberColumn) Get(idx int) string {
	return FormatNumber(c.Values[idx])
}

// Len returns the number of cells.
func (c *NumberColumn) Len() int { return len(c.Values) }

// FormatNumber implements spec.md §4.2's Number re-emission rule.
func FormatNumber(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) &&
		v >= -9.223372036854776e18 && v < 9.223372036854776e18 {
		return strconv.FormatInt(int64(v), 10)
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}
