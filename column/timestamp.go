package column

import (
	"strings"
	"time"
)

// tsSurface records which surface form a successfully parsed timestamp used,
// so reconstruction can re-emit the same shape (spec.md §4.2: "format chosen
// from the original base_text").
type tsSurface int

const (
	surfaceZ tsSurface = iota
	surfaceOffset
	surfaceTNaive
	surfaceSpaceNaive
)

// tsLayout pairs a candidate Go parse layout with the surface it implies.
type tsLayout struct {
	layout  string
	surface tsSurface
}

// tsLayouts are tried timezone-aware-first, then naive, matching spec.md
// §4.2's stated parser order.
var tsLayouts = []tsLayout{
	{"2006-01-02T15:04:05.999999999Z07:00", surfaceZ}, // surface refined post-parse (Z vs offset)
	{"2006-01-02T15:04:05Z07:00", surfaceZ},
	{"2006-01-02 15:04:05.999999999", surfaceSpaceNaive},
	{"2006-01-02 15:04:05", surfaceSpaceNaive},
	{"2006-01-02T15:04:05.999999999", surfaceTNaive},
	{"2006-01-02T15:04:05", surfaceTNaive},
}

// TimestampColumn is the non-trivial timestamp column of spec.md §3: a base
// text/instant plus a delta-coded series of successfully parsed timestamps,
// with a raw-string side array for ones that failed to parse.
type TimestampColumn struct {
	hasBase        bool
	baseText       string
	baseMs         int64
	baseOffsetSecs int32
	baseSurface    tsSurface
	baseHasFrac    bool

	Deltas []int64
	Raw    []string

	lastMs          int64
	cachedLayoutIdx int // -1 until a format has succeeded once

	prefixSums []int64 // computed once per read pass by PrepareForRead
}

// NewTimestampColumn creates an empty timestamp column.
func NewTimestampColumn() *TimestampColumn {
	return &TimestampColumn{cachedLayoutIdx: -1}
}

// Add attempts to parse text as a timestamp. isDelta reports whether it
// joined the delta-coded series (tag Timestamps) or fell back to the raw
// array (tag TimestampsRaw); idx is the index within the destination array.
func (c *TimestampColumn) Add(text string) (isDelta bool, idx int) {
	ms, offsetSecs, surface, hasFrac, ok := c.parse(text)
	if !ok {
		c.Raw = append(c.Raw, text)

		return false, len(c.Raw) - 1
	}

	if !c.hasBase {
		c.hasBase = true
		c.baseText = text
		c.baseMs = ms
		c.baseOffsetSecs = offsetSecs
		c.baseSurface = surface
		c.baseHasFrac = hasFrac
		c.Deltas = append(c.Deltas, 0)
	} else {
		c.Deltas = append(c.Deltas, ms-c.lastMs)
	}
	c.lastMs = ms

	return true, len(c.Deltas) - 1
}

// parse tries the cached layout first (the common case: a column is
// usually homogeneous), then the full fixed order.
func (c *TimestampColumn) parse(text string) (ms int64, offsetSecs int32, surface tsSurface, hasFrac bool, ok bool) {
	if c.cachedLayoutIdx >= 0 {
		if ms, offsetSecs, surface, hasFrac, ok = tryLayout(tsLayouts[c.cachedLayoutIdx], text); ok {
			return
		}
	}

	for i, l := range tsLayouts {
		if ms, offsetSecs, surface, hasFrac, ok = tryLayout(l, text); ok {
			c.cachedLayoutIdx = i

			return
		}
	}

	return 0, 0, 0, false, false
}

func tryLayout(l tsLayout, text string) (ms int64, offsetSecs int32, surface tsSurface, hasFrac bool, ok bool) {
	t, err := time.Parse(l.layout, text)
	if err != nil {
		return 0, 0, 0, false, false
	}

	surface = l.surface
	if surface == surfaceZ && !strings.HasSuffix(text, "Z") {
		surface = surfaceOffset
	}

	_, offset := t.Zone()

	return t.UnixMilli(), int32(offset), surface, strings.Contains(text, "."), true
}

// PrepareForRead precomputes the prefix-sum table used by Get, so repeated
// lookups are O(1) after one O(n) pass (spec.md §4.2/§4.3).
func (c *TimestampColumn) PrepareForRead() {
	c.prefixSums = make([]int64, len(c.Deltas))
	var sum int64
	for i, d := range c.Deltas {
		sum += d
		c.prefixSums[i] = sum
	}
}

// AbsoluteMs returns the absolute millisecond instant of the idx-th
// delta-coded entry. PrepareForRead must have been called since the last
// Add.
func (c *TimestampColumn) AbsoluteMs(idx int) int64 {
	return c.baseMs + c.prefixSums[idx]
}

// Get re-emits the canonical string for the idx-th delta-coded entry, in
// the surface form captured from the base entry.
func (c *TimestampColumn) Get(idx int) string {
	return formatTimestamp(c.AbsoluteMs(idx), c.baseOffsetSecs, c.baseSurface, c.baseHasFrac)
}

// GetRaw returns the idx-th raw-fallback entry verbatim.
func (c *TimestampColumn) GetRaw(idx int) string {
	return c.Raw[idx]
}

// Len returns the number of delta-coded cells.
func (c *TimestampColumn) Len() int { return len(c.Deltas) }

// RawLen returns the number of raw-fallback cells.
func (c *TimestampColumn) RawLen() int { return len(c.Raw) }

// BaseMs, HasBase, BaseOffsetSecs expose the base instant for serialization.
func (c *TimestampColumn) BaseMs() int64         { return c.baseMs }
func (c *TimestampColumn) HasBase() bool         { return c.hasBase }
func (c *TimestampColumn) BaseOffsetSecs() int32 { return c.baseOffsetSecs }
func (c *TimestampColumn) BaseSurface() int32    { return int32(c.baseSurface) }
func (c *TimestampColumn) BaseHasFrac() bool     { return c.baseHasFrac }

// LoadDecoded reconstructs a TimestampColumn from deserialized fields
// (package serialize uses this on the read path).
func LoadDecoded(hasBase bool, baseMs int64, baseOffsetSecs int32, surface int32, hasFrac bool, deltas []int64, raw []string) *TimestampColumn {
	c := &TimestampColumn{
		hasBase:         hasBase,
		baseMs:          baseMs,
		baseOffsetSecs:  baseOffsetSecs,
		baseSurface:     tsSurface(surface),
		baseHasFrac:     hasFrac,
		Deltas:          deltas,
		Raw:             raw,
		cachedLayoutIdx: -1,
	}
	c.PrepareForRead()

	return c
}

// formatTimestamp re-emits ms under the given surface form. The "Z" surface
// always re-emits in UTC regardless of a captured offset, preserving the
// reference implementation's documented (and deliberately unresolved,
// spec.md §9) behavior rather than silently diverging from it.
func formatTimestamp(ms int64, offsetSecs int32, surface tsSurface, hasFrac bool) string {
	switch surface {
	case surfaceZ:
		t := time.UnixMilli(ms).UTC()
		if hasFrac {
			return t.Format("2006-01-02T15:04:05.000Z")
		}

		return t.Format("2006-01-02T15:04:05Z")
	case surfaceOffset:
		loc := time.FixedZone("", int(offsetSecs))
		t := time.UnixMilli(ms).In(loc)
		if hasFrac {
			return t.Format("2006-01-02T15:04:05.000Z07:00")
		}

		return t.Format("2006-01-02T15:04:05Z07:00")
	case surfaceTNaive:
		t := time.UnixMilli(ms).UTC()
		if hasFrac {
			return t.Format("2006-01-02T15:04:05.000")
		}

		return t.Format("2006-01-02T15:04:05")
	default: // surfaceSpaceNaive
		t := time.UnixMilli(ms).UTC()
		if hasFrac {
			return t.Format("2006-01-02 15:04:05.000")
		}

		return t.Format("2006-01-02 15:04:05")
	}
}

// ParseQueryTimestamp implements spec.md §4.6's query-timestamp parser:
// "YYYY-MM-DD[ T]HH:MM:SS[.fff]" and bare "YYYY-MM-DD" (treated as
// 00:00:00), returning absolute UTC milliseconds.
func ParseQueryTimestamp(text string) (int64, bool) {
	layouts := []string{
		"2006-01-02 15:04:05.000",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05.000",
		"2006-01-02T15:04:05",
		"2006-01-02",
	}

	for _, layout := range layouts {
		t, err := time.Parse(layout, text)
		if err == nil {
			return t.UTC().UnixMilli(), true
		}
	}

	return 0, false
}
