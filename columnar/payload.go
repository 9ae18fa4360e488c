// Package columnar implements component C3, the payload assembler: it ties
// skeleton placeholders produced by package pattern to the type-specialized
// cells produced by package column, and reverses the mapping to restore the
// original text exactly.
package columnar

import (
	"strings"

	"github.com/ext-sakamoro/alicetxt/column"
	"github.com/ext-sakamoro/alicetxt/pattern"
)

// CellRef is one placeholder map entry: a (column tag, index-within-column)
// pair (spec.md §3's "vector M of length N").
type CellRef struct {
	Tag   column.Tag
	Index uint32
}

// Payload holds one instance of every column kind plus the skeleton and
// placeholder map for a single encoded text. Nothing here is compressed;
// that is package serialize's job.
type Payload struct {
	Tokens         []pattern.SkeletonToken
	PlaceholderMap []CellRef
	RowCount       uint64

	Timestamps *column.TimestampColumn
	IPv4       *column.IPv4Column
	IPv6       *column.IPv6Column
	LogLevels  *column.LogLevelColumn
	Numbers    *column.NumberColumn
	UUIDs      *column.UUIDColumn
	Emails     *column.StringColumn
	URLs       *column.StringColumn
	Paths      *column.StringColumn
	DateDays   *column.DateColumn
	DatesRaw   *column.StringColumn
	TimeMs     *column.TimeColumn
	TimesRaw   *column.StringColumn
	HexValues  *column.StringColumn
	Others     *column.StringColumn
}

// New creates an empty payload with every column initialized, ready for
// Encode.
func New() *Payload {
	return &Payload{
		Timestamps: column.NewTimestampColumn(),
		IPv4:       column.NewIPv4Column(),
		IPv6:       column.NewIPv6Column(),
		LogLevels:  column.NewLogLevelColumn(),
		Numbers:    column.NewNumberColumn(),
		UUIDs:      column.NewUUIDColumn(),
		Emails:     column.NewStringColumn(),
		URLs:       column.NewStringColumn(),
		Paths:      column.NewStringColumn(),
		DateDays:   column.NewDateColumn(),
		DatesRaw:   column.NewStringColumn(),
		TimeMs:     column.NewTimeColumn(),
		TimesRaw:   column.NewStringColumn(),
		HexValues:  column.NewStringColumn(),
		Others:     column.NewStringColumn(),
	}
}

// Encode runs the extractor over text, dispatches every match into its
// column, and records the skeleton and placeholder map (spec.md §4.3).
func (p *Payload) Encode(text string, ext *pattern.Extractor) {
	tokens, matches := ext.ExtractSkeleton(text)
	p.Tokens = tokens
	p.PlaceholderMap = make([]CellRef, len(matches))

	for i, m := range matches {
		p.PlaceholderMap[i] = p.addMatch(m.Kind, m.Text)
	}

	p.RowCount = rowCount(text)
}

func rowCount(text string) uint64 {
	if text == "" {
		return 0
	}

	return uint64(strings.Count(text, "\n")) + 1
}

// addMatch routes a matched substring to the column appropriate for its
// kind, falling back to a raw-string column when the type-specialized
// parse fails. Every branch is total: there is always a destination
// (spec.md §7's "encoding is total over valid UTF-8 input").
func (p *Payload) addMatch(kind pattern.Kind, text string) CellRef {
	switch kind {
	case pattern.Timestamp:
		isDelta, idx := p.Timestamps.Add(text)
		if isDelta {
			return CellRef{column.Timestamps, uint32(idx)}
		}

		return CellRef{column.TimestampsRaw, uint32(idx)}

	case pattern.Date:
		if idx, ok := p.DateDays.Add(text); ok {
			return CellRef{column.DateDays, uint32(idx)}
		}

		return CellRef{column.DatesRaw, uint32(p.DatesRaw.Add(text))}

	case pattern.Time:
		if idx, ok := p.TimeMs.Add(text); ok {
			return CellRef{column.TimeMs, uint32(idx)}
		}

		return CellRef{column.TimesRaw, uint32(p.TimesRaw.Add(text))}

	case pattern.IPv4:
		if idx, ok := p.IPv4.Add(text); ok {
			return CellRef{column.IPv4Tag, uint32(idx)}
		}

		return CellRef{column.Others, uint32(p.Others.Add(text))}

	case pattern.IPv6:
		if idx, ok := p.IPv6.Add(text); ok {
			return CellRef{column.IPv6Tag, uint32(idx)}
		}

		return CellRef{column.Others, uint32(p.Others.Add(text))}

	case pattern.UUID:
		if idx, ok := p.UUIDs.Add(text); ok {
			return CellRef{column.UUIDs, uint32(idx)}
		}

		return CellRef{column.Others, uint32(p.Others.Add(text))}

	case pattern.LogLevel:
		return CellRef{column.LogLevels, uint32(p.LogLevels.Add(text))}

	case pattern.Number:
		if idx, ok := p.Numbers.Add(text); ok {
			return CellRef{column.Numbers, uint32(idx)}
		}

		return CellRef{column.Others, uint32(p.Others.Add(text))}

	case pattern.Email:
		return CellRef{column.Emails, uint32(p.Emails.Add(text))}

	case pattern.URL:
		return CellRef{column.URLs, uint32(p.URLs.Add(text))}

	case pattern.Path:
		return CellRef{column.Paths, uint32(p.Paths.Add(text))}

	case pattern.Hex:
		return CellRef{column.HexValues, uint32(p.HexValues.Add(text))}

	default: // pattern.Custom and anything unrecognized
		return CellRef{column.Others, uint32(p.Others.Add(text))}
	}
}

// Restore reconstructs the original text from the skeleton and columns
// (spec.md §4.3's restore() contract). It is O(output length) after one
// pass to precompute the timestamp column's prefix sums.
func (p *Payload) Restore() string {
	p.Timestamps.PrepareForRead()

	return pattern.Restore(p.Tokens, func(i uint32) string {
		return p.resolveCell(p.PlaceholderMap[i])
	})
}

// resolveCell returns the canonical (or verbatim, for string fallbacks)
// string for one placeholder map entry.
func (p *Payload) resolveCell(ref CellRef) string {
	idx := int(ref.Index)

	switch ref.Tag {
	case column.Timestamps:
		return p.Timestamps.Get(idx)
	case column.TimestampsRaw:
		return p.Timestamps.GetRaw(idx)
	case column.IPv4Tag:
		return p.IPv4.Get(idx)
	case column.IPv6Tag:
		return p.IPv6.Get(idx)
	case column.LogLevels:
		return p.LogLevels.Get(idx)
	case column.Numbers:
		return p.Numbers.Get(idx)
	case column.UUIDs:
		return p.UUIDs.Get(idx)
	case column.Emails:
		return p.Emails.Get(idx)
	case column.URLs:
		return p.URLs.Get(idx)
	case column.Paths:
		return p.Paths.Get(idx)
	case column.DateDays:
		return p.DateDays.Get(idx)
	case column.DatesRaw:
		return p.DatesRaw.Get(idx)
	case column.TimeMs:
		return p.TimeMs.Get(idx)
	case column.TimesRaw:
		return p.TimesRaw.Get(idx)
	case column.HexValues:
		return p.HexValues.Get(idx)
	default: // column.Others
		return p.Others.Get(idx)
	}
}
