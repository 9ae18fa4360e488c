package query

import (
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/ext-sakamoro/alicetxt/column"
	"github.com/ext-sakamoro/alicetxt/compress"
	"github.com/ext-sakamoro/alicetxt/container"
	"github.com/ext-sakamoro/alicetxt/errs"
	"github.com/ext-sakamoro/alicetxt/serialize"
)

// FileStats summarizes a container's header, available without decoding any
// column (spec.md §4.6's stats()).
type FileStats struct {
	OriginalLength   uint64
	CompressionLevel compress.Level
	ColumnCount      int
	RowCount         uint64
}

// ColumnStats describes one directory entry. Engine.ColumnStats fills Name,
// Tag and RowCount only; CompressedSize and UncompressedSize are left zero.
type ColumnStats struct {
	Name             string
	Tag              column.Tag
	RowCount         uint32
	CompressedSize   uint32
	UncompressedSize uint32
}

// QueryResult is the output of SelectColumns and Query: the selected column
// names plus materialized rows, one map per row keyed by column name.
type QueryResult struct {
	Columns []string
	Rows    []map[string]string
}

// Engine is a read-only view over one v3 container, providing the typed
// query operations of spec.md §4.6. An Engine is safe for concurrent use by
// multiple goroutines: every operation is a pure read over the immutable
// backing Source (spec.md §5).
type Engine struct {
	reader *container.Reader
}

// Open validates and reads a container's metadata only (spec.md §4.6's
// open(path) contract delegates entirely to container.Open).
func Open(src container.Source) (*Engine, error) {
	r, err := container.Open(src)
	if err != nil {
		return nil, err
	}

	return &Engine{reader: r}, nil
}

// Stats returns the container's header fields. Pure and idempotent.
func (e *Engine) Stats() FileStats {
	h := e.reader.Header()

	return FileStats{
		OriginalLength:   h.OriginalLength,
		CompressionLevel: h.CompressionLevel,
		ColumnCount:      int(h.ColumnCount),
		RowCount:         h.RowCount,
	}
}

// Columns returns the directory's column names.
func (e *Engine) Columns() []string {
	tags := e.reader.Columns()
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.String()
	}

	return names
}

// ColumnStats returns one ColumnStats per directory entry.
func (e *Engine) ColumnStats() []ColumnStats {
	tags := e.reader.Columns()
	out := make([]ColumnStats, 0, len(tags))
	for _, t := range tags {
		rc, _ := e.reader.RowCount(t)
		out = append(out, ColumnStats{Name: t.String(), Tag: t, RowCount: rc})
	}

	return out
}

// SelectColumn reads, decompresses, and decodes one column to its canonical
// string cells (spec.md §4.6's select_column). A valid column name absent
// from this particular file (it was empty at encode time and omitted from
// the directory, spec.md §4.4) returns an empty slice, not an error.
func (e *Engine) SelectColumn(name string) ([]string, error) {
	tag, ok := column.TagByName(name)
	if !ok {
		return nil, fmt.Errorf("query: %w: %q", errs.ErrUnknownColumn, name)
	}
	if !e.reader.HasColumn(tag) {
		return nil, nil
	}

	raw, err := e.reader.FetchColumnRaw(tag)
	if err != nil {
		return nil, err
	}

	return serialize.DecodeColumnStrings(tag, raw)
}

// SelectColumns decompresses each listed column in parallel and zips cells
// into rows by index; columns of different lengths right-pad with absent
// values (spec.md §4.6's select_columns).
func (e *Engine) SelectColumns(names []string) (*QueryResult, error) {
	cells, err := e.fetchColumns(names)
	if err != nil {
		return nil, err
	}

	return &QueryResult{Columns: names, Rows: zipRows(names, cells)}, nil
}

// fetchColumns decodes each named column concurrently, one goroutine per
// name (golang.org/x/sync/errgroup), mirroring spec.md §4.6's parallel
// fetch_one(tag) contract; a name resolving to a column absent from this
// file decodes to a nil (empty) slice rather than failing the whole batch.
func (e *Engine) fetchColumns(names []string) (map[string][]string, error) {
	results := make([][]string, len(names))

	var g errgroup.Group
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			cells, err := e.SelectColumn(name)
			if err != nil {
				return err
			}
			results[i] = cells

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string][]string, len(names))
	for i, name := range names {
		out[name] = results[i]
	}

	return out, nil
}

func zipRows(names []string, cells map[string][]string) []map[string]string {
	maxLen := 0
	for _, name := range names {
		if n := len(cells[name]); n > maxLen {
			maxLen = n
		}
	}

	rows := make([]map[string]string, maxLen)
	for i := 0; i < maxLen; i++ {
		row := make(map[string]string, len(names))
		for _, name := range names {
			if vs := cells[name]; i < len(vs) {
				row[name] = vs[i]
			}
		}
		rows[i] = row
	}

	return rows
}

// FilterOp dispatches by column tag to a typed scan and returns the
// matching column-local indices, in ascending order (spec.md §4.6's
// filter_op). A column name valid in the enumeration but absent from this
// file returns an empty result, not an error.
func (e *Engine) FilterOp(name string, op Op, value string) ([]int, error) {
	tag, ok := column.TagByName(name)
	if !ok {
		return nil, fmt.Errorf("query: %w: %q", errs.ErrUnknownColumn, name)
	}
	if !e.reader.HasColumn(tag) {
		return nil, nil
	}

	raw, err := e.reader.FetchColumnRaw(tag)
	if err != nil {
		return nil, err
	}

	return filterColumn(tag, raw, op, value)
}

// filterColumn implements the per-tag typed scan described in spec.md
// §4.6: integer/enum/timestamp columns parse value into the underlying
// primitive and compare primitive-to-primitive; numbers use epsilon
// equality; everything else falls back to canonical string comparison.
func filterColumn(tag column.Tag, raw []byte, op Op, value string) ([]int, error) {
	switch tag {
	case column.IPv4Tag:
		target, err := column.ParseIPv4Query(value)
		if err != nil {
			return nil, wrapUnparsable(tag, value, err)
		}
		vs, err := serialize.DecodeIPv4s(raw)
		if err != nil {
			return nil, err
		}

		return matchIndices(len(vs), func(i int) bool { return compareUint32(vs[i], target, op) }), nil

	case column.IPv6Tag:
		tHi, tLo, err := column.ParseIPv6Query(value)
		if err != nil {
			return nil, wrapUnparsable(tag, value, err)
		}
		hi, lo, err := serialize.DecodeIPv6s(raw)
		if err != nil {
			return nil, err
		}

		return matchIndices(len(hi), func(i int) bool { return compareUint128(hi[i], lo[i], tHi, tLo, op) }), nil

	case column.UUIDs:
		tHi, tLo, err := column.ParseUUIDQuery(value)
		if err != nil {
			return nil, wrapUnparsable(tag, value, err)
		}
		hi, lo, err := serialize.DecodeUUIDs(raw)
		if err != nil {
			return nil, err
		}

		return matchIndices(len(hi), func(i int) bool { return compareUint128(hi[i], lo[i], tHi, tLo, op) }), nil

	case column.LogLevels:
		target := uint8(column.ParseLogLevel(value))
		vs, err := serialize.DecodeLogLevels(raw)
		if err != nil {
			return nil, err
		}

		return matchIndices(len(vs), func(i int) bool { return compareUint8(vs[i], target, op) }), nil

	case column.Numbers:
		target, err := parseFloatQuery(value)
		if err != nil {
			return nil, wrapUnparsable(tag, value, err)
		}
		vs, err := serialize.DecodeNumbers(raw)
		if err != nil {
			return nil, err
		}

		return matchIndices(len(vs), func(i int) bool { return compareFloat64(vs[i], target, op) }), nil

	case column.DateDays:
		target, err := column.ParseDateQuery(value)
		if err != nil {
			return nil, wrapUnparsable(tag, value, err)
		}
		vs, err := serialize.DecodeDateDays(raw)
		if err != nil {
			return nil, err
		}

		return matchIndices(len(vs), func(i int) bool { return compareUint32(vs[i], target, op) }), nil

	case column.TimeMs:
		target, err := column.ParseTimeQuery(value)
		if err != nil {
			return nil, wrapUnparsable(tag, value, err)
		}
		vs, err := serialize.DecodeTimeMs(raw)
		if err != nil {
			return nil, err
		}

		return matchIndices(len(vs), func(i int) bool { return compareUint32(vs[i], target, op) }), nil

	case column.Timestamps:
		target, ok := column.ParseQueryTimestamp(value)
		if !ok {
			return nil, wrapUnparsable(tag, value, fmt.Errorf("invalid timestamp literal %q", value))
		}
		vs, err := serialize.DecodeTimestampMs(raw)
		if err != nil {
			return nil, err
		}

		return matchIndices(len(vs), func(i int) bool { return compareInt64(vs[i], target, op) }), nil

	default: // string-backed columns: Emails, URLs, Paths, HexValues, Others,
		// DatesRaw, TimesRaw, TimestampsRaw. Skeleton and PlaceholderMap also
		// land here, and DecodeColumnStrings returns ErrUnknownColumn for them.
		vs, err := serialize.DecodeColumnStrings(tag, raw)
		if err != nil {
			return nil, err
		}

		return matchIndices(len(vs), func(i int) bool { return compareString(vs[i], value, op) }), nil
	}
}

func matchIndices(n int, match func(int) bool) []int {
	var out []int
	for i := 0; i < n; i++ {
		if match(i) {
			out = append(out, i)
		}
	}

	return out
}

func wrapUnparsable(tag column.Tag, value string, cause error) error {
	return fmt.Errorf("query: %w: column %s value %q: %w", errs.ErrUnparsableFilterValue, tag, value, cause)
}

func parseFloatQuery(value string) (float64, error) {
	return strconv.ParseFloat(value, 64)
}

// Query computes the matching index set via FilterOp, short-circuits if it
// is empty, then fetches the selected columns in parallel and materializes
// only the matched rows (spec.md §4.6's query()).
func (e *Engine) Query(selectCols []string, filterCol string, op Op, value string) (*QueryResult, error) {
	indices, err := e.FilterOp(filterCol, op, value)
	if err != nil {
		return nil, err
	}
	if len(indices) == 0 {
		return &QueryResult{Columns: selectCols}, nil
	}

	cells, err := e.fetchColumns(selectCols)
	if err != nil {
		return nil, err
	}

	rows := make([]map[string]string, len(indices))
	for i, idx := range indices {
		row := make(map[string]string, len(selectCols))
		for _, name := range selectCols {
			if vs := cells[name]; idx < len(vs) {
				row[name] = vs[idx]
			}
		}
		rows[i] = row
	}

	return &QueryResult{Columns: selectCols, Rows: rows}, nil
}
