package column

// StringColumn is the raw-string fallback used for Emails, URLs, Paths,
// HexValues, Others, DatesRaw, and TimesRaw (spec.md §3): no type-specific
// compaction, verbatim storage. It also serves as the fallback destination
// whenever a type-specialized column's Add rejects its input, guaranteeing
// encoding is total over valid UTF-8 (spec.md §7).
type StringColumn struct {
	Values []string
}

// NewStringColumn creates an empty string column.
func NewStringColumn() *StringColumn {
	return &StringColumn{}
}

// Add always succeeds and returns the cell's index.
func (c *StringColumn) Add(text string) int {
	c.Values = append(c.Values, text)

	return len(c.Values) - 1
}

// Get returns the verbatim string stored at idx.
func (c *StringColumn) Get(idx int) string {
	return c.Values[idx]
}

// Len returns the number of cells.
func (c *StringColumn) Len() int { return len(c.Values) }
