package query

// Builder is a fluent query construction API over an Engine, convenient for
// the CLI's query command (spec.md §6.3).
type Builder struct {
	engine     *Engine
	selectCols []string
	filterCol  string
	op         Op
	value      string
	hasFilter  bool
}

// NewBuilder starts a fluent query against engine.
func NewBuilder(engine *Engine) *Builder {
	return &Builder{engine: engine}
}

// Select sets the columns to materialize in the result.
func (b *Builder) Select(cols ...string) *Builder {
	b.selectCols = cols

	return b
}

// Where sets the single-column filter predicate.
func (b *Builder) Where(col string, op Op, value string) *Builder {
	b.filterCol = col
	b.op = op
	b.value = value
	b.hasFilter = true

	return b
}

// Run executes the built query: Query if a filter was set via Where,
// otherwise a plain SelectColumns.
func (b *Builder) Run() (*QueryResult, error) {
	if !b.hasFilter {
		return b.engine.SelectColumns(b.selectCols)
	}

	return b.engine.Query(b.selectCols, b.filterCol, b.op, b.value)
}
