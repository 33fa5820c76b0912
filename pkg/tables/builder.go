package tables

import (
	"fmt"

	"github.com/agentstation/tabfuse/pkg/errors"
)

// Builder assembles an immutable Table row by row. The builder must not be
// reused after Build.
type Builder struct {
	source  string
	columns []string
	index   map[string]int
	cells   [][]Value
	rows    int
	err     error
}

// NewBuilder creates a Builder for the given column names. Duplicate names
// surface as an error from Build.
func NewBuilder(columns ...string) *Builder {
	b := &Builder{
		columns: make([]string, len(columns)),
		index:   make(map[string]int, len(columns)),
		cells:   make([][]Value, len(columns)),
	}
	copy(b.columns, columns)
	for i, name := range columns {
		if _, dup := b.index[name]; dup {
			b.err = errors.NewValidationError("columns", name, fmt.Sprintf("duplicate column name %q", name))
			continue
		}
		b.index[name] = i
	}
	return b
}

// WithSource sets the source label recorded on the built table.
func (b *Builder) WithSource(label string) *Builder {
	b.source = label
	return b
}

// AppendRow appends one row of cells in column order. Short rows are padded
// with Missing; rows wider than the column set surface as an error from
// Build.
func (b *Builder) AppendRow(cells ...Value) *Builder {
	if b.err != nil {
		return b
	}
	if len(cells) > len(b.columns) {
		b.err = errors.NewValidationError("row", b.rows,
			fmt.Sprintf("row %d has %d cells, table has %d columns", b.rows, len(cells), len(b.columns)))
		return b
	}
	for i := range b.columns {
		cell := Missing
		if i < len(cells) {
			cell = cells[i]
		}
		b.cells[i] = append(b.cells[i], cell)
	}
	b.rows++
	return b
}

// AppendRawRow parses raw strings through the given NA token set and appends
// the resulting cells as one row.
func (b *Builder) AppendRawRow(na NATokens, raw ...string) *Builder {
	cells := make([]Value, len(raw))
	for i, s := range raw {
		cells[i] = Parse(s, na)
	}
	return b.AppendRow(cells...)
}

// Build finalizes the table, inferring column kinds.
func (b *Builder) Build() (*Table, error) {
	if b.err != nil {
		return nil, b.err
	}
	t := &Table{
		source:  b.source,
		columns: b.columns,
		index:   b.index,
		cells:   b.cells,
		kinds:   make([]Kind, len(b.columns)),
		rows:    b.rows,
	}
	for i := range t.columns {
		t.kinds[i] = inferKind(t.cells[i])
	}
	return t, nil
}
