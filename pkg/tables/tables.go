// Package tables provides the tabular data model for tabfuse: typed cell
// values with raw text preserved, immutable tables with cached column kinds,
// vertical stacking, and key-based inner joins.
package tables

// Table is an immutable collection of named columns with row-aligned cells.
// Column kinds are inferred once at build time. Operations never modify a
// Table in place; they produce new ones.
type Table struct {
	source  string
	columns []string
	index   map[string]int
	cells   [][]Value // column-major: cells[col][row]
	kinds   []Kind
	rows    int
}

// Source returns the table's source label, usually the base name of the
// file it was loaded from.
func (t *Table) Source() string {
	return t.source
}

// Columns returns the ordered column names.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	return len(t.columns)
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return t.rows
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Column returns the named column's cells in row order.
func (t *Table) Column(name string) ([]Value, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	out := make([]Value, t.rows)
	copy(out, t.cells[i])
	return out, true
}

// Kind returns the inferred kind of the named column.
func (t *Table) Kind(name string) (Kind, bool) {
	i, ok := t.index[name]
	if !ok {
		return KindEmpty, false
	}
	return t.kinds[i], true
}

// Cell returns the value at the given row in the named column.
func (t *Table) Cell(row int, column string) (Value, bool) {
	i, ok := t.index[column]
	if !ok || row < 0 || row >= t.rows {
		return Missing, false
	}
	return t.cells[i][row], true
}

// Row returns the cells of row i in column order.
func (t *Table) Row(i int) []Value {
	if i < 0 || i >= t.rows {
		return nil
	}
	out := make([]Value, len(t.columns))
	for c := range t.columns {
		out[c] = t.cells[c][i]
	}
	return out
}

// SharedColumns returns the column names present in both tables, in the
// receiver's column order, excluding the given names.
func (t *Table) SharedColumns(other *Table, exclude ...string) []string {
	skip := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		skip[name] = true
	}
	shared := []string{}
	for _, name := range t.columns {
		if skip[name] {
			continue
		}
		if other.HasColumn(name) {
			shared = append(shared, name)
		}
	}
	return shared
}
