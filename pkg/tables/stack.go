package tables

import "github.com/agentstation/tabfuse/pkg/errors"

// Stack vertically concatenates tables into one. The output column set is
// the union of the input columns in first-seen order; cells for columns a
// source table lacks are Missing. Row order follows the input order.
func Stack(tabs ...*Table) (*Table, error) {
	if len(tabs) == 0 {
		return nil, errors.ErrNoInputs
	}

	// Union of columns in first-seen order
	columns := []string{}
	seen := make(map[string]bool)
	for _, t := range tabs {
		for _, name := range t.columns {
			if !seen[name] {
				seen[name] = true
				columns = append(columns, name)
			}
		}
	}

	b := NewBuilder(columns...)
	row := make([]Value, len(columns))
	for _, t := range tabs {
		for r := 0; r < t.rows; r++ {
			for i, name := range columns {
				if c, ok := t.index[name]; ok {
					row[i] = t.cells[c][r]
				} else {
					row[i] = Missing
				}
			}
			b.AppendRow(row...)
		}
	}
	return b.Build()
}
