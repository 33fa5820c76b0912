package reconcile

import (
	"github.com/agentstation/tabfuse/pkg/errors"
	"github.com/agentstation/tabfuse/pkg/logging"
	"github.com/agentstation/tabfuse/pkg/tables"
)

// ConsolidateOption configures a consolidation run.
type ConsolidateOption func(*consolidator)

// consolidator carries the settings for one consolidation run.
type consolidator struct {
	sourceColumn string
}

// WithSourceColumn stamps each input with a provenance column of the
// given name holding the table's source label before stacking. The
// column coalesces like any data column, so the consolidated value
// names the source that contributed the entity's first record. A data
// column with the same name is overwritten.
func WithSourceColumn(name string) ConsolidateOption {
	return func(c *consolidator) {
		c.sourceColumn = name
	}
}

// Consolidate stacks the given tables and folds them into one row per
// key value. Output columns are the key first, then every other column
// in first-seen order across the inputs. Rows group by raw key value in
// first-seen order, and within a group each column keeps the first
// non-missing value in stack order. Rows whose key cell is missing are
// dropped with a warning.
func Consolidate(tabs []*tables.Table, key string, opts ...ConsolidateOption) (*tables.Table, error) {
	if len(tabs) == 0 {
		return nil, errors.ErrNoInputs
	}

	c := consolidator{}
	for _, opt := range opts {
		opt(&c)
	}

	for _, t := range tabs {
		if !t.HasColumn(key) {
			return nil, keyColumnError(t, key)
		}
	}

	inputs := tabs
	if c.sourceColumn != "" {
		inputs = make([]*tables.Table, len(tabs))
		for i, t := range tabs {
			labeled, err := stampSource(t, c.sourceColumn)
			if err != nil {
				return nil, err
			}
			inputs[i] = labeled
		}
	}

	stacked, err := tables.Stack(inputs...)
	if err != nil {
		return nil, err
	}

	// Key column leads the output.
	ordered := make([]string, 0, stacked.NumColumns())
	ordered = append(ordered, key)
	for _, name := range stacked.Columns() {
		if name != key {
			ordered = append(ordered, name)
		}
	}

	keyCol, _ := stacked.Column(key)

	groups := make(map[string][]int, stacked.NumRows())
	order := []string{}
	dropped := 0
	for i := 0; i < stacked.NumRows(); i++ {
		if keyCol[i].IsMissing() {
			dropped++
			continue
		}
		k := keyCol[i].Raw()
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], i)
	}

	if dropped > 0 {
		logging.Warn().
			Str("column", key).
			Int("rows", dropped).
			Msg("Dropped rows with a missing key value")
	}

	b := tables.NewBuilder(ordered...)
	for _, k := range order {
		rows := groups[k]
		cells := make([]tables.Value, len(ordered))
		for j, name := range ordered {
			cells[j] = firstKnown(stacked, name, rows)
		}
		b.AppendRow(cells...)
	}
	return b.Build()
}

// stampSource returns a copy of t whose provenance column holds the
// table's source label in every row. A table without a label stamps a
// missing cell so a labeled table's value can still win the coalesce.
func stampSource(t *tables.Table, column string) (*tables.Table, error) {
	columns := t.Columns()
	if !t.HasColumn(column) {
		columns = append(columns, column)
	}

	b := tables.NewBuilder(columns...).WithSource(t.Source())
	label := tables.Missing
	if t.Source() != "" {
		label = tables.NewValue(t.Source())
	}
	for i := 0; i < t.NumRows(); i++ {
		row := t.Row(i)
		cells := make([]tables.Value, len(columns))
		for j, name := range columns {
			if name == column {
				cells[j] = label
				continue
			}
			idx, _ := t.ColumnIndex(name)
			cells[j] = row[idx]
		}
		b.AppendRow(cells...)
	}
	return b.Build()
}

// firstKnown returns the first non-missing value for a column across
// the given stacked row indices, or Missing when every cell is absent.
func firstKnown(t *tables.Table, column string, rows []int) tables.Value {
	for _, row := range rows {
		if cell, ok := t.Cell(row, column); ok && !cell.IsMissing() {
			return cell
		}
	}
	return tables.Missing
}
