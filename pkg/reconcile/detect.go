package reconcile

import (
	"github.com/agentstation/utc"

	"github.com/agentstation/tabfuse/pkg/errors"
	"github.com/agentstation/tabfuse/pkg/logging"
	"github.com/agentstation/tabfuse/pkg/tables"
)

// Detect compares two tables and reports every column value they
// disagree on. Rows pair up through an inner join on the key columns,
// so only entities present on both sides are inspected. The report
// comes back with Verified=false when the pair could not be compared
// at all: a side had no rows, or no columns overlap beyond the keys.
// Finding conflicts is not an error; policies decide their fate.
func Detect(a, b *tables.Table, keys []string) (*Report, error) {
	if len(keys) == 0 {
		return nil, errors.NewConfigError("detect", "no key columns configured", nil)
	}
	for _, t := range []*tables.Table{a, b} {
		for _, key := range keys {
			if !t.HasColumn(key) {
				return nil, keyColumnError(t, key)
			}
		}
	}

	logger := logging.With().
		Str("left", a.Source()).
		Str("right", b.Source()).
		Logger()

	report := &Report{
		LeftSource:  a.Source(),
		RightSource: b.Source(),
		Conflicts:   []Conflict{},
		GeneratedAt: utc.Now(),
	}

	if a.NumRows() == 0 || b.NumRows() == 0 {
		logger.Debug().Msg("Nothing to verify, a side has no rows")
		return report, nil
	}

	shared := a.SharedColumns(b, keys...)
	if len(shared) == 0 {
		logger.Debug().Msg("Nothing to verify, no shared columns beyond the keys")
		return report, nil
	}

	pairs, err := tables.InnerJoin(a, b, keys)
	if err != nil {
		return nil, err
	}

	report.Columns = shared
	report.Rows = len(pairs)
	report.Verified = true

	for _, name := range shared {
		leftKind, _ := a.Kind(name)
		rightKind, _ := b.Kind(name)
		leftCol, _ := a.Column(name)
		rightCol, _ := b.Column(name)

		leftVals := make([]tables.Value, len(pairs))
		rightVals := make([]tables.Value, len(pairs))
		for i, p := range pairs {
			leftVals[i] = leftCol[p.Left]
			rightVals[i] = rightCol[p.Right]
		}

		for i, agree := range Compare(leftVals, rightVals, leftKind, rightKind) {
			if agree {
				continue
			}
			report.Conflicts = append(report.Conflicts, Conflict{
				Keys:        keyValues(a, pairs[i].Left, keys),
				Column:      name,
				Left:        leftVals[i].Raw(),
				Right:       rightVals[i].Raw(),
				LeftSource:  a.Source(),
				RightSource: b.Source(),
			})
		}
	}

	sortConflicts(report.Conflicts)

	logger.Debug().
		Int("columns", len(shared)).
		Int("rows", len(pairs)).
		Int("conflicts", len(report.Conflicts)).
		Msg("Compared table pair")

	return report, nil
}

// keyValues extracts the raw key cell values identifying one row.
func keyValues(t *tables.Table, row int, keys []string) []string {
	vals := make([]string, len(keys))
	for i, key := range keys {
		if cell, ok := t.Cell(row, key); ok {
			vals[i] = cell.Raw()
		}
	}
	return vals
}

// keyColumnError labels the failing table by its source when it has one.
func keyColumnError(t *tables.Table, key string) error {
	name := t.Source()
	if name == "" {
		name = "table"
	}
	return errors.NewKeyColumnError(name, key)
}
