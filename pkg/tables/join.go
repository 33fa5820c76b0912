package tables

import (
	"strings"

	"github.com/agentstation/tabfuse/pkg/errors"
)

// Pair identifies a matched row between two tables: Left indexes the first
// table's rows, Right the second's.
type Pair struct {
	Left  int
	Right int
}

// keySeparator joins key cells into a lookup string without collisions.
const keySeparator = "\x1f"

// InnerJoin matches rows of the two tables whose key tuples are equal.
// Rows with a missing key cell never match. Pair order follows the left
// table's row order, then the right table's row order within equal keys,
// with a cartesian expansion inside duplicate key groups.
func InnerJoin(left, right *Table, keys []string) ([]Pair, error) {
	leftIdx, err := keyIndices(left, keys)
	if err != nil {
		return nil, err
	}
	rightIdx, err := keyIndices(right, keys)
	if err != nil {
		return nil, err
	}

	// Map key tuples to right-row indices for lookup
	rightMap := make(map[string][]int, right.rows)
	for r := 0; r < right.rows; r++ {
		key, ok := keyAt(right, r, rightIdx)
		if !ok {
			continue
		}
		rightMap[key] = append(rightMap[key], r)
	}

	pairs := []Pair{}
	for l := 0; l < left.rows; l++ {
		key, ok := keyAt(left, l, leftIdx)
		if !ok {
			continue
		}
		for _, r := range rightMap[key] {
			pairs = append(pairs, Pair{Left: l, Right: r})
		}
	}
	return pairs, nil
}

// keyIndices resolves key column names to positions, failing on the first
// absent column.
func keyIndices(t *Table, keys []string) ([]int, error) {
	idx := make([]int, len(keys))
	for i, key := range keys {
		c, ok := t.index[key]
		if !ok {
			return nil, keyColumnError(t, key)
		}
		idx[i] = c
	}
	return idx, nil
}

// keyColumnError labels the failing table by its source when it has one.
func keyColumnError(t *Table, key string) error {
	name := t.source
	if name == "" {
		name = "table"
	}
	return errors.NewKeyColumnError(name, key)
}

// keyAt builds the lookup string for a row's key tuple. The second return
// is false when any key cell is missing.
func keyAt(t *Table, row int, idx []int) (string, bool) {
	parts := make([]string, len(idx))
	for i, c := range idx {
		cell := t.cells[c][row]
		if cell.IsMissing() {
			return "", false
		}
		parts[i] = cell.Raw()
	}
	return strings.Join(parts, keySeparator), true
}
