package reconcile

import (
	"github.com/agentstation/tabfuse/pkg/normalize"
	"github.com/agentstation/tabfuse/pkg/tables"
)

// Compare evaluates paired cells from two columns and reports, per
// pair, whether the values agree (true means no conflict). How a pair
// is compared depends on the kinds of both columns: numeric on both
// sides compares by parsed number, text on both sides by folded text,
// and anything else by raw string. A missing cell on either side never
// disagrees. The result covers the shorter of the two slices.
func Compare(left, right []tables.Value, leftKind, rightKind tables.Kind) []bool {
	n := len(left)
	if len(right) < n {
		n = len(right)
	}
	agree := make([]bool, n)
	for i := 0; i < n; i++ {
		agree[i] = equalValues(left[i], right[i], leftKind, rightKind)
	}
	return agree
}

// equalValues applies the kind-aware comparison rules to a single pair.
func equalValues(left, right tables.Value, leftKind, rightKind tables.Kind) bool {
	if left.IsMissing() || right.IsMissing() {
		return true
	}
	switch {
	case leftKind == tables.KindNumber && rightKind == tables.KindNumber:
		ln, _ := left.Number()
		rn, _ := right.Number()
		return ln == rn
	case leftKind == tables.KindText && rightKind == tables.KindText:
		return normalize.Equal(left.Raw(), right.Raw())
	default:
		return left.Raw() == right.Raw()
	}
}
