// Package reconcile compares and consolidates tables that describe the
// same entities. Detect reports every value two tables disagree on for
// a shared entity, Consolidate folds many tables into one row per
// entity keeping the first known value, and policies decide whether a
// conflicted run may continue.
package reconcile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agentstation/utc"
)

// Conflict records one disagreement between two tables: the same entity
// carries values in the same column that survive type-aware comparison
// as different. Left and Right hold the raw source strings, never their
// normalized forms.
type Conflict struct {
	Keys        []string `json:"keys" yaml:"keys"`                 // key column values identifying the entity
	Column      string   `json:"column" yaml:"column"`             // column the tables disagree on
	Left        string   `json:"left" yaml:"left"`                 // raw value from the left table
	Right       string   `json:"right" yaml:"right"`               // raw value from the right table
	LeftSource  string   `json:"left_source" yaml:"left_source"`   // source label of the left table
	RightSource string   `json:"right_source" yaml:"right_source"` // source label of the right table
}

// String renders the conflict for logs and prompts.
func (c Conflict) String() string {
	return fmt.Sprintf("%s, column %q: %q (%s) vs %q (%s)",
		strings.Join(c.Keys, "/"), c.Column, c.Left, c.LeftSource, c.Right, c.RightSource)
}

// Report is the outcome of comparing one pair of tables. Conflicts are
// ordered by key tuple then column name, so the same inputs always
// produce an identical report regardless of row order.
type Report struct {
	LeftSource  string     `json:"left_source" yaml:"left_source"`   // source label of the left table
	RightSource string     `json:"right_source" yaml:"right_source"` // source label of the right table
	Columns     []string   `json:"columns" yaml:"columns"`           // shared columns that were compared
	Rows        int        `json:"rows" yaml:"rows"`                 // joined row pairs inspected
	Conflicts   []Conflict `json:"conflicts" yaml:"conflicts"`       // disagreements, sorted by key then column
	Verified    bool       `json:"verified" yaml:"verified"`         // false when a side was empty or no columns overlapped
	GeneratedAt utc.Time   `json:"generated_at" yaml:"generated_at"`
}

// HasConflicts reports whether any compared column disagreed.
func (r *Report) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// Summary returns a one-line description of the comparison outcome.
func (r *Report) Summary() string {
	pair := fmt.Sprintf("%s vs %s", r.LeftSource, r.RightSource)
	if !r.Verified {
		return fmt.Sprintf("%s: nothing to verify", pair)
	}
	if !r.HasConflicts() {
		return fmt.Sprintf("%s: no conflicts (%d columns, %d row pairs)", pair, len(r.Columns), r.Rows)
	}
	return fmt.Sprintf("%s: %d conflicts (%d columns, %d row pairs)", pair, len(r.Conflicts), len(r.Columns), r.Rows)
}

// sortConflicts orders conflicts by key tuple, then column name.
func sortConflicts(conflicts []Conflict) {
	sort.Slice(conflicts, func(i, j int) bool {
		a, b := conflicts[i], conflicts[j]
		for k := 0; k < len(a.Keys) && k < len(b.Keys); k++ {
			if a.Keys[k] != b.Keys[k] {
				return a.Keys[k] < b.Keys[k]
			}
		}
		return a.Column < b.Column
	})
}
