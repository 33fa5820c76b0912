package tabfuse

import (
	"fmt"

	"github.com/agentstation/utc"

	"github.com/agentstation/tabfuse/pkg/reconcile"
	"github.com/agentstation/tabfuse/pkg/tables"
)

// Result represents the complete result of a merge operation.
type Result struct {
	Table      *tables.Table       // the consolidated table
	Reports    []*reconcile.Report // pairwise verification reports (nil when verification was off)
	Sources    []string            // input paths in load order
	OutputPath string              // where the table was written (empty when not written)

	StartedAt   utc.Time // when the merge began
	CompletedAt utc.Time // when the merge finished
}

// HasConflicts returns true if any verification report recorded conflicts.
func (r *Result) HasConflicts() bool {
	for _, report := range r.Reports {
		if report.HasConflicts() {
			return true
		}
	}
	return false
}

// ConflictCount returns the total number of conflicts across all reports.
func (r *Result) ConflictCount() int {
	total := 0
	for _, report := range r.Reports {
		total += len(report.Conflicts)
	}
	return total
}

// Summary returns a human-readable summary of the merge result.
func (r *Result) Summary() string {
	if r.Table == nil {
		return "nothing merged"
	}

	summary := fmt.Sprintf("merged %d tables into %d rows, %d columns",
		len(r.Sources), r.Table.NumRows(), r.Table.NumColumns())
	if conflicts := r.ConflictCount(); conflicts > 0 {
		summary += fmt.Sprintf(" (%d conflicts)", conflicts)
	}
	if r.OutputPath != "" {
		summary += fmt.Sprintf(", written to %s", r.OutputPath)
	}
	return summary
}
