package merge

import (
	"fmt"
	"os"

	"github.com/agentstation/tabfuse"
	"github.com/agentstation/tabfuse/cmd/application"
	"github.com/agentstation/tabfuse/internal/cmd/output"
	"github.com/agentstation/tabfuse/internal/cmd/table"
	"github.com/agentstation/tabfuse/pkg/reconcile"
)

// handleResult renders the table-format view of a completed merge.
func handleResult(app application.Application, result *tabfuse.Result) error {
	if result.HasConflicts() {
		displayConflicts(app, result.Reports)
	}

	if !app.Quiet() {
		fmt.Fprintf(os.Stderr, "✅ %s\n", result.Summary())
	}
	return nil
}

// displayConflicts prints the conflicting values as a table on stdout.
func displayConflicts(app application.Application, reports []*reconcile.Report) {
	conflicted := make([]*reconcile.Report, 0, len(reports))
	for _, report := range reports {
		if report.HasConflicts() {
			conflicted = append(conflicted, report)
		}
	}
	if len(conflicted) == 0 {
		return
	}

	if !app.Quiet() {
		fmt.Fprintf(os.Stderr, "⚠️  Conflicting values found:\n")
	}

	formatter := output.NewFormatter(output.FormatTable)
	if err := formatter.Format(os.Stdout, table.ConflictsToTableData(conflicted)); err != nil {
		app.Logger().Error().Err(err).Msg("Failed to render conflicts")
	}
}
