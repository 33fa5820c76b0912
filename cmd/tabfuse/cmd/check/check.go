package check

import (
	"context"
	"fmt"
	"os"

	"github.com/agentstation/tabfuse"
	"github.com/agentstation/tabfuse/cmd/application"
	"github.com/agentstation/tabfuse/internal/cmd/output"
	"github.com/agentstation/tabfuse/internal/cmd/table"
	"github.com/agentstation/tabfuse/pkg/errors"
	"github.com/agentstation/tabfuse/pkg/reconcile"
)

// ExecuteCheck verifies every pair of inputs and renders the reports.
func ExecuteCheck(ctx context.Context, app application.Application, flags *Flags) error {
	if flags.Key == "" {
		flags.Key = app.KeyColumn()
	}

	opts := []tabfuse.Option{
		tabfuse.WithKeyColumn(flags.Key),
	}
	if len(flags.Inputs) > 0 {
		opts = append(opts, tabfuse.WithInputs(flags.Inputs...))
	}
	if flags.Dir != "" {
		opts = append(opts, tabfuse.WithDirectory(flags.Dir))
	}

	tf, err := app.Tabfuse(opts...)
	if err != nil {
		return err
	}

	reports, err := tf.Check(ctx)
	if err != nil {
		return err
	}

	if err := displayReports(app, reports); err != nil {
		return err
	}

	// A conflicting pair makes the command fail so scripts can gate on it
	if values, pairs := countConflicts(reports); values > 0 {
		return fmt.Errorf("%w: %d across %d table pairs", errors.ErrConflicts, values, pairs)
	}
	return nil
}

// displayReports prints the pair summaries, then conflict details if any.
func displayReports(app application.Application, reports []*reconcile.Report) error {
	formatter := output.NewFormatter(output.Format(app.OutputFormat()))

	// Structured formats get the raw reports
	if app.OutputFormat() == "json" || app.OutputFormat() == "yaml" {
		return formatter.Format(os.Stdout, reports)
	}

	if err := formatter.Format(os.Stdout, table.ReportsToTableData(reports)); err != nil {
		return err
	}

	conflicted := make([]*reconcile.Report, 0, len(reports))
	for _, report := range reports {
		if report.HasConflicts() {
			conflicted = append(conflicted, report)
		}
	}
	if len(conflicted) == 0 {
		return nil
	}

	if !app.Quiet() {
		fmt.Fprintf(os.Stderr, "⚠️  Conflicting values found:\n")
	}
	return formatter.Format(os.Stdout, table.ConflictsToTableData(conflicted))
}

// countConflicts totals the conflicting values and the pairs they occur in.
func countConflicts(reports []*reconcile.Report) (values, pairs int) {
	for _, report := range reports {
		if report.HasConflicts() {
			values += len(report.Conflicts)
			pairs++
		}
	}
	return values, pairs
}
