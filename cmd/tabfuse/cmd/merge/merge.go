package merge

import (
	"context"
	"errors"
	"os"

	"github.com/agentstation/utc"

	"github.com/agentstation/tabfuse"
	"github.com/agentstation/tabfuse/cmd/application"
	"github.com/agentstation/tabfuse/internal/cmd/output"
	"github.com/agentstation/tabfuse/pkg/reconcile"
)

// ExecuteMerge runs the merge and renders the result.
func ExecuteMerge(ctx context.Context, app application.Application, flags *Flags) error {
	resolveDefaults(app, flags)

	opts, err := BuildMergeOptions(flags)
	if err != nil {
		return err
	}

	tf, err := app.Tabfuse(opts...)
	if err != nil {
		return err
	}

	result, err := tf.Merge(ctx)
	if err != nil {
		// Show the disagreements that stopped the run
		var conflictErr *reconcile.ConflictError
		if errors.As(err, &conflictErr) && conflictErr.Report != nil {
			displayConflicts(app, []*reconcile.Report{conflictErr.Report})
		}
		return err
	}

	// Display results based on output format
	if app.OutputFormat() == "json" || app.OutputFormat() == "yaml" {
		formatter := output.NewFormatter(output.Format(app.OutputFormat()))
		return formatter.Format(os.Stdout, newSummary(result))
	}

	return handleResult(app, result)
}

// resolveDefaults fills unset flags from the application configuration.
func resolveDefaults(app application.Application, flags *Flags) {
	if flags.Key == "" {
		flags.Key = app.KeyColumn()
	}
	if flags.Policy == "" {
		flags.Policy = app.PolicyName()
	}
	if flags.SourceColumn == "" {
		flags.SourceColumn = app.SourceColumn()
	}
}

// summary is the structured view of a merge result for json and yaml output.
type summary struct {
	Sources     []string            `json:"sources" yaml:"sources"`
	Rows        int                 `json:"rows" yaml:"rows"`
	Columns     int                 `json:"columns" yaml:"columns"`
	Conflicts   int                 `json:"conflicts" yaml:"conflicts"`
	OutputPath  string              `json:"output_path,omitempty" yaml:"output_path,omitempty"`
	Reports     []*reconcile.Report `json:"reports,omitempty" yaml:"reports,omitempty"`
	StartedAt   utc.Time            `json:"started_at" yaml:"started_at"`
	CompletedAt utc.Time            `json:"completed_at" yaml:"completed_at"`
}

// newSummary flattens a result into its marshal-friendly view.
func newSummary(result *tabfuse.Result) summary {
	s := summary{
		Sources:     result.Sources,
		Conflicts:   result.ConflictCount(),
		OutputPath:  result.OutputPath,
		Reports:     result.Reports,
		StartedAt:   result.StartedAt,
		CompletedAt: result.CompletedAt,
	}
	if result.Table != nil {
		s.Rows = result.Table.NumRows()
		s.Columns = result.Table.NumColumns()
	}
	return s
}
