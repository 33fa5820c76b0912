// Package tabfuse reconciles tabular datasets that describe the same
// entities into one consolidated table. Inputs are CSV, TSV, or XLSX files
// keyed by an entity column; tabfuse stacks them vertically, coalesces each
// entity's cells to the first known value, and can verify every pair of
// inputs for conflicting values before merging.
//
// Example usage:
//
//	// Merge two visit exports into one table
//	tf, err := tabfuse.New(
//	    tabfuse.WithInputs("visits1.csv", "visits2.xlsx"),
//	    tabfuse.WithOutput("merged.csv"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := tf.Merge(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Summary())
//
//	// Verify a directory of exports without merging
//	tf, err = tabfuse.New(tabfuse.WithDirectory("./exports"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	reports, err := tf.Check(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, report := range reports {
//	    fmt.Println(report.Summary())
//	}
package tabfuse

import (
	"context"

	"github.com/agentstation/utc"

	"github.com/agentstation/tabfuse/pkg/errors"
	"github.com/agentstation/tabfuse/pkg/logging"
	"github.com/agentstation/tabfuse/pkg/reconcile"
	"github.com/agentstation/tabfuse/pkg/tabio"
	"github.com/agentstation/tabfuse/pkg/tables"
)

// Compile-time interface check to ensure proper implementation.
var _ Tabfuse = (*tabfuse)(nil)

// Tabfuse runs one-shot reconciliation over a configured set of inputs.
type Tabfuse interface {

	// Check loads every configured input and runs pairwise conflict
	// detection across all of them.
	Check(ctx context.Context) ([]*reconcile.Report, error)

	// Merge loads every configured input, optionally verifies the pairs
	// against the resolution policy, consolidates them into one table,
	// and writes it when an output path is configured.
	Merge(ctx context.Context) (*Result, error)
}

// tabfuse is the internal implementation of the Tabfuse interface.
type tabfuse struct {
	options *options
}

// New creates a new Tabfuse instance with the given options.
func New(opts ...Option) (Tabfuse, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &tabfuse{options: options}, nil
}

// Check loads every configured input and runs pairwise conflict detection
// across all of them. Reports come back in input-pair order; a single input
// yields no reports.
func (t *tabfuse) Check(ctx context.Context) ([]*reconcile.Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = t.options.loggerContext(ctx)

	tabs, _, err := t.load(ctx)
	if err != nil {
		return nil, err
	}

	return detectPairs(tabs, t.options.keys())
}

// Merge loads every configured input, optionally verifies the pairs against
// the resolution policy, consolidates them into one table, and writes it
// when an output path is configured.
func (t *tabfuse) Merge(ctx context.Context) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = t.options.loggerContext(ctx)
	logger := logging.FromContext(ctx)

	result := &Result{StartedAt: utc.Now()}

	tabs, paths, err := t.load(ctx)
	if err != nil {
		return nil, err
	}
	result.Sources = paths

	// Verify pairs and let the policy decide whether conflicts stop the run
	if t.options.verify {
		reports, err := detectPairs(tabs, t.options.keys())
		if err != nil {
			return nil, err
		}
		result.Reports = reports

		for _, report := range reports {
			decision, err := t.options.policy.Resolve(ctx, report)
			if err != nil {
				return nil, err
			}
			if decision == reconcile.Abort {
				return nil, &reconcile.ConflictError{Report: report}
			}
		}
	}

	consolidateOpts := []reconcile.ConsolidateOption{}
	if t.options.sourceColumn != "" {
		consolidateOpts = append(consolidateOpts, reconcile.WithSourceColumn(t.options.sourceColumn))
	}
	merged, err := reconcile.Consolidate(tabs, t.options.key, consolidateOpts...)
	if err != nil {
		return nil, err
	}
	result.Table = merged

	if t.options.output != "" {
		if err := tabio.Write(merged, t.options.output); err != nil {
			return nil, err
		}
		result.OutputPath = t.options.output
	}

	result.CompletedAt = utc.Now()
	logger.Info().
		Int("tables", len(tabs)).
		Int("rows", merged.NumRows()).
		Int("columns", merged.NumColumns()).
		Str("output", result.OutputPath).
		Msg("Merge completed")

	return result, nil
}

// load resolves the configured inputs to concrete paths and loads each one.
// Explicit inputs come first, discovered files after, in discovery order.
func (t *tabfuse) load(ctx context.Context) ([]*tables.Table, []string, error) {
	logger := logging.FromContext(ctx)

	paths := make([]string, 0, len(t.options.inputs))
	paths = append(paths, t.options.inputs...)
	if t.options.directory != "" {
		discovered, err := tabio.Discover(t.options.directory)
		if err != nil {
			return nil, nil, err
		}
		paths = append(paths, discovered...)
	}
	if len(paths) == 0 {
		return nil, nil, errors.ErrNoInputs
	}

	tabs := make([]*tables.Table, 0, len(paths))
	for _, path := range paths {
		tab, err := tabio.Load(path, t.options.load...)
		if err != nil {
			return nil, nil, err
		}
		tabs = append(tabs, tab)
	}

	logger.Debug().
		Int("tables", len(tabs)).
		Strs("paths", paths).
		Msg("Loaded input tables")

	return tabs, paths, nil
}

// detectPairs runs conflict detection over every pair of tables in input
// order.
func detectPairs(tabs []*tables.Table, keys []string) ([]*reconcile.Report, error) {
	reports := []*reconcile.Report{}
	for i := 0; i < len(tabs); i++ {
		for j := i + 1; j < len(tabs); j++ {
			report, err := reconcile.Detect(tabs[i], tabs[j], keys)
			if err != nil {
				return nil, err
			}
			reports = append(reports, report)
		}
	}
	return reports, nil
}
