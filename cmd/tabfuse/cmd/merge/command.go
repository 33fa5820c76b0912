// Package merge provides the merge command implementation.
package merge

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/tabfuse/cmd/application"
)

// NewCommand creates the merge command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var flags *Flags

	cmd := &cobra.Command{
		Use:     "merge",
		GroupID: "core",
		Short:   "Merge tables into one consolidated table",
		Long: `Merge stacks every input table and coalesces each entity's cells to the
first known value.

Inputs come from repeated --input flags, from a --dir to discover files
in, or both. The entity key column groups rows across tables; rows whose
key cell is missing are dropped. A provenance column records which table
contributed each entity's first record.

With --check, every pair of inputs is verified for conflicting values
before merging, and the --policy decides what happens when a pair
disagrees:

  fail      abort without writing anything
  prompt    ask on each conflicting pair
  override  keep the first known value and continue`,
		Example: `  tabfuse merge -i visit1.csv -i visit2.xlsx -o merged.csv
  tabfuse merge -d ./exports -o merged.xlsx
  tabfuse merge -d ./exports -o merged.csv --check --policy fail
  tabfuse merge -i a.csv -i b.csv -o merged.csv --no-source-column`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ExecuteMerge(cmd.Context(), app, flags)
		},
	}

	// Add merge-specific flags
	flags = addMergeFlags(cmd)

	return cmd
}

// Flags holds the merge command flags. Empty string fields fall back to
// the application configuration when the flag was not given.
type Flags struct {
	Inputs         []string
	Dir            string
	Output         string
	Key            string
	Policy         string
	SourceColumn   string
	NoSourceColumn bool
	Check          bool
}

// addMergeFlags registers the merge-specific flags.
func addMergeFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}

	cmd.Flags().StringArrayVarP(&flags.Inputs, "input", "i", nil, "input file to merge (repeatable)")
	cmd.Flags().StringVarP(&flags.Dir, "dir", "d", "", "directory to discover input files in")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "path the merged table is written to")
	cmd.Flags().StringVar(&flags.Key, "key", "", `entity key column (default "Patient")`)
	cmd.Flags().StringVar(&flags.Policy, "policy", "", `conflict policy: fail, prompt, or override (default "override")`)
	cmd.Flags().StringVar(&flags.SourceColumn, "source-column", "", `provenance column name (default "TABLENAME")`)
	cmd.Flags().BoolVar(&flags.NoSourceColumn, "no-source-column", false, "omit the provenance column from the merged table")
	cmd.Flags().BoolVar(&flags.Check, "check", false, "verify every pair of inputs before merging")

	// Nothing useful happens without somewhere to write the result
	_ = cmd.MarkFlagRequired("output")

	return flags
}
