// Package check provides the check command implementation.
package check

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/tabfuse/cmd/application"
)

// NewCommand creates the check command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var flags *Flags

	cmd := &cobra.Command{
		Use:     "check",
		GroupID: "core",
		Short:   "Verify tables pairwise for conflicting values",
		Long: `Check loads every input table and compares each pair of them on their
shared columns, matching rows by the entity key column.

Numeric cells compare by value, text cells compare after normalization
(case folding, umlaut expansion, whitespace cleanup), and missing cells
never conflict. The command exits non-zero when any pair disagrees, so
it can gate a merge in scripts.`,
		Example: `  tabfuse check -i visit1.csv -i visit2.xlsx
  tabfuse check -d ./exports
  tabfuse check -d ./exports --key SampleID --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ExecuteCheck(cmd.Context(), app, flags)
		},
	}

	// Add check-specific flags
	flags = addCheckFlags(cmd)

	return cmd
}

// Flags holds the check command flags.
type Flags struct {
	Inputs []string
	Dir    string
	Key    string
}

// addCheckFlags registers the check-specific flags.
func addCheckFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}

	cmd.Flags().StringArrayVarP(&flags.Inputs, "input", "i", nil, "input file to verify (repeatable)")
	cmd.Flags().StringVarP(&flags.Dir, "dir", "d", "", "directory to discover input files in")
	cmd.Flags().StringVar(&flags.Key, "key", "", `entity key column (default "Patient")`)

	return flags
}
