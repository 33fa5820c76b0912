package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/tabfuse/cmd/tabfuse/cmd/check"
	"github.com/agentstation/tabfuse/cmd/tabfuse/cmd/formats"
	"github.com/agentstation/tabfuse/cmd/tabfuse/cmd/merge"
)

// CreateMergeCommand creates the merge command with app dependencies.
func (a *App) CreateMergeCommand() *cobra.Command {
	return merge.NewCommand(a)
}

// CreateCheckCommand creates the check command with app dependencies.
func (a *App) CreateCheckCommand() *cobra.Command {
	return check.NewCommand(a)
}

// CreateFormatsCommand creates the formats command with app dependencies.
func (a *App) CreateFormatsCommand() *cobra.Command {
	return formats.NewCommand(a)
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("tabfuse %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
