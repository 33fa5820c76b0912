// Package formats provides the formats command implementation.
package formats

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/tabfuse/internal/cmd/output"
	"github.com/agentstation/tabfuse/internal/cmd/table"
	"github.com/agentstation/tabfuse/pkg/tabio"
)

// AppContext defines the interface that the formats command needs from the app.
// This allows for better testability and decoupling from the full app.
type AppContext interface {
	OutputFormat() string
}

// NewCommand creates the formats command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported file formats",
		Long: `Formats lists the file formats tabfuse can read and write, with the
extension each one is recognized by during directory discovery.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runFormats(app)
		},
	}
}

// formatInfo is the structured view of one supported format.
type formatInfo struct {
	Name        string `json:"name" yaml:"name"`
	Extension   string `json:"extension" yaml:"extension"`
	Description string `json:"description" yaml:"description"`
}

// runFormats renders the supported formats in the configured output format.
func runFormats(app AppContext) error {
	formatter := output.NewFormatter(output.Format(app.OutputFormat()))
	formats := tabio.Formats()

	if app.OutputFormat() == "json" || app.OutputFormat() == "yaml" {
		infos := make([]formatInfo, 0, len(formats))
		for _, format := range formats {
			infos = append(infos, formatInfo{
				Name:        format.String(),
				Extension:   format.Extension(),
				Description: format.Description(),
			})
		}
		return formatter.Format(os.Stdout, infos)
	}

	return formatter.Format(os.Stdout, table.FormatsToTableData(formats))
}
