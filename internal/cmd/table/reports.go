// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"fmt"
	"strings"

	"github.com/agentstation/tabfuse/pkg/reconcile"
	"github.com/agentstation/tabfuse/pkg/tabio"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// ReportsToTableData summarizes pairwise comparison reports, one row
// per table pair.
func ReportsToTableData(reports []*reconcile.Report) Data {
	headers := []string{"LEFT", "RIGHT", "COLUMNS", "ROWS", "CONFLICTS", "STATUS"}

	rows := make([][]string, 0, len(reports))
	for _, report := range reports {
		rows = append(rows, []string{
			report.LeftSource,
			report.RightSource,
			fmt.Sprintf("%d", len(report.Columns)),
			fmt.Sprintf("%d", report.Rows),
			fmt.Sprintf("%d", len(report.Conflicts)),
			reportStatus(report),
		})
	}

	return Data{
		Headers: headers,
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignDefault, // LEFT
			AlignDefault, // RIGHT
			AlignCenter,  // COLUMNS
			AlignCenter,  // ROWS
			AlignCenter,  // CONFLICTS
			AlignDefault, // STATUS
		},
	}
}

// ConflictsToTableData flattens the conflicts of the given reports into
// one table, a row per conflicting value.
func ConflictsToTableData(reports []*reconcile.Report) Data {
	headers := []string{"KEY", "COLUMN", "LEFT", "RIGHT", "SOURCES"}

	rows := [][]string{}
	for _, report := range reports {
		for _, c := range report.Conflicts {
			rows = append(rows, []string{
				strings.Join(c.Keys, "/"),
				c.Column,
				c.Left,
				c.Right,
				c.LeftSource + " vs " + c.RightSource,
			})
		}
	}

	return Data{
		Headers: headers,
		Rows:    rows,
	}
}

// FormatsToTableData lists the supported file formats.
func FormatsToTableData(formats []tabio.Format) Data {
	headers := []string{"FORMAT", "EXTENSION", "DESCRIPTION"}

	rows := make([][]string, 0, len(formats))
	for _, f := range formats {
		rows = append(rows, []string{f.String(), f.Extension(), f.Description()})
	}

	return Data{
		Headers: headers,
		Rows:    rows,
	}
}

// reportStatus renders a report's outcome for the STATUS column.
func reportStatus(report *reconcile.Report) string {
	switch {
	case !report.Verified:
		return "not verified"
	case report.HasConflicts():
		return "conflicts"
	default:
		return "clean"
	}
}
