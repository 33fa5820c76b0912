package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/tabfuse/pkg/reconcile"
	"github.com/agentstation/tabfuse/pkg/tabio"
)

func TestReportsToTableData(t *testing.T) {
	reports := []*reconcile.Report{
		{
			LeftSource:  "a.csv",
			RightSource: "b.csv",
			Columns:     []string{"Age", "City"},
			Rows:        4,
			Conflicts: []reconcile.Conflict{
				{Keys: []string{"P001"}, Column: "Age", Left: "40", Right: "41", LeftSource: "a.csv", RightSource: "b.csv"},
			},
			Verified: true,
		},
		{
			LeftSource:  "a.csv",
			RightSource: "c.csv",
			Verified:    false,
		},
	}

	data := ReportsToTableData(reports)

	assert.Equal(t, []string{"LEFT", "RIGHT", "COLUMNS", "ROWS", "CONFLICTS", "STATUS"}, data.Headers)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, []string{"a.csv", "b.csv", "2", "4", "1", "conflicts"}, data.Rows[0])
	assert.Equal(t, []string{"a.csv", "c.csv", "0", "0", "0", "not verified"}, data.Rows[1])
	assert.Len(t, data.ColumnAlignment, len(data.Headers))
}

func TestReportStatus(t *testing.T) {
	clean := &reconcile.Report{Verified: true}
	assert.Equal(t, "clean", reportStatus(clean))

	conflicted := &reconcile.Report{
		Verified:  true,
		Conflicts: []reconcile.Conflict{{Column: "Age"}},
	}
	assert.Equal(t, "conflicts", reportStatus(conflicted))

	unverified := &reconcile.Report{Verified: false}
	assert.Equal(t, "not verified", reportStatus(unverified))
}

func TestConflictsToTableData(t *testing.T) {
	reports := []*reconcile.Report{
		{
			LeftSource:  "a.csv",
			RightSource: "b.csv",
			Verified:    true,
			Conflicts: []reconcile.Conflict{
				{Keys: []string{"P001", "2"}, Column: "Age", Left: "40", Right: "41", LeftSource: "a.csv", RightSource: "b.csv"},
				{Keys: []string{"P002", "1"}, Column: "City", Left: "Berlin", Right: "Bonn", LeftSource: "a.csv", RightSource: "b.csv"},
			},
		},
	}

	data := ConflictsToTableData(reports)

	assert.Equal(t, []string{"KEY", "COLUMN", "LEFT", "RIGHT", "SOURCES"}, data.Headers)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, []string{"P001/2", "Age", "40", "41", "a.csv vs b.csv"}, data.Rows[0])
	assert.Equal(t, []string{"P002/1", "City", "Berlin", "Bonn", "a.csv vs b.csv"}, data.Rows[1])
}

func TestFormatsToTableData(t *testing.T) {
	data := FormatsToTableData(tabio.Formats())

	assert.Equal(t, []string{"FORMAT", "EXTENSION", "DESCRIPTION"}, data.Headers)
	require.Len(t, data.Rows, 3)
	assert.Equal(t, "csv", data.Rows[0][0])
	assert.Equal(t, ".csv", data.Rows[0][1])
	for _, row := range data.Rows {
		assert.NotEmpty(t, row[2])
	}
}
