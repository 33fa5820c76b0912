package tabio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/tabfuse/pkg/tabio"
)

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		format tabio.Format
		ok     bool
	}{
		{"csv", "data/visits.csv", tabio.FormatCSV, true},
		{"tsv", "visits.tsv", tabio.FormatTSV, true},
		{"xlsx", "visits.xlsx", tabio.FormatXLSX, true},
		{"uppercase extension", "VISITS.CSV", tabio.FormatCSV, true},
		{"mixed case extension", "visits.Xlsx", tabio.FormatXLSX, true},
		{"legacy xls", "visits.xls", 0, false},
		{"text file", "notes.txt", 0, false},
		{"no extension", "visits", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, ok := tabio.FormatForPath(tt.path)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.format, format)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	t.Run("names", func(t *testing.T) {
		assert.Equal(t, "csv", tabio.FormatCSV.String())
		assert.Equal(t, "tsv", tabio.FormatTSV.String())
		assert.Equal(t, "xlsx", tabio.FormatXLSX.String())
		assert.Equal(t, "unknown", tabio.Format(42).String())
	})

	t.Run("extensions", func(t *testing.T) {
		assert.Equal(t, ".csv", tabio.FormatCSV.Extension())
		assert.Equal(t, ".tsv", tabio.FormatTSV.Extension())
		assert.Equal(t, ".xlsx", tabio.FormatXLSX.Extension())
		assert.Equal(t, "", tabio.Format(42).Extension())
	})

	t.Run("listing", func(t *testing.T) {
		formats := tabio.Formats()
		require.Len(t, formats, 3)
		for _, f := range formats {
			assert.NotEmpty(t, f.Description())

			got, ok := tabio.FormatForPath("table" + f.Extension())
			require.True(t, ok)
			assert.Equal(t, f, got)
		}
	})
}
