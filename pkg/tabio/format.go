// Package tabio loads, writes, and discovers tabular dataset files.
// The supported formats are a closed set keyed by file extension:
// comma-separated text, tab-separated text, and Excel workbooks.
package tabio

import (
	"path/filepath"
	"strings"
)

// Format identifies a supported tabular file format.
type Format int

const (
	// FormatCSV is comma-separated values (.csv).
	FormatCSV Format = iota
	// FormatTSV is tab-separated values (.tsv).
	FormatTSV
	// FormatXLSX is an Excel workbook (.xlsx).
	FormatXLSX
)

// Formats returns every supported format in listing order.
func Formats() []Format {
	return []Format{FormatCSV, FormatTSV, FormatXLSX}
}

// String returns the canonical name of the format.
func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatTSV:
		return "tsv"
	case FormatXLSX:
		return "xlsx"
	default:
		return "unknown"
	}
}

// Extension returns the format's file extension, dot included.
func (f Format) Extension() string {
	switch f {
	case FormatCSV:
		return ".csv"
	case FormatTSV:
		return ".tsv"
	case FormatXLSX:
		return ".xlsx"
	default:
		return ""
	}
}

// Description returns a short human-readable description for listings.
func (f Format) Description() string {
	switch f {
	case FormatCSV:
		return "Comma-separated values"
	case FormatTSV:
		return "Tab-separated values"
	case FormatXLSX:
		return "Excel workbook (OOXML)"
	default:
		return "Unknown format"
	}
}

// delimiter returns the default field delimiter for delimited text
// formats, or zero for formats that have none.
func (f Format) delimiter() rune {
	switch f {
	case FormatCSV:
		return ','
	case FormatTSV:
		return '\t'
	default:
		return 0
	}
}

// FormatForPath maps a path to its format by extension. The match is
// case-insensitive; unknown extensions, including legacy .xls, report
// false.
func FormatForPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, true
	case ".tsv":
		return FormatTSV, true
	case ".xlsx":
		return FormatXLSX, true
	default:
		return 0, false
	}
}
