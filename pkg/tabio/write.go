package tabio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/agentstation/tabfuse/pkg/constants"
	"github.com/agentstation/tabfuse/pkg/errors"
	"github.com/agentstation/tabfuse/pkg/logging"
	"github.com/agentstation/tabfuse/pkg/tables"
)

// Write serializes the table to path, choosing the format from the
// destination extension. Cells keep their raw text; missing cells
// serialize as empty strings.
func Write(t *tables.Table, path string, opts ...Option) error {
	format, ok := FormatForPath(path)
	if !ok {
		return errors.NewUnsupportedFormatError(path, filepath.Ext(path))
	}

	cfg := apply(opts)

	var err error
	switch format {
	case FormatXLSX:
		err = writeXLSX(t, path, cfg)
	default:
		err = writeDelimited(t, path, format, cfg)
	}
	if err != nil {
		return err
	}

	logging.Debug().
		Str("file", path).
		Str("format", format.String()).
		Int("columns", t.NumColumns()).
		Int("rows", t.NumRows()).
		Msg("Wrote table")

	return nil
}

// writeDelimited encodes CSV and TSV files.
func writeDelimited(t *tables.Table, path string, format Format, cfg config) error {
	var buf bytes.Buffer
	buf.Grow(constants.WriteBufferSize)

	w := csv.NewWriter(&buf)
	w.Comma = format.delimiter()
	if cfg.delimiter != 0 {
		w.Comma = cfg.delimiter
	}

	if err := w.Write(t.Columns()); err != nil {
		return errors.WrapIO("write", path, err)
	}
	record := make([]string, t.NumColumns())
	for i := 0; i < t.NumRows(); i++ {
		for j, cell := range t.Row(i) {
			record[j] = cell.Raw()
		}
		if err := w.Write(record); err != nil {
			return errors.WrapIO("write", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.WrapIO("write", path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// writeXLSX encodes an Excel workbook with a single sheet.
func writeXLSX(t *tables.Table, path string, cfg config) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := cfg.sheet
	if sheet == "" {
		sheet = constants.DefaultXLSXSheet
	}
	if sheet != constants.DefaultXLSXSheet {
		if err := f.SetSheetName(constants.DefaultXLSXSheet, sheet); err != nil {
			return errors.WrapIO("write", path, err)
		}
	}

	header := make([]interface{}, t.NumColumns())
	for i, name := range t.Columns() {
		header[i] = name
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.WrapIO("write", path, err)
	}

	cells := make([]interface{}, t.NumColumns())
	for i := 0; i < t.NumRows(); i++ {
		for j, cell := range t.Row(i) {
			cells[j] = cell.Raw()
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			return errors.WrapIO("write", path, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
