package tabio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/agentstation/tabfuse/pkg/errors"
	"github.com/agentstation/tabfuse/pkg/logging"
	"github.com/agentstation/tabfuse/pkg/tables"
)

// Load reads one tabular file into a table. The format comes from the
// file extension; unknown extensions return an UnsupportedFormatError.
// The first row is the header. Data rows shorter than the header are
// padded with missing cells, and cells matching the NA token set load
// as missing. The table's source label is the file's base name.
func Load(path string, opts ...Option) (*tables.Table, error) {
	format, ok := FormatForPath(path)
	if !ok {
		return nil, errors.NewUnsupportedFormatError(path, filepath.Ext(path))
	}

	cfg := apply(opts)

	var (
		t   *tables.Table
		err error
	)
	switch format {
	case FormatXLSX:
		t, err = loadXLSX(path, cfg)
	default:
		t, err = loadDelimited(path, format, cfg)
	}
	if err != nil {
		return nil, err
	}

	logging.Debug().
		Str("file", path).
		Str("format", format.String()).
		Int("columns", t.NumColumns()).
		Int("rows", t.NumRows()).
		Msg("Loaded table")

	return t, nil
}

// loadDelimited decodes CSV and TSV files.
func loadDelimited(path string, format Format, cfg config) (*tables.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(stripBOM(bufio.NewReader(f)))
	r.FieldsPerRecord = -1
	r.Comma = format.delimiter()
	if cfg.delimiter != 0 {
		r.Comma = cfg.delimiter
	}

	header, err := r.Read()
	if err == io.EOF {
		return nil, errors.NewParseError(format.String(), path, "missing header row", nil)
	}
	if err != nil {
		return nil, errors.WrapParse(format.String(), path, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	b := tables.NewBuilder(header...).WithSource(filepath.Base(path))
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapParse(format.String(), path, err)
		}
		if len(record) > len(header) {
			line, column := r.FieldPos(len(header))
			return nil, &errors.ParseError{
				Format:  format.String(),
				File:    path,
				Line:    line,
				Column:  column,
				Message: fmt.Sprintf("record has %d fields, header has %d", len(record), len(header)),
			}
		}
		b.AppendRawRow(cfg.na, record...)
	}

	t, err := b.Build()
	if err != nil {
		return nil, errors.WrapParse(format.String(), path, err)
	}
	return t, nil
}

// stripBOM discards a UTF-8 byte order mark at the start of the stream.
func stripBOM(r *bufio.Reader) *bufio.Reader {
	b, err := r.Peek(3)
	if err == nil && len(b) == 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		_, _ = r.Discard(3)
	}
	return r
}

// loadXLSX decodes an Excel workbook, reading the configured sheet or
// the workbook's first sheet.
func loadXLSX(path string, cfg config) (*tables.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logging.Warn().Err(cerr).Str("file", path).Msg("Failed to close workbook")
		}
	}()

	sheet := cfg.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return nil, errors.NewParseError("xlsx", path, "workbook has no sheets", nil)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.WrapParse("xlsx", path, err)
	}
	if len(rows) == 0 {
		return nil, errors.NewParseError("xlsx", path, fmt.Sprintf("sheet %q has no header row", sheet), nil)
	}

	header := rows[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	b := tables.NewBuilder(header...).WithSource(filepath.Base(path))
	for i, row := range rows[1:] {
		if len(row) > len(header) {
			return nil, &errors.ParseError{
				Format:  "xlsx",
				File:    path,
				Line:    i + 2,
				Message: fmt.Sprintf("row has %d cells, header has %d", len(row), len(header)),
			}
		}
		b.AppendRawRow(cfg.na, row...)
	}

	t, err := b.Build()
	if err != nil {
		return nil, errors.WrapParse("xlsx", path, err)
	}
	return t, nil
}
