// Package spreadsheet reads the first worksheet of an uploaded workbook into
// header-keyed rows. Only the first sheet is considered; the first row is the
// header row and every following row becomes one Row.
package spreadsheet

import (
	"io"
	"strings"

	"github.com/go-faster/errors"
	"github.com/xuri/excelize/v2"
)

var (
	ErrNoWorksheet   = errors.New("no worksheet found")
	ErrEmptySheet    = errors.New("worksheet is empty")
	ErrMissingHeader = errors.New("worksheet has no header row")
)

// Row maps a lower-cased, trimmed column header to the cell value of one data
// row. Cells missing from a short row read as "".
type Row map[string]string

// Sheet is the parsed first worksheet of a workbook.
type Sheet struct {
	// Header holds the lower-cased, trimmed header cells in column order.
	Header []string
	Rows   []Row
}

// Read parses an xlsx workbook from r.
func Read(r io.Reader) (*Sheet, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open workbook")
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, ErrNoWorksheet
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read worksheet")
	}
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}

	header := make([]string, 0, len(rows[0]))
	for _, cell := range rows[0] {
		header = append(header, normalizeHeader(cell))
	}
	if len(header) == 0 {
		return nil, ErrMissingHeader
	}

	sheet := &Sheet{Header: header, Rows: make([]Row, 0, len(rows)-1)}
	for _, cells := range rows[1:] {
		row := make(Row, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			row[name] = cellValue(cells, i)
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet, nil
}

func normalizeHeader(header string) string {
	return strings.ToLower(strings.TrimSpace(header))
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
