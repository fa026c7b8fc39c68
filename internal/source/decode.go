package source

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/extrame/xls"
	"github.com/ulikunitz/xz"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

// maxXLSRows caps how many rows are read from a legacy workbook.
const maxXLSRows = 100000

// Decode turns file contents into a cell grid, choosing the decoder from the
// name's extension. A trailing ".xz" is decompressed first.
func Decode(name string, data []byte) ([][]string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".xz" {
		r, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("open xz stream: %w", err)
		}
		plain, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("decompress xz: %w", err)
		}
		return Decode(strings.TrimSuffix(name, filepath.Ext(name)), plain)
	}

	switch ext {
	case ".csv", ".txt", "":
		return decodeCSV(data)
	case ".xlsx", ".xlsm":
		return decodeXLSX(data)
	case ".xls":
		return decodeXLS(data)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// decodeCSV reads comma-separated data. Input that is not valid UTF-8 is
// treated as ISO-8859-1, which is what spreadsheet exports commonly produce.
func decodeCSV(data []byte) ([][]string, error) {
	if !utf8.Valid(data) {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("decode latin-1: %w", err)
		}
		data = decoded
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return rows, nil
}

func decodeXLSX(data []byte) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = file.Close() }()

	sheet := file.GetSheetName(0)
	if sheet == "" {
		return nil, ErrNoWorksheet
	}
	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func decodeXLS(data []byte) (grid [][]string, err error) {
	// xls panics on some malformed input.
	defer func() {
		if r := recover(); r != nil {
			grid, err = nil, fmt.Errorf("read legacy workbook: %v", r)
		}
	}()
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, ErrNoWorksheet
	}
	n := min(int(sheet.MaxRow)+1, maxXLSRows)
	return sheetGrid(n, func(i int) (xlsRow, bool) { return storedRow(sheet, i) }), nil
}

// xlsRow is the read side of *xls.Row. LastCol is exclusive.
type xlsRow interface {
	FirstCol() int
	LastCol() int
	Col(i int) string
}

// storedRow returns row i of sheet. The xls package only keeps rows that
// hold cells and panics when asked for any other.
func storedRow(sheet *xls.WorkSheet, i int) (row xlsRow, ok bool) {
	defer func() {
		if recover() != nil {
			row, ok = nil, false
		}
	}()
	return sheet.Row(i), true
}

// sheetGrid reads the first n rows of a worksheet. Rows the sheet does not
// store come back empty, and cells left of a row's first column are blank.
func sheetGrid(n int, rowAt func(i int) (xlsRow, bool)) [][]string {
	grid := make([][]string, n)
	for i := range n {
		row, ok := rowAt(i)
		if !ok {
			continue
		}
		last := row.LastCol()
		if last <= 0 {
			continue
		}
		cells := make([]string, last)
		for c := max(row.FirstCol(), 0); c < last; c++ {
			cells[c] = row.Col(c)
		}
		grid[i] = cells
	}
	return grid
}
