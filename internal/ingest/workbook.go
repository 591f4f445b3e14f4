// Package ingest turns an uploaded manuscript manifest into curated
// article records: workbook parsing, header normalization, schema
// validation, and record derivation.
package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row is one manifest row keyed by header cell. Values are raw cell
// contents; date cells may be spreadsheet serial numbers rendered as
// decimal strings.
type Row map[string]string

// ReadWorkbook reads the first sheet of an .xlsx manifest into rows keyed
// by the header row. Cells are read raw so that date serials survive
// instead of arriving pre-formatted. Missing trailing cells become empty
// strings.
func ReadWorkbook(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	cells, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(cells) == 0 {
		return nil, nil
	}

	header := cells[0]
	rows := make([]Row, 0, len(cells)-1)
	for _, line := range cells[1:] {
		row := make(Row, len(header))
		for i, key := range header {
			if strings.TrimSpace(key) == "" {
				continue
			}
			if i < len(line) {
				row[key] = line[i]
			} else {
				row[key] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
