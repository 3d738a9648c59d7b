package ingest

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXReader extracts requirement lines from the first column of the
// first sheet of a workbook.
type XLSXReader struct{}

func (r *XLSXReader) SupportedFormats() []string { return []string{"xlsx"} }

func (r *XLSXReader) ReadLines(ctx context.Context, path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("ingest: workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("ingest: reading sheet %q: %w", sheets[0], err)
	}

	var lines []string
	for _, row := range rows {
		if len(row) > 0 {
			lines = append(lines, row[0])
		}
	}
	return lines, nil
}
