// Package export writes enumerated chains to an acceptance-test
// workbook: one sheet per test with its step table, preceded by a
// summary sheet mapping tests to requirement coverage.
package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/reqchain/reqchain/network"
	"github.com/reqchain/reqchain/nlp"
	"github.com/reqchain/reqchain/store"
)

var stepColumns = []string{"Step", "Action", "Observation", "Requirements", "Priority"}

// WriteWorkbook writes every chain as an acceptance test to an xlsx
// workbook at path. requirementCount sizes the summary sheet's
// coverage columns.
func WriteWorkbook(path string, s *store.Store, chains []network.Chain, requirementCount int) error {
	f := excelize.NewFile()
	defer f.Close()

	// The default sheet becomes the summary so it sits first in the
	// workbook.
	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return fmt.Errorf("export: renaming summary sheet: %w", err)
	}
	if err := writeSummaryHeader(f, requirementCount); err != nil {
		return err
	}

	for i, chain := range chains {
		testNumber := i + 1
		if err := writeTestSheet(f, s, testNumber, chain); err != nil {
			return err
		}
		if err := writeSummaryRow(f, s, testNumber, chain, requirementCount); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("export: saving workbook: %w", err)
	}
	return nil
}

// writeTestSheet adds one "Test #N" sheet with a step row per chain
// link.
func writeTestSheet(f *excelize.File, s *store.Store, testNumber int, chain network.Chain) error {
	sheet := fmt.Sprintf("Test #%d", testNumber)
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("export: creating sheet %q: %w", sheet, err)
	}

	for col, name := range stepColumns {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("export: writing header of %q: %w", sheet, err)
		}
	}

	for step, key := range chain {
		rel, ok := s.Get(key)
		if !ok {
			return fmt.Errorf("export: chain references unknown relationship key %q", key)
		}
		values := []string{
			strconv.Itoa(step + 1),
			actionText(rel),
			observationText(rel),
			requirementsText(rel),
			rel.HighestPriority(),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, step+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("export: writing step %d of %q: %w", step+1, sheet, err)
			}
		}
	}
	return nil
}

func writeSummaryHeader(f *excelize.File, requirementCount int) error {
	for i := 0; i < requirementCount; i++ {
		cell, _ := excelize.CoordinatesToCellName(i+2, 1)
		if err := f.SetCellValue("Summary", cell, fmt.Sprintf("Req #%d", i+1)); err != nil {
			return fmt.Errorf("export: writing summary header: %w", err)
		}
	}
	return nil
}

// writeSummaryRow marks which requirements contribute to a test: "X"
// when any relationship in the chain carries the requirement number,
// "-" otherwise.
func writeSummaryRow(f *excelize.File, s *store.Store, testNumber int, chain network.Chain, requirementCount int) error {
	covered := make(map[int]bool)
	for _, key := range chain {
		rel, ok := s.Get(key)
		if !ok {
			continue
		}
		for _, number := range rel.Requirements {
			covered[number] = true
		}
	}

	row := testNumber + 1
	cell, _ := excelize.CoordinatesToCellName(1, row)
	if err := f.SetCellValue("Summary", cell, fmt.Sprintf("Test #%d", testNumber)); err != nil {
		return fmt.Errorf("export: writing summary row: %w", err)
	}
	for i := 0; i < requirementCount; i++ {
		mark := "-"
		if covered[i+1] {
			mark = "X"
		}
		cell, _ := excelize.CoordinatesToCellName(i+2, row)
		if err := f.SetCellValue("Summary", cell, mark); err != nil {
			return fmt.Errorf("export: writing summary row: %w", err)
		}
	}
	return nil
}

// actionText is the surface text of all three groups in order.
func actionText(rel *store.Relationship) string {
	var parts []string
	for _, group := range rel.Groups {
		parts = append(parts, nlp.Texts(group)...)
	}
	return strings.Join(parts, " ")
}

// observationText is the object group followed by the predicate group,
// the expected state once the action ran.
func observationText(rel *store.Relationship) string {
	object := strings.Join(nlp.Texts(rel.Groups[2]), " ")
	predicate := strings.Join(nlp.Texts(rel.Groups[1]), " ")
	return object + " " + predicate
}

func requirementsText(rel *store.Relationship) string {
	parts := make([]string, len(rel.Requirements))
	for i, n := range rel.Requirements {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
