package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	sheetChecklists = "Checklists"
	sheetProblems   = "Problemas"
)

// EncodeXLSX encodes the report tables as a workbook: the checklist
// sheet always, the problems sheet only when it has rows.
func EncodeXLSX(tables ReportTables) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetChecklists); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeSheet(f, sheetChecklists, tables.Checklists); err != nil {
		return nil, err
	}

	if len(tables.Problems.Rows) > 0 {
		if _, err := f.NewSheet(sheetProblems); err != nil {
			return nil, fmt.Errorf("create problems sheet: %w", err)
		}
		if err := writeSheet(f, sheetProblems, tables.Problems); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, t Table) error {
	rows := append([][]string{t.Header}, t.Rows...)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	return nil
}
