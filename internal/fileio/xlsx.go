package fileio

import (
	"bytes"
	"fmt"

	excelize "github.com/xuri/excelize/v2"
)

func loadXLSX(b []byte, filename string) (*Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: xlsx: %v", ErrWorkbookLoad, err)
	}
	defer f.Close()

	wb := &Workbook{
		name: filename,
		rows: make(map[string][][]string),
	}
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("%w: xlsx sheet %q: %v", ErrWorkbookLoad, sheet, err)
		}
		wb.sheets = append(wb.sheets, sheet)
		wb.rows[sheet] = rows
	}
	return wb, nil
}
