// Legacy .xls reading: the column count is fixed up front and every cell
// up to it is read, since per-row LastCol is unreliable in these files.
package fileio

import (
	"bytes"
	"fmt"
	"strings"

	xls "github.com/extrame/xls"
)

const probeMax = 512

// sheetWidth probes a sensible number of columns on every row and keeps
// the widest non-empty extent.
func sheetWidth(sheet *xls.WorkSheet) int {
	maxCols := 0
	for i := 0; i <= int(sheet.MaxRow); i++ {
		r := sheet.Row(i)
		if r == nil {
			continue
		}
		for j := 0; j < probeMax; j++ {
			if normalizeCell(r.Col(j)) != "" && j+1 > maxCols {
				maxCols = j + 1
			}
		}
	}
	if maxCols == 0 {
		maxCols = 1
	}
	return maxCols
}

// normalizeCell cleans raw cell text: stray NULs dropped, edges trimmed.
func normalizeCell(v string) string {
	v = strings.ReplaceAll(v, "\x00", "")
	return strings.TrimSpace(v)
}

func loadXLS(b []byte, filename string) (*Workbook, error) {
	// UTF-8 first, then the single-byte encodings legacy exports use
	var book *xls.WorkBook
	var lastErr error
	for _, ch := range []string{"utf-8", "windows-1251", "koi8-r"} {
		wb, err := xls.OpenReader(bytes.NewReader(b), ch)
		if err == nil && wb != nil {
			book, lastErr = wb, nil
			break
		}
		lastErr = err
	}
	if book == nil {
		if lastErr == nil {
			lastErr = fmt.Errorf("xls: failed to open workbook")
		}
		return nil, fmt.Errorf("%w: %v", ErrWorkbookLoad, lastErr)
	}

	wb := &Workbook{
		name: filename,
		rows: make(map[string][][]string),
	}
	for i := 0; i < book.NumSheets(); i++ {
		sheet := book.GetSheet(i)
		if sheet == nil {
			continue
		}
		width := sheetWidth(sheet)
		rows := make([][]string, 0, int(sheet.MaxRow)+1)
		for r := 0; r <= int(sheet.MaxRow); r++ {
			cols := make([]string, width)
			if row := sheet.Row(r); row != nil {
				for c := 0; c < width; c++ {
					cols[c] = normalizeCell(row.Col(c))
				}
			}
			rows = append(rows, cols)
		}
		wb.sheets = append(wb.sheets, sheet.Name)
		wb.rows[sheet.Name] = rows
	}
	if len(wb.sheets) == 0 {
		return nil, fmt.Errorf("%w: xls: no sheets", ErrWorkbookLoad)
	}
	return wb, nil
}
