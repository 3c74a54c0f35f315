package fileio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrWorkbookLoad covers malformed or unreadable spreadsheet bytes and
// unsupported extensions. Fatal for the whole source.
var ErrWorkbookLoad = errors.New("workbook load failed")

// Workbook is a fully loaded spreadsheet: every sheet's cells as strings,
// in worksheet order. Read-only after load, so concurrent readers are fine.
type Workbook struct {
	name   string
	sheets []string
	rows   map[string][][]string
}

// Name returns the file name the workbook was loaded from.
func (w *Workbook) Name() string { return w.name }

// SheetNames lists the sheets in workbook order.
func (w *Workbook) SheetNames() []string {
	out := make([]string, len(w.sheets))
	copy(out, w.sheets)
	return out
}

// Rows returns the cell grid of one sheet. Row and column indexes are
// zero-based here; callers addressing spreadsheet coordinates add 1.
func (w *Workbook) Rows(sheet string) ([][]string, error) {
	rows, ok := w.rows[sheet]
	if !ok {
		return nil, fmt.Errorf("unknown sheet %q", sheet)
	}
	return rows, nil
}

// Open loads a workbook from disk, picking the parser by extension.
func Open(path string) (*Workbook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorkbookLoad, err)
	}
	defer f.Close()
	return OpenReader(f, filepath.Base(path))
}

// OpenReader loads a workbook from any reader. The filename is only used
// for extension dispatch and, for CSV, the synthetic sheet name.
func OpenReader(r io.Reader, filename string) (*Workbook, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorkbookLoad, err)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return loadXLSX(b, filename)
	case ".xls":
		return loadXLS(b, filename)
	case ".csv":
		return loadCSV(b, filename)
	default:
		return nil, fmt.Errorf("%w: unsupported file %q", ErrWorkbookLoad, filename)
	}
}

// csvSheetName derives the single sheet's name from the file name.
func csvSheetName(filename string) string {
	base := filepath.Base(filename)
	if name := strings.TrimSuffix(base, filepath.Ext(base)); name != "" {
		return name
	}
	return "Sheet1"
}
