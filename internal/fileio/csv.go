package fileio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// loadCSV reads a CSV as a one-sheet workbook named after the file,
// auto-detecting the encoding. UTF-8 (with or without BOM) and
// Windows-1251 are handled.
func loadCSV(b []byte, filename string) (*Workbook, error) {
	b = bytes.TrimPrefix(b, utf8BOM)

	sniff := b
	if len(sniff) > 2048 {
		sniff = sniff[:2048]
	}
	cs := "utf-8"
	if len(sniff) > 0 {
		if det, err := chardet.NewTextDetector().DetectBest(sniff); err == nil && det != nil {
			cs = strings.ToLower(det.Charset)
		}
	}

	var src io.Reader = bytes.NewReader(b)
	switch cs {
	case "windows-1251", "cp1251":
		src = transform.NewReader(src, charmap.Windows1251.NewDecoder())
	default:
		// assume UTF-8
	}

	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: csv: %v", ErrWorkbookLoad, err)
		}
		rows = append(rows, rec)
	}

	sheet := csvSheetName(filename)
	return &Workbook{
		name:   filename,
		sheets: []string{sheet},
		rows:   map[string][][]string{sheet: rows},
	}, nil
}
