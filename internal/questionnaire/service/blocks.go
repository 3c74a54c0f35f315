package service

import (
	"strings"

	"scorecard-service/internal/questionnaire/model"
)

// buildBlocks lays the fixed SDG grid over a sheet: seventeen blocks
// opening at the marker rows in column B, each ending right before the
// next marker, the last one at the last row. Cell content is not consulted
// beyond a sanity check of the title cell.
func (e *Extractor) buildBlocks(sheet string, rows [][]string) []model.Block {
	blocks := make([]model.Block, 0, len(markerRows))
	for i, start := range markerRows {
		end := len(rows)
		if i < len(markerRows)-1 {
			end = markerRows[i+1] - 1
		}
		blocks = append(blocks, model.Block{Sdg: i + 1, Start: start, End: end})
	}

	if title := cellAt(rows, titleRow, markerCol); !strings.Contains(strings.ToLower(title), "sdg") {
		e.log.Warn().Str("sheet", sheet).Str("found", title).Msg("title cell does not mention SDG")
	}
	return blocks
}

// sdgForRow reports the SDG whose block covers the 1-based row, or 0 when
// the row sits outside every block.
func sdgForRow(blocks []model.Block, row int) int {
	for _, b := range blocks {
		if row >= b.Start && row <= b.End {
			return b.Sdg
		}
	}
	return 0
}
