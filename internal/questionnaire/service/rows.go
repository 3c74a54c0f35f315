package service

import (
	"scorecard-service/internal/questionnaire/model"
)

// cellAt reads the cell at 1-based row/col, "" when out of range.
func cellAt(rows [][]string, row, col int) string {
	if row < 1 || row > len(rows) {
		return ""
	}
	r := rows[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return r[col-1]
}

// assembleRows walks the data rows below the header and builds one record
// per non-empty row that falls inside an SDG block. Records whose optional
// fields are all empty are dropped. Output order follows worksheet order.
func (e *Extractor) assembleRows(sheet string, rows [][]string, headerRow int, cols model.HeaderMap, blocks []model.Block, sectors map[int]string) []model.QuestionRecord {
	records := make([]model.QuestionRecord, 0, len(rows))
	perSdg := make(map[int]int)

	cell := func(row int, role string) string {
		col, ok := cols[role]
		if !ok {
			return ""
		}
		return NormalizeText(cellAt(rows, row, col))
	}

	for r := headerRow + 1; r <= len(rows); r++ {
		if rowEmpty(rows[r-1]) {
			continue
		}
		sdg := sdgForRow(blocks, r)
		if sdg == 0 {
			continue
		}
		sector := sectors[sdg]
		if sector == "" {
			e.log.Warn().Str("sheet", sheet).Int("row", r).Int("sdg", sdg).Msg("row has no sector")
		}

		scoring := cell(r, "scoring")
		score := e.extractScore(sheet, scoring)

		rec := model.QuestionRecord{
			SdgNumber:               sdg,
			SdgDescription:          sdgDescriptions[sdg],
			Sector:                  sector,
			SdgTarget:               cell(r, "sdg_target"),
			SustainabilityDimension: cell(r, "sustainability_dimension"),
			KPI:                     cell(r, "kpi"),
			Question:                cell(r, "question"),
			Score:                   score,
			ScoreDescription:        deriveScoreDescription(scoring, score),
			Source:                  cell(r, "source"),
			Notes:                   cell(r, "notes"),
			Status:                  cell(r, "status"),
			Comment:                 cell(r, "comment"),
		}
		if emptyRecord(rec) {
			continue
		}

		if perSdg[sdg] < 3 {
			perSdg[sdg]++
			e.log.Debug().Str("sheet", sheet).Int("row", r).Int("sdg", sdg).Str("sector", sector).Msg("row kept")
		}
		records = append(records, rec)
	}

	e.log.Info().Str("sheet", sheet).Int("rows", len(records)).Msg("questionnaire rows collected")
	return records
}

// rowEmpty reports whether every cell in the raw row is blank.
func rowEmpty(cells []string) bool {
	for _, c := range cells {
		if NormalizeText(c) != "" {
			return false
		}
	}
	return true
}

// emptyRecord applies the retention rule: a record carrying nothing beyond
// its SDG coordinates is dropped. SdgTarget deliberately does not count.
func emptyRecord(rec model.QuestionRecord) bool {
	return rec.SustainabilityDimension == "" &&
		rec.KPI == "" &&
		rec.Question == "" &&
		rec.Score == nil &&
		rec.ScoreDescription == "" &&
		rec.Source == "" &&
		rec.Notes == "" &&
		rec.Status == "" &&
		rec.Comment == ""
}
