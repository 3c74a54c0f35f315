package service

import (
	"strings"

	"scorecard-service/internal/questionnaire/model"
)

// headerScanRows caps how deep the header scan goes.
const headerScanRows = 30

// locateHeader finds the row naming the question columns within the first
// headerScanRows rows. Cells are normalized and checked against the known
// header aliases; the row with the most recognized labels wins, the
// earliest one on a tie. Returns the 1-based header row and the role ->
// column map.
func (e *Extractor) locateHeader(sheet string, rows [][]string) (int, model.HeaderMap, error) {
	limit := min(headerScanRows, len(rows))

	bestRow := 0
	var bestCols model.HeaderMap
	for i := 0; i < limit; i++ {
		cols := make(model.HeaderMap)
		for j, raw := range rows[i] {
			key := strings.ToLower(NormalizeText(raw))
			if key == "" {
				continue
			}
			role, ok := headerRoles[key]
			if !ok {
				continue
			}
			if _, taken := cols[role]; !taken {
				cols[role] = j + 1
			}
		}
		if len(cols) > len(bestCols) {
			bestRow = i + 1
			bestCols = cols
		}
	}

	if bestRow == 0 || len(bestCols) == 0 {
		return 0, nil, model.ErrHeaderNotFound
	}

	if missing := missingRoles(bestCols); len(missing) > 0 {
		e.log.Warn().Str("sheet", sheet).Int("row", bestRow).Strs("missing", missing).Msg("header found, some columns missing")
	} else {
		e.log.Debug().Str("sheet", sheet).Int("row", bestRow).Msg("all header columns mapped")
	}
	return bestRow, bestCols, nil
}

// missingRoles lists the known roles absent from a header map, in
// canonical order.
func missingRoles(cols model.HeaderMap) []string {
	var out []string
	for _, role := range headerRoleOrder {
		if _, ok := cols[role]; !ok {
			out = append(out, role)
		}
	}
	return out
}
