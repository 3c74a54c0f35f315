package service

import (
	"regexp"
	"strings"

	"scorecard-service/internal/questionnaire/model"
)

var (
	sectorLabelRe = regexp.MustCompile(`(?i)\bsector\b\s*[:\-–|]?\s*`)
	sectorWordRe  = regexp.MustCompile(`(?i)\bsector\b`)
	sectorSplitRe = regexp.MustCompile(`[,/;|]+`)
)

// canonicalizeSector maps free-form sector text ("Sector: textiles",
// "Fertilizer / Packaging") to one canonical label. The label word is
// stripped, the remainder split into tokens, every token matched against
// the synonym table, exactly first and fuzzily after. When tokens name
// several distinct sectors the first wins and the rest are logged.
// Returns "" when nothing resembles a known sector.
func (e *Extractor) canonicalizeSector(sheet, raw string) string {
	if NormalizeText(raw) == "" {
		return ""
	}
	s := sectorLabelRe.ReplaceAllString(raw, "")

	var candidates []string
	for _, tok := range sectorSplitRe.Split(s, -1) {
		tok = NormalizeText(sectorWordRe.ReplaceAllString(tok, ""))
		if tok == "" {
			continue
		}
		low := strings.ToLower(tok)

		if canon, ok := sectorSynonyms[low]; ok {
			candidates = append(candidates, canon)
			continue
		}
		if canon, ratio := bestMatch(low, sectorSynonyms); canon != "" && ratio >= sectorFuzzyMin {
			candidates = append(candidates, canon)
		}
	}

	uniq := make([]string, 0, len(candidates))
	for _, c := range candidates {
		dup := false
		for _, u := range uniq {
			if u == c {
				dup = true
				break
			}
		}
		if !dup {
			uniq = append(uniq, c)
		}
	}

	if len(uniq) == 0 {
		return ""
	}
	if len(uniq) > 1 {
		e.log.Warn().Str("sheet", sheet).Strs("candidates", uniq).Msg("multiple sector candidates, keeping first")
	}
	return uniq[0]
}

// defaultSector is the sheet-wide fallback: the fixed default cell first,
// then a guess from the worksheet name itself.
func (e *Extractor) defaultSector(sheet string, rows [][]string) string {
	raw := cellAt(rows, defaultSectorRow, sectorCol)
	canon := e.canonicalizeSector(sheet, raw)
	if canon == "" {
		canon = sectorFromSheetName(sheet)
	}
	e.log.Debug().Str("sheet", sheet).Str("cell", raw).Str("sector", canon).Msg("default sector resolved")
	return canon
}

func sectorFromSheetName(sheet string) string {
	name := strings.ToLower(sheet)
	for _, h := range sheetNameHints {
		if strings.Contains(name, h.sub) {
			return h.canon
		}
	}
	return ""
}

// resolveSectors decides the sector of every SDG block. The cell beside
// the block marker wins, then the sheet default. An empty value means the
// sector stays unknown for that block.
func (e *Extractor) resolveSectors(sheet string, rows [][]string, blocks []model.Block) map[int]string {
	def := e.defaultSector(sheet, rows)
	out := make(map[int]string, len(blocks))
	for _, b := range blocks {
		sec := e.canonicalizeSector(sheet, cellAt(rows, b.Start, sectorCol))
		if sec == "" {
			sec = def
		}
		out[b.Sdg] = sec
	}
	return out
}
