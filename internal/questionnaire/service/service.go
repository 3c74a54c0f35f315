package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"scorecard-service/internal/questionnaire/model"
)

// Source is one open workbook. Implementations are not required to be safe
// for concurrent use; run each extraction against its own instance.
type Source interface {
	SheetNames() []string
	Rows(sheet string) ([][]string, error)
}

// Extractor runs the questionnaire pipeline over a Source. It keeps no
// state between calls apart from the logger, so one instance can serve
// every request.
type Extractor struct {
	log zerolog.Logger
}

func NewExtractor(log zerolog.Logger) *Extractor {
	return &Extractor{log: log}
}

// ResolveSheet maps a requested sheet name onto an actual one: exact
// (case-insensitive), 1-based index ("3" means the third sheet),
// case-insensitive substring, then fuzzy with a 0.60 floor. Returns ""
// when nothing is close enough.
func (e *Extractor) ResolveSheet(requested string, names []string) string {
	want := strings.TrimSpace(requested)
	if want == "" {
		return ""
	}

	for _, n := range names {
		if strings.EqualFold(n, want) {
			return n
		}
	}

	if isDigits(want) {
		if idx, err := strconv.Atoi(want); err == nil && idx >= 1 && idx <= len(names) {
			return names[idx-1]
		}
	}

	low := strings.ToLower(want)
	for _, n := range names {
		if strings.Contains(strings.ToLower(n), low) {
			return n
		}
	}

	best, bestRatio := "", 0.0
	for _, n := range names {
		if r := similarity(low, strings.ToLower(n)); r > bestRatio {
			best, bestRatio = n, r
		}
	}
	if bestRatio >= sheetFuzzyMin {
		return best
	}
	return ""
}

// extractSheet runs the full pipeline for one requested sheet: resolve,
// read, partition into SDG blocks, resolve sectors, locate the header,
// assemble the records.
func (e *Extractor) extractSheet(src Source, requested string) (string, model.SheetData, error) {
	resolved := e.ResolveSheet(requested, src.SheetNames())
	if resolved == "" {
		return "", model.SheetData{}, fmt.Errorf("%w: %q", model.ErrSheetNotResolved, requested)
	}

	rows, err := src.Rows(resolved)
	if err != nil {
		return "", model.SheetData{}, fmt.Errorf("read sheet %q: %w", resolved, err)
	}

	blocks := e.buildBlocks(resolved, rows)
	sectors := e.resolveSectors(resolved, rows, blocks)

	headerRow, cols, err := e.locateHeader(resolved, rows)
	if err != nil {
		return "", model.SheetData{}, fmt.Errorf("sheet %q: %w", resolved, err)
	}

	recs := e.assembleRows(resolved, rows, headerRow, cols, blocks, sectors)
	return resolved, model.SheetData{Rows: recs, SectorBySdg: sectors}, nil
}

// ExtractAll extracts every requested sheet (the default three when the
// list is empty), keyed by the normalized resolved name. Sheets that fail
// are skipped with a warning; the call errors only when none survive.
func (e *Extractor) ExtractAll(src Source, sheets []string) (map[string]model.SheetData, error) {
	if len(sheets) == 0 {
		sheets = DefaultSheets
	}

	out := make(map[string]model.SheetData, len(sheets))
	for _, want := range sheets {
		resolved, data, err := e.extractSheet(src, want)
		if err != nil {
			e.log.Warn().Err(err).Str("sheet", want).Msg("sheet skipped")
			continue
		}
		key := NormalizeKey(resolved)
		if key == "" {
			key = resolved
		}
		out[key] = data
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no requested sheet could be extracted", model.ErrNoQuestions)
	}
	return out, nil
}

// ExtractQuestions runs the pipeline and keeps only rows carrying a
// question, projected to the interactive schema with running q_N ids
// unique across all sheets. Scores are left out on purpose, the caller
// collects them later. The returned sector belongs to the last question
// that had a known one, "Unknown" when none did.
func (e *Extractor) ExtractQuestions(src Source, sheet string) (model.QuestionSet, error) {
	sheets := DefaultSheets
	if strings.TrimSpace(sheet) != "" {
		sheets = []string{sheet}
	}

	var questions []model.QuestionSummary
	sector := ""
	for _, want := range sheets {
		resolved, data, err := e.extractSheet(src, want)
		if err != nil {
			e.log.Warn().Err(err).Str("sheet", want).Msg("sheet skipped")
			continue
		}

		added := 0
		for _, row := range data.Rows {
			if row.Question == "" {
				continue
			}
			questions = append(questions, model.QuestionSummary{
				ID:                      fmt.Sprintf("q_%d", len(questions)+1),
				SdgNumber:               row.SdgNumber,
				SdgDescription:          row.SdgDescription,
				SdgTarget:               row.SdgTarget,
				SustainabilityDimension: row.SustainabilityDimension,
				KPI:                     row.KPI,
				Question:                row.Question,
				Sector:                  row.Sector,
			})
			added++
			if row.Sector != "" {
				sector = row.Sector
			}
		}
		e.log.Debug().Str("sheet", resolved).Int("questions", added).Msg("questions extracted")
	}

	if len(questions) == 0 {
		return model.QuestionSet{}, fmt.Errorf("%w: no questions in any requested sheet", model.ErrNoQuestions)
	}
	if sector == "" {
		sector = "Unknown"
	}
	return model.QuestionSet{Questions: questions, Sector: sector}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
