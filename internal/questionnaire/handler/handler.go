package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"scorecard-service/internal/config"
	"scorecard-service/internal/fileio"
	"scorecard-service/internal/questionnaire/cache"
	"scorecard-service/internal/questionnaire/model"
	qsvc "scorecard-service/internal/questionnaire/service"
)

// Upload accepts a workbook over a multipart form, extracts its questions
// and caches them for the template route. The optional sheet_name field
// narrows extraction to one sheet; otherwise the default three are tried.
func Upload(cfg config.Config, logger zerolog.Logger, store *cache.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := requestLogger(logger, r)

		defer r.Body.Close()
		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		if !allowedUpload(header.Filename) {
			http.Error(w, "file must be a spreadsheet (.xlsx, .xls or .csv)", http.StatusBadRequest)
			return
		}

		wb, err := fileio.OpenReader(file, header.Filename)
		if err != nil {
			log.Warn().Err(err).Str("file", header.Filename).Msg("workbook rejected")
			http.Error(w, "failed to read workbook: "+err.Error(), http.StatusBadRequest)
			return
		}

		qs, err := qsvc.NewExtractor(log).ExtractQuestions(wb, r.FormValue("sheet_name"))
		if err != nil {
			log.Warn().Err(err).Str("file", header.Filename).Msg("no questions extracted")
			http.Error(w, "no questions found; expected sheets: Textile_revised, Fertilizer_revised or Packaging_revised", http.StatusBadRequest)
			return
		}

		store.Set(qs.Questions, qs.Sector)

		writeJSON(w, log, model.QuestionsResponse{
			Success:        true,
			Questions:      qs.Questions,
			Sector:         qs.Sector,
			TotalQuestions: len(qs.Questions),
		})

		log.Info().
			Str("file", header.Filename).
			Int("questions", len(qs.Questions)).
			Str("sector", qs.Sector).
			Dur("elapsed", time.Since(start)).
			Msg("upload done")
	}
}

// Template serves the question list for the interactive questionnaire:
// the cached upload when present, the bundled default workbook otherwise.
// The default result is cached too, so the file is only parsed once.
func Template(cfg config.Config, logger zerolog.Logger, store *cache.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := requestLogger(logger, r)

		if snap, ok := store.Get(); ok {
			writeJSON(w, log, model.QuestionsResponse{
				Success:        true,
				Questions:      snap.Questions,
				Sector:         snap.Sector,
				TotalQuestions: len(snap.Questions),
				Source:         "uploaded",
			})
			return
		}

		if _, err := os.Stat(cfg.DataFile); err != nil {
			http.Error(w, "no questionnaire available; please upload an Excel file first", http.StatusNotFound)
			return
		}

		wb, err := fileio.Open(cfg.DataFile)
		if err != nil {
			log.Error().Err(err).Str("file", cfg.DataFile).Msg("default workbook unreadable")
			http.Error(w, "failed to load template: "+err.Error(), http.StatusInternalServerError)
			return
		}

		qs, err := qsvc.NewExtractor(log).ExtractQuestions(wb, "")
		if err != nil {
			if errors.Is(err, model.ErrNoQuestions) {
				http.Error(w, "no questions available; please upload an Excel file", http.StatusInternalServerError)
				return
			}
			http.Error(w, "failed to load template: "+err.Error(), http.StatusInternalServerError)
			return
		}

		store.Set(qs.Questions, qs.Sector)

		writeJSON(w, log, model.QuestionsResponse{
			Success:        true,
			Questions:      qs.Questions,
			Sector:         qs.Sector,
			TotalQuestions: len(qs.Questions),
			Source:         "default",
		})

		log.Info().Int("questions", len(qs.Questions)).Str("sector", qs.Sector).Msg("template served from default workbook")
	}
}

// Calculate joins user answers with the question metadata they refer to,
// attaches the rubric sentences and groups the rows by sector. Questions
// without an answer score 0.
func Calculate(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := requestLogger(logger, r)

		defer r.Body.Close()
		var req model.CalculateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request body: "+err.Error(), http.StatusBadRequest)
			return
		}

		scores := make(map[string]int, len(req.Responses))
		for _, resp := range req.Responses {
			scores[resp.QuestionID] = resp.Score
		}

		groups := make(map[string]model.SectorRows)
		for _, q := range req.Questions {
			score := scores[q.ID]
			rec := model.QuestionRecord{
				SdgNumber:               q.SdgNumber,
				SdgDescription:          q.SdgDescription,
				Sector:                  q.Sector,
				SdgTarget:               q.SdgTarget,
				SustainabilityDimension: q.SustainabilityDimension,
				KPI:                     q.KPI,
				Question:                q.Question,
				Score:                   &score,
				ScoreDescription:        qsvc.ScoreDescription(score),
			}

			sector := q.Sector
			if sector == "" {
				sector = "Unknown"
			}
			g := groups[sector]
			g.Rows = append(g.Rows, rec)
			groups[sector] = g
		}

		writeJSON(w, log, model.CalculateResponse{Success: true, Data: groups})

		log.Info().
			Int("questions", len(req.Questions)).
			Int("responses", len(req.Responses)).
			Int("sectors", len(groups)).
			Msg("scorecard calculated")
	}
}
