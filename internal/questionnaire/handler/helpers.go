package handler

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"scorecard-service/internal/middleware"
)

// requestLogger binds the request id, when present, onto the base logger.
func requestLogger(logger zerolog.Logger, r *http.Request) zerolog.Logger {
	if rid := middleware.GetRequestID(r); rid != "" {
		return logger.With().Str("rid", rid).Logger()
	}
	return logger
}

// allowedUpload accepts the spreadsheet formats the engine can read.
func allowedUpload(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls", ".csv":
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, log zerolog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Error().Err(err).Msg("write json")
	}
}
