package model

import "errors"

// Extraction error kinds. Per-sheet failures (header, resolution) are
// downgraded to skip+log by the facade; only the aggregate "nothing
// succeeded" condition reaches callers.
var (
	ErrHeaderNotFound   = errors.New("header row not found")
	ErrSheetNotResolved = errors.New("sheet not resolved")
	ErrNoQuestions      = errors.New("no questions available")
)
