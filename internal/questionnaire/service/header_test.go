package service

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"scorecard-service/internal/questionnaire/model"
)

var fullHeader = []string{
	"SDG Target", "Sustainability Dimension", "KPI", "Question",
	"Scoring", "Source", "Notes", "Status", "Comment",
}

func TestLocateHeaderFullRow(t *testing.T) {
	ex := NewExtractor(zerolog.Nop())
	rows := [][]string{
		fullHeader,
		{"", "SDG 1", "Textiles"},
	}

	row, cols, err := ex.locateHeader("Sheet1", rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row != 1 {
		t.Errorf("header row = %d, want 1", row)
	}
	if len(cols) != len(headerRoleOrder) {
		t.Errorf("mapped roles = %d, want %d", len(cols), len(headerRoleOrder))
	}
	if cols["question"] != 4 {
		t.Errorf("question column = %d, want 4", cols["question"])
	}
	if cols["scoring"] != 5 {
		t.Errorf("scoring column = %d, want 5", cols["scoring"])
	}
}

func TestLocateHeaderMostHitsWins(t *testing.T) {
	ex := NewExtractor(zerolog.Nop())
	rows := [][]string{
		{"Status"},
		{"Self-assessment for the textile sector"},
		{"", "Question", "Scoring", "Notes"},
	}

	row, cols, err := ex.locateHeader("Sheet1", rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row != 3 {
		t.Errorf("header row = %d, want 3", row)
	}
	if cols["question"] != 2 || cols["scoring"] != 3 || cols["notes"] != 4 {
		t.Errorf("unexpected column map: %v", cols)
	}
}

func TestLocateHeaderTiePicksEarliest(t *testing.T) {
	ex := NewExtractor(zerolog.Nop())
	rows := [][]string{
		{"Question", "Scoring"},
		{"Question", "Scoring"},
	}

	row, _, err := ex.locateHeader("Sheet1", rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row != 1 {
		t.Errorf("header row = %d, want 1", row)
	}
}

func TestLocateHeaderAliasesAndCase(t *testing.T) {
	ex := NewExtractor(zerolog.Nop())
	rows := [][]string{
		{"sdg target (short)", "DIMENSION", "Indicator", "Assessment Question", "  scores  "},
	}

	_, cols, err := ex.locateHeader("Sheet1", rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := model.HeaderMap{
		"sdg_target":               1,
		"sustainability_dimension": 2,
		"kpi":                      3,
		"question":                 4,
		"scoring":                  5,
	}
	for role, col := range want {
		if cols[role] != col {
			t.Errorf("cols[%q] = %d, want %d", role, cols[role], col)
		}
	}
}

func TestLocateHeaderFirstColumnWinsPerRole(t *testing.T) {
	ex := NewExtractor(zerolog.Nop())
	rows := [][]string{
		{"Question", "Question", "Scoring"},
	}

	_, cols, err := ex.locateHeader("Sheet1", rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cols["question"] != 1 {
		t.Errorf("question column = %d, want 1", cols["question"])
	}
}

func TestLocateHeaderNotFound(t *testing.T) {
	ex := NewExtractor(zerolog.Nop())
	rows := [][]string{
		{"just", "some", "cells"},
		{"nothing", "recognizable"},
	}

	_, _, err := ex.locateHeader("Sheet1", rows)
	if !errors.Is(err, model.ErrHeaderNotFound) {
		t.Fatalf("error = %v, want ErrHeaderNotFound", err)
	}
}

func TestLocateHeaderScanCap(t *testing.T) {
	ex := NewExtractor(zerolog.Nop())
	rows := make([][]string, headerScanRows+1)
	for i := range rows {
		rows[i] = []string{"filler"}
	}
	rows[headerScanRows] = fullHeader // row 31, one past the scan window

	_, _, err := ex.locateHeader("Sheet1", rows)
	if !errors.Is(err, model.ErrHeaderNotFound) {
		t.Fatalf("error = %v, want ErrHeaderNotFound", err)
	}
}

func TestMissingRoles(t *testing.T) {
	cols := model.HeaderMap{"question": 1, "scoring": 2}
	missing := missingRoles(cols)
	want := []string{"sdg_target", "sustainability_dimension", "kpi", "source", "notes", "status", "comment"}
	if len(missing) != len(want) {
		t.Fatalf("missingRoles = %v, want %v", missing, want)
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Fatalf("missingRoles = %v, want %v", missing, want)
		}
	}
}
