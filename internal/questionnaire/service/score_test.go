package service

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestExtractScoreLeadingDigit(t *testing.T) {
	ex := NewExtractor(zerolog.Nop())
	tests := []struct {
		in   string
		want int
	}{
		{"3: Action plan with clear targets", 3},
		{"(2) - started planning", 2},
		{"4. in progress", 4},
		{"5 achieving the target", 5},
		{"(5)", 5},
		{"3) done", 3},
		{"0: n/a", 0},
		{"  1 - issue identified", 1},
		// the leading digit wins even when more digits follow
		{"1: no plans, 4: some progress", 1},
	}
	for _, tt := range tests {
		got := ex.extractScore("Sheet1", tt.in)
		if got == nil {
			t.Errorf("extractScore(%q) = nil, want %d", tt.in, tt.want)
			continue
		}
		if *got != tt.want {
			t.Errorf("extractScore(%q) = %d, want %d", tt.in, *got, tt.want)
		}
	}
}

func TestExtractScoreQualifiedDigit(t *testing.T) {
	ex := NewExtractor(zerolog.Nop())

	got := ex.extractScore("Sheet1", "current level 4: operational")
	if got == nil || *got != 4 {
		t.Fatalf("extractScore(single qualified) = %v, want 4", got)
	}

	// the same digit repeated is not ambiguous
	got = ex.extractScore("Sheet1", "totals 2: yes, 2 - again")
	if got == nil || *got != 2 {
		t.Fatalf("extractScore(repeated qualified) = %v, want 2", got)
	}
}

func TestExtractScoreAmbiguousDigits(t *testing.T) {
	ex := NewExtractor(zerolog.Nop())
	if got := ex.extractScore("Sheet1", "see 1: no plans, 4: some progress"); got != nil {
		t.Errorf("extractScore(two distinct digits) = %d, want nil", *got)
	}
}

func TestExtractScoreGluedDigit(t *testing.T) {
	ex := NewExtractor(zerolog.Nop())
	// "41:" must not be read as score 1
	if got := ex.extractScore("Sheet1", "see items 41: budget"); got != nil {
		t.Errorf("extractScore(glued digit) = %d, want nil", *got)
	}
}

func TestExtractScoreNotApplicable(t *testing.T) {
	ex := NewExtractor(zerolog.Nop())
	tests := []string{
		"N/A - not started",
		"not applicable here",
		"NA",
		"n/a",
	}
	for _, in := range tests {
		got := ex.extractScore("Sheet1", in)
		if got == nil || *got != 0 {
			t.Errorf("extractScore(%q) = %v, want 0", in, got)
		}
	}
}

func TestExtractScorePhraseEvidence(t *testing.T) {
	ex := NewExtractor(zerolog.Nop())
	tests := []struct {
		in   string
		want int
	}{
		{"Action plan operational - achieving the target set", 5},
		{"Issue identified, but no plans for further actions", 1},
		{"action plan operational with some progress", 4},
	}
	for _, tt := range tests {
		got := ex.extractScore("Sheet1", tt.in)
		if got == nil {
			t.Errorf("extractScore(%q) = nil, want %d", tt.in, tt.want)
			continue
		}
		if *got != tt.want {
			t.Errorf("extractScore(%q) = %d, want %d", tt.in, *got, tt.want)
		}
	}
}

func TestExtractScorePhraseTieKeepsLowest(t *testing.T) {
	ex := NewExtractor(zerolog.Nop())
	// equal evidence for 1 and 2; the lower score must win
	got := ex.extractScore("Sheet1", "Issue identified, starts planning")
	if got == nil || *got != 1 {
		t.Fatalf("extractScore(tied phrases) = %v, want 1", got)
	}
}

func TestExtractScoreAbsent(t *testing.T) {
	ex := NewExtractor(zerolog.Nop())
	tests := []string{
		"",
		"   ",
		"5",
		"we are doing fine",
		"see attached report",
	}
	for _, in := range tests {
		if got := ex.extractScore("Sheet1", in); got != nil {
			t.Errorf("extractScore(%q) = %d, want nil", in, *got)
		}
	}
}

func TestDeriveScoreDescription(t *testing.T) {
	three := 3
	zero := 0
	tests := []struct {
		name  string
		raw   string
		score *int
		want  string
	}{
		{"score wins over text", "whatever was written", &three, "Action plan with clear targets and deadlines in place"},
		{"zero is canonical too", "n/a", &zero, "N/A"},
		{"leading prefix stripped", "1: no plans, 4: some progress", nil, "no plans, 4: some progress"},
		{"parenthesized prefix stripped", "(2) : custom text", nil, "custom text"},
		{"inner digits untouched", "options: 1: no plans", nil, "options: 1: no plans"},
		{"bare paren not a prefix", "3) done", nil, "3) done"},
		{"empty", "", nil, ""},
		{"blank", "   ", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deriveScoreDescription(tt.raw, tt.score); got != tt.want {
				t.Errorf("deriveScoreDescription(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestScoreDescription(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "N/A"},
		{1, "Issue identified, but no plans for further actions"},
		{2, "Issue identified, starts planning further actions"},
		{3, "Action plan with clear targets and deadlines in place"},
		{4, "Action plan operational - some progress in established targets"},
		{5, "Action plan operational - achieving the target set"},
		{-1, "Unknown"},
		{6, "Unknown"},
	}
	for _, tt := range tests {
		if got := ScoreDescription(tt.score); got != tt.want {
			t.Errorf("ScoreDescription(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
