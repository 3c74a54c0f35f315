package service

import (
	"regexp"
	"strings"
)

var (
	// "3:", "(2) -", "4." and the bare "5 ..." at the start of the text
	leadingScoreRe = regexp.MustCompile(`^\s*\(?([0-5])\)?(?:\s*[:\-–.)]|\s)`)
	// any "N:"-style digit further in
	qualifiedScoreRe = regexp.MustCompile(`[0-5]\s*[:\-–.)]`)
	notApplicableRe  = regexp.MustCompile(`\b(?:n/?a|not applicable)\b`)
	// one leading enumeration prefix, for cleaning description text
	scorePrefixRe = regexp.MustCompile(`^\s*\(?\d+\)?\s*[:\-–.]\s*`)
)

// extractScore pulls a 0..5 score out of free-form scoring text. Rules are
// tried in order, first hit wins: a leading digit, a single qualified
// digit anywhere, a whole-word n/a, then accumulated rubric-phrase
// evidence. Text enumerating several distinct qualified digits is refused
// outright rather than guessed at.
func (e *Extractor) extractScore(sheet, raw string) *int {
	txt := strings.TrimSpace(raw)
	if txt == "" {
		return nil
	}

	if m := leadingScoreRe.FindStringSubmatch(txt); m != nil {
		return intPtr(int(m[1][0] - '0'))
	}

	var qualified []int
	for _, loc := range qualifiedScoreRe.FindAllStringIndex(txt, -1) {
		// digits glued onto a longer number ("41:") do not count
		if loc[0] > 0 && txt[loc[0]-1] >= '0' && txt[loc[0]-1] <= '9' {
			continue
		}
		d := int(txt[loc[0]] - '0')
		dup := false
		for _, q := range qualified {
			if q == d {
				dup = true
				break
			}
		}
		if !dup {
			qualified = append(qualified, d)
		}
	}
	if len(qualified) == 1 {
		return intPtr(qualified[0])
	}
	if len(qualified) > 1 {
		e.log.Warn().Str("sheet", sheet).Str("text", txt).Ints("digits", qualified).Msg("several rubric digits, not guessing")
		return nil
	}

	low := strings.ToLower(NormalizeText(txt))
	if notApplicableRe.MatchString(low) {
		return intPtr(0)
	}

	best, bestEv := -1, -1
	for score, phrases := range rubricPhrases {
		ev := 0
		for _, ph := range phrases {
			if strings.Contains(low, ph) {
				ev += 2
			} else if similarity(ph, low) > phraseFuzzyMin {
				ev++
			}
		}
		if ev > bestEv {
			best, bestEv = score, ev
		}
	}
	if bestEv >= 2 {
		return intPtr(best)
	}
	return nil
}

// deriveScoreDescription pairs a score with its canonical rubric sentence.
// Without a score the raw text is kept, minus one leading enumeration
// prefix like "3 -" or "(2):".
func deriveScoreDescription(raw string, score *int) string {
	if score != nil {
		return ScoreDescription(*score)
	}
	if t := strings.TrimSpace(raw); t != "" {
		return strings.TrimSpace(scorePrefixRe.ReplaceAllString(t, ""))
	}
	return ""
}

func intPtr(v int) *int { return &v }
