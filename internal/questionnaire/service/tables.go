package service

// DefaultSheets are the worksheet names tried when the caller does not pick
// one. Requested names go through ResolveSheet, so close variants still land.
var DefaultSheets = []string{"Textile_revised", "Fertilizer_revised", "Packaging_revised"}

// Canonical SDG descriptions, keyed by SDG number 1..17. Kept verbatim,
// including the long-form entries.
var sdgDescriptions = map[int]string{
	1:  "No Poverty",
	2:  "Zero Hunger",
	3:  "Good Health & Well-being",
	4:  "Ensure inclusive and equitable quality education and promote lifelong learning opportunities for all",
	5:  "Gender Equality",
	6:  "Clean Water & Sanitation",
	7:  "Affordable and Clean Energy",
	8:  "Decent Work & Economic Growth",
	9:  "Build resilient infrastructure, promote inclusive and sustainable industrialization and foster innovation",
	10: "Reduce inequality within and among countries",
	11: "Make cities and human settlements inclusive, safe, resilient and sustainable",
	12: "Ensure sustainable consumption and production patterns",
	13: "Climate Action",
	14: "Life Below Water",
	15: "Life on Land",
	16: "Peace, Justice and Strong Institutions",
	17: "Partnerships for the Goals",
}

// Variant spellings -> canonical sector label.
var sectorSynonyms = map[string]string{
	"textile":  "Textiles",
	"textiles": "Textiles",
	"textil":   "Textiles",
	"fabric":   "Textiles",
	"garment":  "Textiles",
	"apparel":  "Textiles",

	"fertilizer":  "Fertilizers",
	"fertilizers": "Fertilizers",
	"fert":        "Fertilizers",

	"packaging": "Packaging",
	"package":   "Packaging",
	"packing":   "Packaging",
	"pack":      "Packaging",
}

// Ordered sheet-name hints, the last resort of sector resolution.
var sheetNameHints = []struct {
	sub   string
	canon string
}{
	{"textile", "Textiles"},
	{"fertilizer", "Fertilizers"},
	{"fertilis", "Fertilizers"},
	{"packag", "Packaging"},
}

// rubricCanon holds the six canonical rubric sentences, indexed by score.
var rubricCanon = [6]string{
	"N/A",
	"Issue identified, but no plans for further actions",
	"Issue identified, starts planning further actions",
	"Action plan with clear targets and deadlines in place",
	"Action plan operational - some progress in established targets",
	"Action plan operational - achieving the target set",
}

// rubricPhrases are key phrases used to infer a score when the scoring cell
// carries no usable number. Indexed by score.
var rubricPhrases = [6][]string{
	{"n/a", "na", "not applicable"},
	{"issue identified", "no plans"},
	{"starts planning", "planning further actions"},
	{"action plan", "clear targets", "deadlines"},
	{"operational", "some progress"},
	{"operational", "achieving the target", "achieving target"},
}

// markerRows are the fixed 1-based rows carrying the "SDG n" marker in
// column B: row 2 for SDG 1, then every 6 rows up to row 98 for SDG 17.
var markerRows = [17]int{2, 8, 14, 20, 26, 32, 38, 44, 50, 56, 62, 68, 74, 80, 86, 92, 98}

const (
	titleRow  = 1 // B1 is expected to read "SDG"
	markerCol = 2 // column B
	sectorCol = 3 // column C, both per-block and the sheet default at C3

	defaultSectorRow = 3
)

// Column roles in their canonical order, and the header spellings accepted
// for each. Matching is case-insensitive after whitespace normalization.
var headerRoleOrder = []string{
	"sdg_target",
	"sustainability_dimension",
	"kpi",
	"question",
	"scoring",
	"source",
	"notes",
	"status",
	"comment",
}

var headerAliases = map[string][]string{
	"sdg_target":               {"sdg target", "sdg target (short)"},
	"sustainability_dimension": {"sustainability dimension", "dimension"},
	"kpi":                      {"kpi", "indicator", "metric"},
	"question":                 {"question", "assessment question", "assessment"},
	"scoring":                  {"scoring", "scores", "score"},
	"source":                   {"source", "reference"},
	"notes":                    {"notes", "note"},
	"status":                   {"status"},
	"comment":                  {"comment", "comments"},
}

// headerRoles is the inverted alias table (alias -> role); aliases are
// unique across roles.
var headerRoles = func() map[string]string {
	m := make(map[string]string)
	for role, aliases := range headerAliases {
		for _, a := range aliases {
			m[a] = role
		}
	}
	return m
}()

// Acceptance thresholds. Sheet matching is lenient, sector synonyms are
// strict, phrase inference accumulates evidence instead of trusting one
// ratio.
const (
	sheetFuzzyMin  = 0.60
	sectorFuzzyMin = 0.80
	phraseFuzzyMin = 0.60
)

// ScoreDescription returns the canonical rubric sentence for a 0..5 score,
// or "Unknown" outside that range.
func ScoreDescription(score int) string {
	if score >= 0 && score < len(rubricCanon) {
		return rubricCanon[score]
	}
	return "Unknown"
}
