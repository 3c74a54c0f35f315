package model

// QuestionRecord is one normalized questionnaire line item. Score is a
// pointer so a legitimate 0 ("N/A") survives JSON encoding while an
// undetermined score is omitted.
type QuestionRecord struct {
	SdgNumber               int    `json:"sdg_number"`
	SdgDescription          string `json:"sdg_description,omitempty"`
	Sector                  string `json:"sector,omitempty"`
	SdgTarget               string `json:"sdg_target,omitempty"`
	SustainabilityDimension string `json:"sustainability_dimension,omitempty"`
	KPI                     string `json:"kpi,omitempty"`
	Question                string `json:"question,omitempty"`
	Score                   *int   `json:"score,omitempty"`
	ScoreDescription        string `json:"score_description,omitempty"`
	Source                  string `json:"source,omitempty"`
	Notes                   string `json:"notes,omitempty"`
	Status                  string `json:"status,omitempty"`
	Comment                 string `json:"comment,omitempty"`
}

// QuestionSummary is the interactive projection of a record: scores are
// deliberately absent, the user supplies them later.
type QuestionSummary struct {
	ID                      string `json:"id"`
	SdgNumber               int    `json:"sdg_number"`
	SdgDescription          string `json:"sdg_description,omitempty"`
	SdgTarget               string `json:"sdg_target,omitempty"`
	SustainabilityDimension string `json:"sustainability_dimension,omitempty"`
	KPI                     string `json:"kpi,omitempty"`
	Question                string `json:"question"`
	Sector                  string `json:"sector,omitempty"`
}

// QuestionSet is what the questions-only extraction returns: the flattened
// question list plus the sector of the last question that had one.
type QuestionSet struct {
	Questions []QuestionSummary `json:"questions"`
	Sector    string            `json:"sector"`
}

// SheetData is the full per-worksheet extraction result.
type SheetData struct {
	Rows        []QuestionRecord `json:"rows"`
	SectorBySdg map[int]string   `json:"sector_by_sdg"`
}

// Block is a contiguous 1-based row range owned by one SDG (1..17).
type Block struct {
	Sdg   int
	Start int
	End   int
}

// HeaderMap maps a canonical column role ("kpi", "scoring", ...) to its
// 1-based column in the detected header row.
type HeaderMap map[string]int

// UserResponse is one answered question in a calculate request.
type UserResponse struct {
	QuestionID string `json:"question_id"`
	Score      int    `json:"score"`
}

// CalculateRequest carries the answers plus the question metadata they
// refer to.
type CalculateRequest struct {
	Responses []UserResponse    `json:"responses"`
	Questions []QuestionSummary `json:"questions"`
}

type SectorRows struct {
	Rows []QuestionRecord `json:"rows"`
}

type CalculateResponse struct {
	Success bool                  `json:"success"`
	Data    map[string]SectorRows `json:"data"`
}

// QuestionsResponse is the envelope for upload and template replies.
// Source is "uploaded" or "default" on the template route and empty on
// upload.
type QuestionsResponse struct {
	Success        bool              `json:"success"`
	Questions      []QuestionSummary `json:"questions"`
	Sector         string            `json:"sector"`
	TotalQuestions int               `json:"total_questions"`
	Source         string            `json:"source,omitempty"`
}
