package dto

type Progress struct {
	Completed     int     `json:"completed"`
	Total         int     `json:"total"`
	CompletedRate float64 `json:"completed_rate"`
}

type ItemProgress struct {
	ItemID string `json:"item_id"`
	Progress
}

type ProgressResponse struct {
	Items []ItemProgress `json:"items"`
}

type SeriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type SeriesResponse struct {
	Start  string                   `json:"start"`
	End    string                   `json:"end"`
	Series map[string][]SeriesPoint `json:"series"`
}

type Actor struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

type WorkloadStat struct {
	Items     int     `json:"items"`
	Estimated float64 `json:"estimated"`
	Actual    float64 `json:"actual"`
	Remaining float64 `json:"remaining"`
}

type WorkloadRow struct {
	Actor Actor `json:"actor"`
	WorkloadStat
}

type WorkloadResponse struct {
	Total    WorkloadStat  `json:"total"`
	PerActor []WorkloadRow `json:"per_actor"`
}

type OverdueItem struct {
	ItemID      string  `json:"item_id"`
	Deadline    string  `json:"deadline"`
	ProjectedAt string  `json:"projected_at"`
	Remaining   float64 `json:"remaining"`
}

type OverdueAssessment struct {
	RateKnown        bool          `json:"rate_known"`
	Rate             float64       `json:"rate"`
	OpenWithDeadline int           `json:"open_with_deadline"`
	AtRiskCount      int           `json:"at_risk_count"`
	AtRisk           []OverdueItem `json:"at_risk,omitempty"`
}

type OverdueRow struct {
	Actor Actor `json:"actor"`
	OverdueAssessment
}

type OverdueResponse struct {
	Total    OverdueAssessment `json:"total"`
	PerActor []OverdueRow      `json:"per_actor"`
}

type LeadTimeStats struct {
	Completed int     `json:"completed"`
	AvgDays   float64 `json:"avg_days"`
}

type LeadTimeRow struct {
	Actor Actor `json:"actor"`
	LeadTimeStats
}

type LeadTimeResponse struct {
	Total    LeadTimeStats `json:"total"`
	PerActor []LeadTimeRow `json:"per_actor"`
}

type UnplannedResponse struct {
	RateKnown bool    `json:"rate_known"`
	Count     int     `json:"count"`
	Workload  float64 `json:"workload"`
	Days      float64 `json:"days"`
}
