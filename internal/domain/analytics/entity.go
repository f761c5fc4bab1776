package analytics

import (
	"time"

	"trackstat/internal/domain/workitem"
)

// Progress is a flattened completion ratio over a closure or a flat item set.
type Progress struct {
	Completed     int
	Total         int
	CompletedRate float64
}

type TimeSeriesPoint struct {
	Label string
	Value float64
}

// TimeSeries is a gap-free, day-granular sequence spanning a concrete
// [start, end] range inclusive.
type TimeSeries []TimeSeriesPoint

// OverdueItem is one open item projected to miss its deadline.
type OverdueItem struct {
	ItemID      string
	Deadline    time.Time
	ProjectedAt time.Time
	Remaining   float64
}

// OverdueAssessment is the rate-based overdue projection for a set of items.
// RateKnown is false when no rate could be derived; AtRisk is empty then.
// AtRisk detail rows may be stripped by configuration; AtRiskCount survives.
type OverdueAssessment struct {
	RateKnown        bool
	Rate             float64
	OpenWithDeadline int
	AtRiskCount      int
	AtRisk           []OverdueItem
}

// UnplannedAssessment counts work injected after the plan started.
type UnplannedAssessment struct {
	RateKnown bool
	Count     int
	Workload  float64
	Days      float64
}

// LeadTimeStats is the average creation-to-completion interval in days.
type LeadTimeStats struct {
	Completed int
	AvgDays   float64
}

// WorkloadStat sums planned and actual effort over a set of items.
type WorkloadStat struct {
	Items     int
	Estimated float64
	Actual    float64
	Remaining float64
}

type BreakdownRow[T any] struct {
	Actor workitem.DisplayInfo
	Value T
}

// Breakdown pairs the Total aggregate with optional per-actor detail rows.
// PerActor is empty when the request filter already isolates a single user.
type Breakdown[T any] struct {
	Total    T
	PerActor []BreakdownRow[T]
}
