package analytics

import (
	"sort"
	"time"

	"trackstat/internal/domain/workitem"
)

// DailyProcessedRate derives the average workload processed per day from
// historical completions: total completed workload over distinct days with
// at least one completion. When no completions exist the fallback is
// returned; a fallback of zero means the rate is unknown.
func DailyProcessedRate(items []workitem.WorkItem, fallback float64) float64 {
	total := 0.0
	days := make(map[time.Time]struct{})
	for _, it := range items {
		if !it.Completed() || it.CompletedAt == nil {
			continue
		}
		total += processedWorkload(it)
		days[truncateDay(*it.CompletedAt)] = struct{}{}
	}
	if len(days) == 0 {
		return fallback
	}
	return total / float64(len(days))
}

// Overdue projects a completion date for every open item carrying a deadline
// and flags those landing past it. A non-positive rate cannot project; the
// assessment then reports RateKnown=false instead of dividing by zero.
func Overdue(items []workitem.WorkItem, rate float64, now time.Time) OverdueAssessment {
	a := OverdueAssessment{RateKnown: rate > 0, Rate: rate}
	today := truncateDay(now)

	for _, it := range items {
		if it.Completed() || !it.Counted() || it.Deadline == nil {
			continue
		}
		a.OpenWithDeadline++
		if !a.RateKnown {
			continue
		}
		remaining := it.RemainingWorkload()
		projected := today.AddDate(0, 0, daysFor(remaining, rate))
		if projected.After(truncateDay(*it.Deadline)) {
			a.AtRisk = append(a.AtRisk, OverdueItem{
				ItemID:      it.ID,
				Deadline:    *it.Deadline,
				ProjectedAt: projected,
				Remaining:   remaining,
			})
		}
	}

	sort.Slice(a.AtRisk, func(i, j int) bool { return a.AtRisk[i].ItemID < a.AtRisk[j].ItemID })
	a.AtRiskCount = len(a.AtRisk)
	return a
}

// Unplanned counts items injected after the plan started that were absent
// from the original backlog snapshot, and converts their workload into days
// of burn at the given rate.
func Unplanned(items []workitem.WorkItem, planStart time.Time, baseline map[string]struct{}, rate float64) UnplannedAssessment {
	a := UnplannedAssessment{RateKnown: rate > 0}
	startDay := truncateDay(planStart)

	for _, it := range items {
		if !it.Counted() {
			continue
		}
		if !truncateDay(it.CreatedAt).After(startDay) {
			continue
		}
		if _, planned := baseline[it.ID]; planned {
			continue
		}
		a.Count++
		a.Workload += it.Estimated
	}

	if a.RateKnown {
		a.Days = a.Workload / rate
	}
	return a
}

// LeadTime averages the creation-to-completion interval over completed items.
func LeadTime(items []workitem.WorkItem) LeadTimeStats {
	var s LeadTimeStats
	totalDays := 0.0
	for _, it := range items {
		if !it.Completed() || it.CompletedAt == nil {
			continue
		}
		s.Completed++
		totalDays += it.CompletedAt.Sub(it.CreatedAt).Hours() / 24
	}
	if s.Completed > 0 {
		s.AvgDays = totalDays / float64(s.Completed)
	}
	return s
}

// ComputeWorkload sums planned, actual and remaining effort.
func ComputeWorkload(items []workitem.WorkItem) WorkloadStat {
	var w WorkloadStat
	for _, it := range items {
		if !it.Counted() {
			continue
		}
		w.Items++
		w.Estimated += it.Estimated
		w.Actual += it.Actual
		w.Remaining += it.RemainingWorkload()
	}
	return w
}

// daysFor rounds a workload up to whole days of burn at the given rate.
func daysFor(workload, rate float64) int {
	if workload <= 0 {
		return 0
	}
	d := int(workload / rate)
	if float64(d)*rate < workload {
		d++
	}
	return d
}

// processedWorkload prefers actually booked effort over the estimate.
func processedWorkload(w workitem.WorkItem) float64 {
	if w.Actual > 0 {
		return w.Actual
	}
	return w.Estimated
}
