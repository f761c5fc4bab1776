package analytics

import (
	"net/http"
	"time"

	"trackstat/internal/domain"
	"trackstat/internal/domain/workitem"
)

const dayLayout = "2006-01-02"

// MetricSpec defines one named series: which items are eligible, which date
// buckets them, what each item contributes, and whether the series is a
// running total or a per-day delta.
type MetricSpec struct {
	Name       string
	Selects    func(workitem.WorkItem) bool
	DateOf     func(workitem.WorkItem) *time.Time
	ValueOf    func(workitem.WorkItem) float64
	Cumulative bool
}

// CreatedCountSpec counts items by creation day.
func CreatedCountSpec(name string, cumulative bool) MetricSpec {
	return MetricSpec{
		Name:       name,
		Selects:    func(w workitem.WorkItem) bool { return w.Counted() },
		DateOf:     func(w workitem.WorkItem) *time.Time { t := w.CreatedAt; return &t },
		ValueOf:    func(workitem.WorkItem) float64 { return 1 },
		Cumulative: cumulative,
	}
}

// CompletedCountSpec counts items by completion day.
func CompletedCountSpec(name string, cumulative bool) MetricSpec {
	return MetricSpec{
		Name:       name,
		Selects:    func(w workitem.WorkItem) bool { return w.Completed() },
		DateOf:     func(w workitem.WorkItem) *time.Time { return w.CompletedAt },
		ValueOf:    func(workitem.WorkItem) float64 { return 1 },
		Cumulative: cumulative,
	}
}

// CompletedWorkloadSpec sums processed workload by completion day.
func CompletedWorkloadSpec(name string, cumulative bool) MetricSpec {
	return MetricSpec{
		Name:       name,
		Selects:    func(w workitem.WorkItem) bool { return w.Completed() },
		DateOf:     func(w workitem.WorkItem) *time.Time { return w.CompletedAt },
		ValueOf:    processedWorkload,
		Cumulative: cumulative,
	}
}

// BuildSeries buckets items into day-granular series between start and end
// inclusive. Every calendar day gets exactly one point per metric: zero for
// per-day metrics, carried-forward running total for cumulative ones.
// Cumulative series include a carry-in for items dated before the window.
func BuildSeries(items []workitem.WorkItem, start, end time.Time, specs []MetricSpec) (map[string]TimeSeries, error) {
	startDay := truncateDay(start)
	endDay := truncateDay(end)
	if endDay.Before(startDay) {
		return nil, &domain.DomainError{
			Code:       domain.ErrorCodeInvalidRange,
			Message:    "end date is before start date",
			HTTPStatus: http.StatusBadRequest,
		}
	}

	out := make(map[string]TimeSeries, len(specs))
	for _, spec := range specs {
		buckets := make(map[time.Time]float64)
		carryIn := 0.0
		for _, it := range items {
			if !spec.Selects(it) {
				continue
			}
			ts := spec.DateOf(it)
			if ts == nil {
				continue
			}
			day := truncateDay(*ts)
			if day.Before(startDay) {
				if spec.Cumulative {
					carryIn += spec.ValueOf(it)
				}
				continue
			}
			if day.After(endDay) {
				continue
			}
			buckets[day] += spec.ValueOf(it)
		}

		var series TimeSeries
		running := carryIn
		for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
			v := buckets[day]
			if spec.Cumulative {
				running += v
				v = running
			}
			series = append(series, TimeSeriesPoint{Label: day.Format(dayLayout), Value: v})
		}
		out[spec.Name] = series
	}

	return out, nil
}

func truncateDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
