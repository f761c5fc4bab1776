package analytics

import (
	"context"
	"time"

	"trackstat/internal/domain"
	"trackstat/internal/domain/workitem"
)

type Service interface {
	ProgressOverview(ctx context.Context, filter workitem.Filter, rootIDs []string) (map[string]Progress, error)
	BurndownSeries(ctx context.Context, filter workitem.Filter, from, to time.Time) (map[string]TimeSeries, error)
	GrowthTrend(ctx context.Context, filter workitem.Filter, from, to time.Time) (map[string]TimeSeries, error)
	WorkloadOverview(ctx context.Context, filter workitem.Filter) (Breakdown[WorkloadStat], error)
	OverdueOverview(ctx context.Context, filter workitem.Filter) (Breakdown[OverdueAssessment], error)
	UnplannedOverview(ctx context.Context, filter workitem.Filter, planStart time.Time, baselineIDs []string) (UnplannedAssessment, error)
	LeadTimeOverview(ctx context.Context, filter workitem.Filter) (Breakdown[LeadTimeStats], error)
}

// Options carries the recognized engine settings. Now is injectable so
// forecasts are reproducible in tests. IncludeDataDetailRows controls
// whether assessments carry per-item detail or counts only.
type Options struct {
	DailyWorkloadFallback float64
	IncludeActorBreakdown bool
	IncludeDataDetailRows bool
	Now                   func() time.Time
}

type service struct {
	uow       domain.UnitOfWork
	fetch     workitem.FetchAdapter
	directory workitem.ActorDirectory
	events    domain.EventBus
	opts      Options
}

func NewService(
	uow domain.UnitOfWork,
	fetch workitem.FetchAdapter,
	directory workitem.ActorDirectory,
	events domain.EventBus,
	opts Options,
) Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &service{
		uow:       uow,
		fetch:     fetch,
		directory: directory,
		events:    events,
		opts:      opts,
	}
}

// ProgressOverview computes a hierarchical completion ratio per root item.
// Roots default to the filter's top-level items; an explicit rootIDs list
// narrows them. The filter fetch and every closure level run inside one
// read transaction so all levels see the same snapshot.
func (s *service) ProgressOverview(ctx context.Context, filter workitem.Filter, rootIDs []string) (map[string]Progress, error) {
	var res map[string]Progress

	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		items, err := s.fetch.FindByFilter(ctx, filter)
		if err != nil {
			return err
		}

		roots := selectRoots(items, rootIDs)
		res = make(map[string]Progress, len(roots))

		if filter.Kind == workitem.KindCase {
			// Cases have no hierarchy; each root is its own closure.
			for _, root := range roots {
				res[root.ID] = ItemProgress(root, nil)
			}
			return nil
		}

		ids := make([]string, 0, len(roots))
		for _, root := range roots {
			ids = append(ids, root.ID)
		}

		resolver := NewResolver(s.fetch)
		closures, err := resolver.ResolveClosure(ctx, ids, workitem.Scope{
			ProjectID: filter.ProjectID,
			Kind:      filter.Kind,
		})
		if err != nil {
			return err
		}

		for _, root := range roots {
			res[root.ID] = ItemProgress(root, closures[root.ID])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.published(ctx, "report.progress", filter)
	return res, nil
}

// BurndownSeries buckets completions into gap-free daily series: per-day
// completed counts plus the cumulative processed workload.
func (s *service) BurndownSeries(ctx context.Context, filter workitem.Filter, from, to time.Time) (map[string]TimeSeries, error) {
	items, err := s.fetch.FindByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	series, err := BuildSeries(items, from, to, []MetricSpec{
		CompletedCountSpec("completed", false),
		CompletedWorkloadSpec("completed_workload", true),
	})
	if err != nil {
		return nil, err
	}

	s.published(ctx, "report.burndown", filter)
	return series, nil
}

// GrowthTrend buckets item creation into per-day and cumulative series.
func (s *service) GrowthTrend(ctx context.Context, filter workitem.Filter, from, to time.Time) (map[string]TimeSeries, error) {
	items, err := s.fetch.FindByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	series, err := BuildSeries(items, from, to, []MetricSpec{
		CreatedCountSpec("created", false),
		CreatedCountSpec("created_total", true),
	})
	if err != nil {
		return nil, err
	}

	s.published(ctx, "report.trend", filter)
	return series, nil
}

func (s *service) WorkloadOverview(ctx context.Context, filter workitem.Filter) (Breakdown[WorkloadStat], error) {
	b, err := overview(ctx, s, filter, "report.workload", func(items []workitem.WorkItem) func([]workitem.WorkItem) WorkloadStat {
		return ComputeWorkload
	})
	return b, err
}

func (s *service) OverdueOverview(ctx context.Context, filter workitem.Filter) (Breakdown[OverdueAssessment], error) {
	now := s.opts.Now()
	return overview(ctx, s, filter, "report.overdue", func(items []workitem.WorkItem) func([]workitem.WorkItem) OverdueAssessment {
		// One canonical rate per request, derived from the whole filtered
		// set and reused for every actor row.
		rate := DailyProcessedRate(items, s.opts.DailyWorkloadFallback)
		return func(sub []workitem.WorkItem) OverdueAssessment {
			a := Overdue(sub, rate, now)
			if !s.opts.IncludeDataDetailRows {
				a.AtRisk = nil
			}
			return a
		}
	})
}

func (s *service) LeadTimeOverview(ctx context.Context, filter workitem.Filter) (Breakdown[LeadTimeStats], error) {
	return overview(ctx, s, filter, "report.leadtime", func(items []workitem.WorkItem) func([]workitem.WorkItem) LeadTimeStats {
		return LeadTime
	})
}

func (s *service) UnplannedOverview(ctx context.Context, filter workitem.Filter, planStart time.Time, baselineIDs []string) (UnplannedAssessment, error) {
	items, err := s.fetch.FindByFilter(ctx, filter)
	if err != nil {
		return UnplannedAssessment{}, err
	}

	baseline := make(map[string]struct{}, len(baselineIDs))
	for _, id := range baselineIDs {
		baseline[id] = struct{}{}
	}

	rate := DailyProcessedRate(items, s.opts.DailyWorkloadFallback)
	a := Unplanned(items, planStart, baseline, rate)

	s.published(ctx, "report.unplanned", filter)
	return a, nil
}

// overview is the shared assemble-and-break-down path for aggregate kinds.
// Display names are resolved concurrently with aggregate computation; the
// final row order is by actor id, so output does not depend on timing.
func overview[T any](
	ctx context.Context,
	s *service,
	filter workitem.Filter,
	event string,
	makeCompute func([]workitem.WorkItem) func([]workitem.WorkItem) T,
) (Breakdown[T], error) {
	items, err := s.fetch.FindByFilter(ctx, filter)
	if err != nil {
		return Breakdown[T]{}, err
	}

	compute := makeCompute(items)
	singleUser := filter.SingleUser() || !s.opts.IncludeActorBreakdown

	var grouped map[string][]workitem.WorkItem
	names := map[string]workitem.DisplayInfo{}
	if !singleUser {
		grouped = GroupByActor(items, workitem.RoleAssignee)

		ids := make([]string, 0, len(grouped))
		for id := range grouped {
			ids = append(ids, id)
		}

		done := make(chan map[string]workitem.DisplayInfo, 1)
		go func() {
			resolved, err := s.directory.ResolveNames(ctx, ids)
			if err != nil {
				// Unresolved names degrade to placeholders.
				resolved = nil
			}
			done <- resolved
		}()

		total := compute(items)
		if resolved := <-done; resolved != nil {
			names = resolved
		}

		b := Compose(total, grouped, compute, false, names)
		s.published(ctx, event, filter)
		return b, nil
	}

	b := Compose(compute(items), nil, compute, true, names)
	s.published(ctx, event, filter)
	return b, nil
}

func (s *service) published(ctx context.Context, event string, filter workitem.Filter) {
	if s.events == nil {
		return
	}
	s.events.Publish(ctx, domain.Event{
		Type: event,
		Payload: map[string]any{
			"project_id": filter.ProjectID,
			"kind":       string(filter.Kind),
		},
	})
}

func selectRoots(items []workitem.WorkItem, rootIDs []string) []workitem.WorkItem {
	if len(rootIDs) == 0 {
		var roots []workitem.WorkItem
		for _, it := range items {
			if it.ParentID == nil {
				roots = append(roots, it)
			}
		}
		return roots
	}

	wanted := make(map[string]struct{}, len(rootIDs))
	for _, id := range rootIDs {
		wanted[id] = struct{}{}
	}
	var roots []workitem.WorkItem
	for _, it := range items {
		if _, ok := wanted[it.ID]; ok {
			roots = append(roots, it)
		}
	}
	return roots
}
