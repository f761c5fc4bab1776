package handler

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"trackstat/internal/app/dto"
	"trackstat/internal/domain/analytics"
	"trackstat/internal/domain/workitem"
)

const dateLayout = "2006-01-02"

func parseFilter(c *gin.Context) (workitem.Filter, string) {
	projectID := c.Query("project_id")
	if projectID == "" {
		return workitem.Filter{}, "project_id is required"
	}

	f := workitem.Filter{ProjectID: projectID}

	switch strings.ToLower(c.DefaultQuery("kind", "task")) {
	case "task":
		f.Kind = workitem.KindTask
	case "case":
		f.Kind = workitem.KindCase
	default:
		return workitem.Filter{}, "kind must be one of: task, case"
	}

	if v := c.Query("plan_id"); v != "" {
		f.PlanID = &v
	}
	if v := c.Query("actor_id"); v != "" {
		f.SingleActorID = &v
	}
	return f, ""
}

func parseRange(c *gin.Context) (time.Time, time.Time, string) {
	fromRaw := c.Query("from")
	toRaw := c.Query("to")
	if fromRaw == "" || toRaw == "" {
		return time.Time{}, time.Time{}, "from and to are required (YYYY-MM-DD)"
	}

	from, err := time.Parse(dateLayout, fromRaw)
	if err != nil {
		return time.Time{}, time.Time{}, "from must be YYYY-MM-DD"
	}
	to, err := time.Parse(dateLayout, toRaw)
	if err != nil {
		return time.Time{}, time.Time{}, "to must be YYYY-MM-DD"
	}
	return from, to, ""
}

func (h *Handler) Progress(c *gin.Context) {
	filter, msg := parseFilter(c)
	if msg != "" {
		h.badRequest(c, msg)
		return
	}

	var rootIDs []string
	if v := c.Query("root_ids"); v != "" {
		rootIDs = strings.Split(v, ",")
	}

	res, err := h.AnalyticsSvc.ProgressOverview(c.Request.Context(), filter, rootIDs)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := dto.ProgressResponse{Items: make([]dto.ItemProgress, 0, len(res))}
	for id, p := range res {
		resp.Items = append(resp.Items, dto.ItemProgress{
			ItemID:   id,
			Progress: toProgressDTO(p),
		})
	}
	sort.Slice(resp.Items, func(i, j int) bool { return resp.Items[i].ItemID < resp.Items[j].ItemID })

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Burndown(c *gin.Context) {
	h.series(c, h.AnalyticsSvc.BurndownSeries)
}

func (h *Handler) Trend(c *gin.Context) {
	h.series(c, h.AnalyticsSvc.GrowthTrend)
}

func (h *Handler) series(
	c *gin.Context,
	build func(ctx context.Context, filter workitem.Filter, from, to time.Time) (map[string]analytics.TimeSeries, error),
) {
	filter, msg := parseFilter(c)
	if msg != "" {
		h.badRequest(c, msg)
		return
	}
	from, to, msg := parseRange(c)
	if msg != "" {
		h.badRequest(c, msg)
		return
	}

	series, err := build(c.Request.Context(), filter, from, to)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := dto.SeriesResponse{
		Start:  from.Format(dateLayout),
		End:    to.Format(dateLayout),
		Series: make(map[string][]dto.SeriesPoint, len(series)),
	}
	for name, ts := range series {
		points := make([]dto.SeriesPoint, 0, len(ts))
		for _, p := range ts {
			points = append(points, dto.SeriesPoint{Date: p.Label, Value: p.Value})
		}
		resp.Series[name] = points
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Workload(c *gin.Context) {
	filter, msg := parseFilter(c)
	if msg != "" {
		h.badRequest(c, msg)
		return
	}

	b, err := h.AnalyticsSvc.WorkloadOverview(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := dto.WorkloadResponse{
		Total:    toWorkloadDTO(b.Total),
		PerActor: make([]dto.WorkloadRow, 0, len(b.PerActor)),
	}
	for _, row := range b.PerActor {
		resp.PerActor = append(resp.PerActor, dto.WorkloadRow{
			Actor:        toActorDTO(row.Actor),
			WorkloadStat: toWorkloadDTO(row.Value),
		})
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Overdue(c *gin.Context) {
	filter, msg := parseFilter(c)
	if msg != "" {
		h.badRequest(c, msg)
		return
	}

	b, err := h.AnalyticsSvc.OverdueOverview(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := dto.OverdueResponse{
		Total:    toOverdueDTO(b.Total),
		PerActor: make([]dto.OverdueRow, 0, len(b.PerActor)),
	}
	for _, row := range b.PerActor {
		resp.PerActor = append(resp.PerActor, dto.OverdueRow{
			Actor:             toActorDTO(row.Actor),
			OverdueAssessment: toOverdueDTO(row.Value),
		})
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) LeadTime(c *gin.Context) {
	filter, msg := parseFilter(c)
	if msg != "" {
		h.badRequest(c, msg)
		return
	}

	b, err := h.AnalyticsSvc.LeadTimeOverview(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := dto.LeadTimeResponse{
		Total:    dto.LeadTimeStats{Completed: b.Total.Completed, AvgDays: b.Total.AvgDays},
		PerActor: make([]dto.LeadTimeRow, 0, len(b.PerActor)),
	}
	for _, row := range b.PerActor {
		resp.PerActor = append(resp.PerActor, dto.LeadTimeRow{
			Actor:         toActorDTO(row.Actor),
			LeadTimeStats: dto.LeadTimeStats{Completed: row.Value.Completed, AvgDays: row.Value.AvgDays},
		})
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Unplanned(c *gin.Context) {
	filter, msg := parseFilter(c)
	if msg != "" {
		h.badRequest(c, msg)
		return
	}

	planStartRaw := c.Query("plan_start")
	if planStartRaw == "" {
		h.badRequest(c, "plan_start is required (YYYY-MM-DD)")
		return
	}
	planStart, err := time.Parse(dateLayout, planStartRaw)
	if err != nil {
		h.badRequest(c, "plan_start must be YYYY-MM-DD")
		return
	}

	var baselineIDs []string
	if v := c.Query("baseline_ids"); v != "" {
		baselineIDs = strings.Split(v, ",")
	}

	a, err := h.AnalyticsSvc.UnplannedOverview(c.Request.Context(), filter, planStart, baselineIDs)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UnplannedResponse{
		RateKnown: a.RateKnown,
		Count:     a.Count,
		Workload:  a.Workload,
		Days:      a.Days,
	})
}

func toProgressDTO(p analytics.Progress) dto.Progress {
	return dto.Progress{
		Completed:     p.Completed,
		Total:         p.Total,
		CompletedRate: p.CompletedRate,
	}
}

func toActorDTO(a workitem.DisplayInfo) dto.Actor {
	return dto.Actor{ID: a.ID, Name: a.Name, Avatar: a.Avatar}
}

func toWorkloadDTO(w analytics.WorkloadStat) dto.WorkloadStat {
	return dto.WorkloadStat{
		Items:     w.Items,
		Estimated: w.Estimated,
		Actual:    w.Actual,
		Remaining: w.Remaining,
	}
}

func toOverdueDTO(a analytics.OverdueAssessment) dto.OverdueAssessment {
	out := dto.OverdueAssessment{
		RateKnown:        a.RateKnown,
		Rate:             a.Rate,
		OpenWithDeadline: a.OpenWithDeadline,
		AtRiskCount:      a.AtRiskCount,
		AtRisk:           make([]dto.OverdueItem, 0, len(a.AtRisk)),
	}
	for _, it := range a.AtRisk {
		out.AtRisk = append(out.AtRisk, dto.OverdueItem{
			ItemID:      it.ItemID,
			Deadline:    it.Deadline.Format(dateLayout),
			ProjectedAt: it.ProjectedAt.Format(dateLayout),
			Remaining:   it.Remaining,
		})
	}
	return out
}
