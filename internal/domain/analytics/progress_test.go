package analytics_test

import (
	"testing"

	"trackstat/internal/domain/analytics"
	"trackstat/internal/domain/workitem"
)

func TestComputeProgress_CanceledExcludedFromTotal(t *testing.T) {
	root := task("t1", "", workitem.StatusCompleted)
	p := analytics.ItemProgress(root, []workitem.WorkItem{
		task("t2", "t1", workitem.StatusCompleted),
		task("t3", "t1", workitem.StatusCanceled),
	})

	if p.Completed != 2 || p.Total != 2 || p.CompletedRate != 100 {
		t.Fatalf("want {completed:2 total:2 rate:100}, got %+v", p)
	}
}

func TestComputeProgress_Invariants(t *testing.T) {
	sets := [][]workitem.WorkItem{
		nil,
		{task("a", "", workitem.StatusOpen)},
		{task("a", "", workitem.StatusCanceled)},
		{task("a", "", workitem.StatusCompleted), task("b", "", workitem.StatusInProgress)},
		{task("a", "", workitem.StatusReopened), task("b", "", workitem.StatusPending)},
	}

	for i, items := range sets {
		p := analytics.ComputeProgress(items)
		if p.Completed > p.Total {
			t.Fatalf("set %d: completed %d > total %d", i, p.Completed, p.Total)
		}
		if p.CompletedRate < 0 || p.CompletedRate > 100 {
			t.Fatalf("set %d: rate %v out of [0,100]", i, p.CompletedRate)
		}
	}
}

func TestComputeProgress_EmptySetIsZero(t *testing.T) {
	p := analytics.ComputeProgress(nil)
	if p.Completed != 0 || p.Total != 0 || p.CompletedRate != 0 {
		t.Fatalf("want zero progress, got %+v", p)
	}
}

func TestItemProgress_LeafEqualsSingleItemClosure(t *testing.T) {
	for _, status := range []workitem.Status{
		workitem.StatusOpen,
		workitem.StatusCompleted,
		workitem.StatusCanceled,
	} {
		leaf := task("t1", "", status)
		asLeaf := analytics.ItemProgress(leaf, nil)
		asClosure := analytics.ComputeProgress([]workitem.WorkItem{leaf})
		if asLeaf != asClosure {
			t.Fatalf("status %s: leaf %+v != closure %+v", status, asLeaf, asClosure)
		}
	}
}

func TestComputeProgress_RateRoundsToTwoDecimals(t *testing.T) {
	p := analytics.ComputeProgress([]workitem.WorkItem{
		task("a", "", workitem.StatusCompleted),
		task("b", "", workitem.StatusOpen),
		task("c", "", workitem.StatusOpen),
	})
	if p.CompletedRate != 33.33 {
		t.Fatalf("want 33.33, got %v", p.CompletedRate)
	}
}
