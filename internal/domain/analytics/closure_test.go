package analytics_test

import (
	"context"
	"errors"
	"testing"

	"trackstat/internal/domain/analytics"
	"trackstat/internal/domain/workitem"
)

func TestResolver_ExpandsAllLevels(t *testing.T) {
	f := &fetchFake{children: map[string][]workitem.WorkItem{
		"t1": {task("t2", "t1", workitem.StatusOpen), task("t3", "t1", workitem.StatusOpen)},
		"t3": {task("t4", "t3", workitem.StatusOpen)},
		"t4": {task("t5", "t4", workitem.StatusCompleted)},
	}}
	r := analytics.NewResolver(f)

	closures, err := r.ResolveClosure(context.Background(), []string{"t1"}, workitem.Scope{ProjectID: "p1"})
	if err != nil {
		t.Fatalf("ResolveClosure: %v", err)
	}

	got := closures["t1"]
	wantIDs := []string{"t2", "t3", "t4", "t5"}
	if len(got) != len(wantIDs) {
		t.Fatalf("want %d descendants, got %d: %v", len(wantIDs), len(got), got)
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Fatalf("descendants not sorted by id: want %s at %d, got %s", id, i, got[i].ID)
		}
	}
}

func TestResolver_MultipleRootsAttributedSeparately(t *testing.T) {
	f := &fetchFake{children: map[string][]workitem.WorkItem{
		"a": {task("a1", "a", workitem.StatusOpen)},
		"b": {task("b1", "b", workitem.StatusOpen), task("b2", "b", workitem.StatusOpen)},
	}}
	r := analytics.NewResolver(f)

	closures, err := r.ResolveClosure(context.Background(), []string{"a", "b"}, workitem.Scope{ProjectID: "p1"})
	if err != nil {
		t.Fatalf("ResolveClosure: %v", err)
	}
	if len(closures["a"]) != 1 || len(closures["b"]) != 2 {
		t.Fatalf("descendants attributed to wrong roots: %v", closures)
	}
}

func TestResolver_CyclicDataTerminates(t *testing.T) {
	// Corrupt data: t2's child list loops back to the root.
	f := &fetchFake{children: map[string][]workitem.WorkItem{
		"t1": {task("t2", "t1", workitem.StatusOpen)},
		"t2": {task("t1", "t2", workitem.StatusOpen)},
	}}
	r := analytics.NewResolver(f)

	closures, err := r.ResolveClosure(context.Background(), []string{"t1"}, workitem.Scope{ProjectID: "p1"})
	if err != nil {
		t.Fatalf("ResolveClosure: %v", err)
	}
	if len(closures["t1"]) != 1 || closures["t1"][0].ID != "t2" {
		t.Fatalf("want each item at most once, got %v", closures["t1"])
	}
}

func TestResolver_FetchErrorPropagates(t *testing.T) {
	wantErr := errors.New("timeout")
	r := analytics.NewResolver(&fetchFake{err: wantErr})

	_, err := r.ResolveClosure(context.Background(), []string{"t1"}, workitem.Scope{ProjectID: "p1"})
	if !errors.Is(err, wantErr) {
		t.Fatalf("want fetch error unchanged, got %v", err)
	}
}

func TestResolver_CancellationAbortsExpansion(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := &fetchFake{children: map[string][]workitem.WorkItem{
		"t1": {task("t2", "t1", workitem.StatusOpen)},
	}}
	r := analytics.NewResolver(f)

	_, err := r.ResolveClosure(ctx, []string{"t1"}, workitem.Scope{ProjectID: "p1"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
	if f.levels != 0 {
		t.Fatalf("no level should be fetched after cancellation, got %d", f.levels)
	}
}
