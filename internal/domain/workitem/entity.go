package workitem

import "time"

type Kind string

const (
	KindTask Kind = "TASK"
	KindCase Kind = "CASE"
)

type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCanceled   Status = "CANCELED"
	StatusPending    Status = "PENDING_CONFIRM"
	StatusReopened   Status = "REOPENED"
)

// WorkItem is the unit being analyzed: a task (may have subtasks) or a
// functional test case (flat, no hierarchy).
type WorkItem struct {
	ID          string
	ParentID    *string
	ProjectID   string
	PlanID      *string
	Kind        Kind
	Status      Status
	AssigneeID  string
	CreatorID   string
	CreatedAt   time.Time
	StartAt     *time.Time
	Deadline    *time.Time
	CompletedAt *time.Time
	Estimated   float64
	Actual      float64
}

// Completed reports whether the item counts toward "completed" in aggregates.
func (w WorkItem) Completed() bool {
	return w.Status == StatusCompleted
}

// Counted reports whether the item counts toward "total" in aggregates.
// Canceled items are excluded everywhere.
func (w WorkItem) Counted() bool {
	return w.Status != StatusCanceled
}

// RemainingWorkload is the estimated effort still open on the item.
func (w WorkItem) RemainingWorkload() float64 {
	if w.Completed() {
		return 0
	}
	rem := w.Estimated - w.Actual
	if rem < 0 {
		return 0
	}
	return rem
}

type Scope struct {
	ProjectID string
	Kind      Kind
}

// ActorRole selects which actor field grouping operates on.
type ActorRole string

const (
	RoleAssignee ActorRole = "ASSIGNEE"
	RoleCreator  ActorRole = "CREATOR"
)

// Filter narrows FindByFilter queries. Nil pointer fields mean "no constraint".
// SingleActorID is set when the caller's organization filter already isolates
// exactly one user; aggregates then skip the per-actor breakdown.
type Filter struct {
	ProjectID     string
	PlanID        *string
	Kind          Kind
	ActorIDs      []string
	SingleActorID *string
	From          *time.Time
	To            *time.Time
}

// SingleUser reports whether the filter isolates exactly one actor.
func (f Filter) SingleUser() bool {
	return f.SingleActorID != nil
}

// DisplayInfo is the renderable identity of an actor row.
type DisplayInfo struct {
	ID     string
	Name   string
	Avatar string
}
