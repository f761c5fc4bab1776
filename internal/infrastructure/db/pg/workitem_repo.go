package pg

import (
	"context"
	"database/sql"

	"trackstat/internal/domain/workitem"
)

// WorkItemRepository implements workitem.FetchAdapter over the work_items
// table. The engine never touches storage directly; everything goes through
// these two queries.
type WorkItemRepository struct {
	db *sql.DB
}

func NewWorkItemRepository(db *sql.DB) *WorkItemRepository {
	return &WorkItemRepository{db: db}
}

const itemColumns = `item_id, parent_id, project_id, plan_id, kind, status,
	assignee_id, creator_id, created_at, start_at, deadline, completed_at,
	estimated, actual`

func (r *WorkItemRepository) FindByParentIDs(ctx context.Context, ids []string, scope workitem.Scope) ([]workitem.WorkItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := query(ctx, r.db,
		`SELECT `+itemColumns+`
		   FROM work_items
		  WHERE parent_id = ANY($1)
		    AND project_id = $2
		  ORDER BY item_id`,
		ids, scope.ProjectID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *WorkItemRepository) FindByFilter(ctx context.Context, f workitem.Filter) ([]workitem.WorkItem, error) {
	var planID, actorID any
	if f.PlanID != nil {
		planID = *f.PlanID
	}
	if f.SingleActorID != nil {
		actorID = *f.SingleActorID
	}

	var actorIDs any
	if len(f.ActorIDs) > 0 {
		actorIDs = f.ActorIDs
	}

	var from, to any
	if f.From != nil {
		from = *f.From
	}
	if f.To != nil {
		to = *f.To
	}

	rows, err := query(ctx, r.db,
		`SELECT `+itemColumns+`
		   FROM work_items
		  WHERE project_id = $1
		    AND ($2::text = '' OR kind = $2::text)
		    AND ($3::text IS NULL OR plan_id = $3::text)
		    AND ($4::text IS NULL OR assignee_id = $4::text)
		    AND ($5::text[] IS NULL OR assignee_id = ANY($5::text[]))
		    AND ($6::timestamptz IS NULL OR created_at >= $6::timestamptz)
		    AND ($7::timestamptz IS NULL OR created_at <= $7::timestamptz)
		  ORDER BY item_id`,
		f.ProjectID, string(f.Kind), planID, actorID, actorIDs, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}

func scanItems(rows *sql.Rows) ([]workitem.WorkItem, error) {
	var res []workitem.WorkItem
	for rows.Next() {
		var (
			w           workitem.WorkItem
			parentID    sql.NullString
			planID      sql.NullString
			startAt     sql.NullTime
			deadline    sql.NullTime
			completedAt sql.NullTime
		)
		if err := rows.Scan(
			&w.ID,
			&parentID,
			&w.ProjectID,
			&planID,
			&w.Kind,
			&w.Status,
			&w.AssigneeID,
			&w.CreatorID,
			&w.CreatedAt,
			&startAt,
			&deadline,
			&completedAt,
			&w.Estimated,
			&w.Actual,
		); err != nil {
			return nil, err
		}
		if parentID.Valid {
			w.ParentID = &parentID.String
		}
		if planID.Valid {
			w.PlanID = &planID.String
		}
		if startAt.Valid {
			w.StartAt = &startAt.Time
		}
		if deadline.Valid {
			w.Deadline = &deadline.Time
		}
		if completedAt.Valid {
			w.CompletedAt = &completedAt.Time
		}
		res = append(res, w)
	}
	return res, rows.Err()
}
