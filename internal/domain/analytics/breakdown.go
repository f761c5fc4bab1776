package analytics

import (
	"sort"

	"trackstat/internal/domain/workitem"
)

// GroupByActor partitions items by the requested actor role. Items without
// an actor in that role are skipped; they still contribute to Total.
func GroupByActor(items []workitem.WorkItem, role workitem.ActorRole) map[string][]workitem.WorkItem {
	grouped := make(map[string][]workitem.WorkItem)
	for _, it := range items {
		id := it.AssigneeID
		if role == workitem.RoleCreator {
			id = it.CreatorID
		}
		if id == "" {
			continue
		}
		grouped[id] = append(grouped[id], it)
	}
	return grouped
}

// Compose assembles the Total row plus per-actor detail rows for any
// aggregate kind. When the request filter already isolates a single user the
// per-actor rows are suppressed: Total is that actor's aggregate and
// repeating it would be redundant. Actors missing from names degrade to an
// id-only placeholder. Rows are sorted by actor id so output is reproducible.
func Compose[T any](
	total T,
	grouped map[string][]workitem.WorkItem,
	compute func([]workitem.WorkItem) T,
	singleUser bool,
	names map[string]workitem.DisplayInfo,
) Breakdown[T] {
	b := Breakdown[T]{Total: total}
	if singleUser {
		return b
	}

	ids := make([]string, 0, len(grouped))
	for id := range grouped {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	b.PerActor = make([]BreakdownRow[T], 0, len(ids))
	for _, id := range ids {
		info, ok := names[id]
		if !ok {
			info = workitem.DisplayInfo{ID: id}
		}
		b.PerActor = append(b.PerActor, BreakdownRow[T]{
			Actor: info,
			Value: compute(grouped[id]),
		})
	}
	return b
}
