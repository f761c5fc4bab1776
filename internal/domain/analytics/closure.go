package analytics

import (
	"context"
	"sort"

	"trackstat/internal/domain/workitem"
)

// Resolver expands root work items into their full descendant sets.
type Resolver struct {
	fetch workitem.FetchAdapter
}

func NewResolver(fetch workitem.FetchAdapter) *Resolver {
	return &Resolver{fetch: fetch}
}

// ResolveClosure walks the subtask tree level by level until a fetch returns
// no new items. Each returned slice holds the transitive descendants of its
// root, sorted by id. A visited-id set bounds the walk, so cyclic parent
// chains in corrupt data cannot loop forever. Fetch errors propagate
// unchanged; no partial closure is returned.
func (r *Resolver) ResolveClosure(ctx context.Context, rootIDs []string, scope workitem.Scope) (map[string][]workitem.WorkItem, error) {
	closure := make(map[string][]workitem.WorkItem, len(rootIDs))
	rootOf := make(map[string]string, len(rootIDs))
	visited := make(map[string]struct{}, len(rootIDs))

	frontier := make([]string, 0, len(rootIDs))
	for _, id := range rootIDs {
		closure[id] = nil
		rootOf[id] = id
		visited[id] = struct{}{}
		frontier = append(frontier, id)
	}

	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		children, err := r.fetch.FindByParentIDs(ctx, frontier, scope)
		if err != nil {
			return nil, err
		}

		frontier = frontier[:0]
		for _, child := range children {
			if _, seen := visited[child.ID]; seen {
				continue
			}
			if child.ParentID == nil {
				continue
			}
			root, ok := rootOf[*child.ParentID]
			if !ok {
				continue
			}
			visited[child.ID] = struct{}{}
			rootOf[child.ID] = root
			closure[root] = append(closure[root], child)
			frontier = append(frontier, child.ID)
		}
	}

	for id := range closure {
		sort.Slice(closure[id], func(i, j int) bool {
			return closure[id][i].ID < closure[id][j].ID
		})
	}

	return closure, nil
}
