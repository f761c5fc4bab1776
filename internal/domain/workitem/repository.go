package workitem

import "context"

// FetchAdapter is the engine's only data boundary. Implementations own
// persistence, caching and retry policy; the engine propagates their errors
// unchanged.
type FetchAdapter interface {
	FindByParentIDs(ctx context.Context, ids []string, scope Scope) ([]WorkItem, error)
	FindByFilter(ctx context.Context, filter Filter) ([]WorkItem, error)
}

// ActorDirectory resolves actor ids to display info. A missing id in the
// result map is non-fatal; callers degrade to an empty-name placeholder.
type ActorDirectory interface {
	ResolveNames(ctx context.Context, ids []string) (map[string]DisplayInfo, error)
}
