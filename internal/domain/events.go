package domain

import "context"

// Event is published after a report is computed. Delivery is best-effort
// and asynchronous; request handling never waits on it.
type Event struct {
	Type    string
	Payload map[string]any
}

type EventBus interface {
	Publish(ctx context.Context, e Event)
}
