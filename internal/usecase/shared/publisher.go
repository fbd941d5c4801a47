package shared

import (
	"context"

	"queueless/internal/domain/queue"
)

// EventPublisher hands queue events to asynchronous consumers. Publishing
// never fails the caller's operation; delivery problems are the
// publisher's to retry and report.
type EventPublisher interface {
	PublishTransition(ctx context.Context, event queue.TransitionEvent)
	PublishEstimates(ctx context.Context, updates []queue.EstimateUpdate)
}
