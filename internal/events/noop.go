package events

import "context"

// NoopPublisher drops every event. Used by one-shot commands that never publish.
type NoopPublisher struct{}

func (n *NoopPublisher) Publish(ctx context.Context, topic string, event any) error {
	return nil
}

func (n *NoopPublisher) Close() error {
	return nil
}
