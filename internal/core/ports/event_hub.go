package ports

import (
	"context"
)

// EventPublisher publishes lifecycle events onto named channels of the
// notification hub. Publishing is fire-and-forget from the lifecycle engine's
// point of view: a call returns once the event is handed to the hub, a missing
// subscriber is not an error, and a slow subscriber must never block the
// publisher.
type EventPublisher interface {
	Publish(ctx context.Context, channel string, payload any) error
}

// EventSubscriber delivers the payloads published on a channel, in publish
// order per subscriber. It is consumed by the transport layer to feed
// real-time client streams; the hub itself performs no payload filtering.
type EventSubscriber interface {
	// Subscribe opens a stream of raw event payloads for the channel. The
	// returned cancel function releases the subscription.
	Subscribe(ctx context.Context, channel string) (<-chan []byte, func(), error)
}
