// Package natshub implements the notification hub on NATS core pub/sub.
// Events are JSON on the wire; delivery is at-most-once, which matches the
// hub contract: a missed dashboard update is not an error worth a retry
// queue.
package natshub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/nats-io/nats.go"
)

const subscriberBuffer = 64

// Hub publishes and subscribes lifecycle events over a single NATS
// connection. It implements both ports.EventPublisher and
// ports.EventSubscriber.
type Hub struct {
	conn   *nats.Conn
	logger *slog.Logger
}

// NewHub connects to the NATS server at the given URL.
func NewHub(url string, logger *slog.Logger) (*Hub, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &Hub{
		conn:   conn,
		logger: logger.With("component", "natshub"),
	}, nil
}

// Publish marshals the payload to JSON and publishes it on the channel.
// Returns once the message is handed to the connection; there is no
// delivery confirmation.
func (h *Hub) Publish(_ context.Context, channel string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event for %s: %w", channel, err)
	}

	if err := h.conn.Publish(channel, data); err != nil {
		return fmt.Errorf("failed to publish on %s: %w", channel, err)
	}

	return nil
}

// Subscribe opens a stream of raw payloads for the channel. Messages that
// arrive while the subscriber's buffer is full are dropped so one stalled
// consumer never backs up the hub. The returned cancel function drains the
// subscription.
func (h *Hub) Subscribe(ctx context.Context, channel string) (<-chan []byte, func(), error) {
	out := make(chan []byte, subscriberBuffer)

	// The closed flag covers the window between Unsubscribe and the last
	// in-flight callback; sending on a closed channel would panic.
	var (
		mu     sync.Mutex
		closed bool
	)

	sub, err := h.conn.Subscribe(channel, func(msg *nats.Msg) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		select {
		case out <- msg.Data:
		default:
			h.logger.Warn("dropping event for slow subscriber", "channel", channel)
		}
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to subscribe to %s: %w", channel, err)
	}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			if err := sub.Unsubscribe(); err != nil {
				h.logger.Warn("failed to unsubscribe", "channel", channel, "error", err)
			}
			mu.Lock()
			closed = true
			close(out)
			mu.Unlock()
		})
	}

	// Release the subscription when the caller's context ends, whichever
	// comes first.
	go func() {
		<-ctx.Done()
		cancel()
	}()

	return out, cancel, nil
}

// Close drains and closes the NATS connection.
func (h *Hub) Close() {
	h.conn.Close()
}
