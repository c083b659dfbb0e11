package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	"eats/internal/core/application/events"
	"eats/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// streamChannels are the hub channels a client may attach to.
var streamChannels = []string{
	events.NewPendingOrderChannel,
	events.NewCookedOrderChannel,
	events.NewOrderUpdateChannel,
}

// StreamHandler relays hub events to clients over Server-Sent Events. Each
// connection subscribes to one channel and receives every event published on
// it; filtering to the events the client cares about happens client-side.
type StreamHandler struct {
	subscriber ports.EventSubscriber
	logger     *slog.Logger
}

// NewStreamHandler creates the SSE relay.
func NewStreamHandler(subscriber ports.EventSubscriber, logger *slog.Logger) *StreamHandler {
	return &StreamHandler{
		subscriber: subscriber,
		logger:     logger.With("component", "stream"),
	}
}

// Serve attaches the client to the channel named by the "channel" query
// parameter and streams its events until the client disconnects.
func (h *StreamHandler) Serve(c echo.Context) error {
	channel := c.QueryParam("channel")
	if !slices.Contains(streamChannels, channel) {
		return respondError(c, http.StatusBadRequest, "unknown channel")
	}

	ctx := c.Request().Context()
	eventsCh, cancel, err := h.subscriber.Subscribe(ctx, channel)
	if err != nil {
		h.logger.Error("subscribe failed", "channel", channel, "error", err)
		return respondError(c, http.StatusInternalServerError, "internal error")
	}
	defer cancel()

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	for {
		select {
		case <-ctx.Done():
			return nil
		case data, ok := <-eventsCh:
			if !ok {
				return nil
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", channel, data); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}
