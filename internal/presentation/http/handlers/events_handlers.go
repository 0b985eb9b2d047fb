package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/sauntrix/sauntrix-go/internal/infrastructure/messaging"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/observability/logging"
)

// EventsHandlers streams change events and notifications to browsers over SSE.
type EventsHandlers struct {
	broadcaster *messaging.SSEBroadcaster
	logger      *logging.ChanneledLogger
}

// NewEventsHandlers creates SSE handlers with injected dependencies
func NewEventsHandlers(broadcaster *messaging.SSEBroadcaster, logger *logging.ChanneledLogger) *EventsHandlers {
	return &EventsHandlers{broadcaster: broadcaster, logger: logger}
}

// GetEvents handles GET /api/v1/events - the SSE stream. Holds the connection
// open until the client goes away.
func (h *EventsHandlers) GetEvents(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	ch := h.broadcaster.AddClient()
	defer h.broadcaster.RemoveClient(ch)

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case message, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("message", message)
			return true
		}
	})
}
