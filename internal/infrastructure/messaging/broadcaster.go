// Package messaging provides the SSE fan-out used for change events and
// transient notifications.
package messaging

import (
	"sync"

	json "github.com/goccy/go-json"

	"github.com/sauntrix/sauntrix-go/internal/infrastructure/observability/logging"
	"github.com/sauntrix/sauntrix-go/pkg/config"
)

// SSEBroadcaster fans messages out to every connected SSE client. Sends are
// non-blocking: a client that cannot keep up loses messages rather than
// stalling the producer.
type SSEBroadcaster struct {
	clients map[chan string]struct{}
	mu      sync.Mutex
	logger  *logging.ChanneledLogger
}

// NewSSEBroadcaster creates the broadcaster singleton.
func NewSSEBroadcaster(logger *logging.ChanneledLogger) *SSEBroadcaster {
	return &SSEBroadcaster{
		clients: make(map[chan string]struct{}),
		logger:  logger,
	}
}

// AddClient registers a new SSE client and returns its message channel.
func (b *SSEBroadcaster) AddClient() chan string {
	ch := make(chan string, config.SSEClientBufferSize)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.clients[ch] = struct{}{}

	b.logger.SSE().Debug("SSE client registered", "clients", len(b.clients))
	return ch
}

// RemoveClient unregisters a client and closes its channel.
func (b *SSEBroadcaster) RemoveClient(ch chan string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.clients[ch]; !ok {
		return
	}
	delete(b.clients, ch)
	close(ch)
	b.logger.SSE().Debug("SSE client unregistered", "clients", len(b.clients))
}

// ClientCount returns the number of connected clients.
func (b *SSEBroadcaster) ClientCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.clients)
}

// Broadcast marshals the payload and delivers it to every client.
func (b *SSEBroadcaster) Broadcast(payload any) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		b.logger.SSE().Error("Broadcast payload marshal failed", "error", err.Error())
		return
	}
	message := string(encoded)

	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.clients {
		select {
		case ch <- message:
		default:
			b.logger.SSE().Warn("SSE message dropped, client too slow")
		}
	}
}
