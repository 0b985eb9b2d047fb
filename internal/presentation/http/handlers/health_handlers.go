package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sauntrix/sauntrix-go/internal/infrastructure/caching/stores"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/messaging"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/remotestore"
)

// HealthHandlers reports service liveness and cache state.
type HealthHandlers struct {
	store       remotestore.Client
	cache       *stores.ContentStore
	broadcaster *messaging.SSEBroadcaster
}

// NewHealthHandlers creates health handlers with injected dependencies
func NewHealthHandlers(store remotestore.Client, cache *stores.ContentStore, broadcaster *messaging.SSEBroadcaster) *HealthHandlers {
	return &HealthHandlers{store: store, cache: cache, broadcaster: broadcaster}
}

// GetHealth handles GET /api/v1/health
func (h *HealthHandlers) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"storeConfigured": h.store.Configured(),
		"loading":         h.cache.Loading(),
		"lastUpdated":     h.cache.LastUpdated(),
		"sseClients":      h.broadcaster.ClientCount(),
	})
}
