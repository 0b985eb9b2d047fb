// Package stores provides the concrete content cache store.
package stores

import (
	"time"

	"github.com/sauntrix/sauntrix-go/internal/infrastructure/caching/types"
)

// ContentStore wraps the ContentCache with a read/write-locked mutation API.
// Reads never block on I/O and never fail: absence comes back as a zero value
// plus false, so callers supply their own fallback.
type ContentStore struct {
	cache *types.ContentCache
}

// NewContentStore creates a content store seeded with built-in defaults.
func NewContentStore() *ContentStore {
	return &ContentStore{cache: types.NewContentCache()}
}

// SetLoading flips the bulk-load-in-progress flag.
func (cs *ContentStore) SetLoading(loading bool) {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()
	cs.cache.Loading = loading
}

// Loading reports whether a bulk load is in progress.
func (cs *ContentStore) Loading() bool {
	cs.cache.Mu.RLock()
	defer cs.cache.Mu.RUnlock()
	return cs.cache.Loading
}

// LastUpdated reports when any collection last changed.
func (cs *ContentStore) LastUpdated() time.Time {
	cs.cache.Mu.RLock()
	defer cs.cache.Mu.RUnlock()
	return cs.cache.LastUpdated
}

// touch must be called with the write lock held.
func (cs *ContentStore) touch() {
	cs.cache.LastUpdated = time.Now().UTC()
}
