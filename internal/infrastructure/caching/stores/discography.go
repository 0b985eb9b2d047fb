package stores

import (
	"github.com/sauntrix/sauntrix-go/internal/domain/entities/content"
)

// Discography returns a copy of the cached discography in fetch order.
func (cs *ContentStore) Discography() []content.DiscographyItem {
	cs.cache.Mu.RLock()
	defer cs.cache.Mu.RUnlock()
	out := make([]content.DiscographyItem, len(cs.cache.Discography))
	copy(out, cs.cache.Discography)
	return out
}

// SetDiscography replaces the collection wholesale (bulk load path).
func (cs *ContentStore) SetDiscography(items []content.DiscographyItem) {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()
	cs.cache.Discography = append([]content.DiscographyItem(nil), items...)
	cs.touch()
}

// InsertDiscographyItem appends the item unless its id is already cached.
// Safe against duplicate event delivery.
func (cs *ContentStore) InsertDiscographyItem(item content.DiscographyItem) bool {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()
	for i := range cs.cache.Discography {
		if cs.cache.Discography[i].ID == item.ID {
			return false
		}
	}
	cs.cache.Discography = append(cs.cache.Discography, item)
	cs.touch()
	return true
}

// UpdateDiscographyItem replaces the entry matching the item's id. A miss is
// a no-op so stale events cannot resurrect deleted rows.
func (cs *ContentStore) UpdateDiscographyItem(item content.DiscographyItem) bool {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()
	for i := range cs.cache.Discography {
		if cs.cache.Discography[i].ID == item.ID {
			cs.cache.Discography[i] = item
			cs.touch()
			return true
		}
	}
	return false
}

// RemoveDiscographyItem deletes by id; a miss is a no-op.
func (cs *ContentStore) RemoveDiscographyItem(id string) bool {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()
	for i := range cs.cache.Discography {
		if cs.cache.Discography[i].ID == id {
			cs.cache.Discography = append(cs.cache.Discography[:i], cs.cache.Discography[i+1:]...)
			cs.touch()
			return true
		}
	}
	return false
}
