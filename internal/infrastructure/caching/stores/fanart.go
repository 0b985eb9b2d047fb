package stores

import (
	"github.com/sauntrix/sauntrix-go/internal/domain/entities/content"
)

// Fanart returns a copy of all cached fanart, every status included.
func (cs *ContentStore) Fanart() []content.FanartItem {
	cs.cache.Mu.RLock()
	defer cs.cache.Mu.RUnlock()
	out := make([]content.FanartItem, len(cs.cache.Fanart))
	copy(out, cs.cache.Fanart)
	return out
}

// FanartItem looks up a single fanart entry by id.
func (cs *ContentStore) FanartItem(id string) (content.FanartItem, bool) {
	cs.cache.Mu.RLock()
	defer cs.cache.Mu.RUnlock()
	for i := range cs.cache.Fanart {
		if cs.cache.Fanart[i].ID == id {
			return cs.cache.Fanart[i], true
		}
	}
	return content.FanartItem{}, false
}

// SetFanart replaces the collection wholesale (bulk load path).
func (cs *ContentStore) SetFanart(items []content.FanartItem) {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()
	cs.cache.Fanart = append([]content.FanartItem(nil), items...)
	cs.touch()
}

// InsertFanartItem appends the entry unless its id is already cached.
func (cs *ContentStore) InsertFanartItem(item content.FanartItem) bool {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()
	for i := range cs.cache.Fanart {
		if cs.cache.Fanart[i].ID == item.ID {
			return false
		}
	}
	cs.cache.Fanart = append(cs.cache.Fanart, item)
	cs.touch()
	return true
}

// UpdateFanartItem replaces the entry matching the item's id; a miss is a
// no-op.
func (cs *ContentStore) UpdateFanartItem(item content.FanartItem) bool {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()
	for i := range cs.cache.Fanart {
		if cs.cache.Fanart[i].ID == item.ID {
			cs.cache.Fanart[i] = item
			cs.touch()
			return true
		}
	}
	return false
}

// RemoveFanartItem deletes by id; a miss is a no-op.
func (cs *ContentStore) RemoveFanartItem(id string) bool {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()
	for i := range cs.cache.Fanart {
		if cs.cache.Fanart[i].ID == id {
			cs.cache.Fanart = append(cs.cache.Fanart[:i], cs.cache.Fanart[i+1:]...)
			cs.touch()
			return true
		}
	}
	return false
}
