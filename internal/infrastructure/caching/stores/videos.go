package stores

import (
	"github.com/sauntrix/sauntrix-go/internal/domain/entities/content"
)

// Videos returns a copy of the cached videos in fetch order.
func (cs *ContentStore) Videos() []content.VideoItem {
	cs.cache.Mu.RLock()
	defer cs.cache.Mu.RUnlock()
	out := make([]content.VideoItem, len(cs.cache.Videos))
	copy(out, cs.cache.Videos)
	return out
}

// SetVideos replaces the collection wholesale (bulk load path).
func (cs *ContentStore) SetVideos(items []content.VideoItem) {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()
	cs.cache.Videos = append([]content.VideoItem(nil), items...)
	cs.touch()
}

// InsertVideo appends the video unless its id is already cached.
func (cs *ContentStore) InsertVideo(item content.VideoItem) bool {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()
	for i := range cs.cache.Videos {
		if cs.cache.Videos[i].ID == item.ID {
			return false
		}
	}
	cs.cache.Videos = append(cs.cache.Videos, item)
	cs.touch()
	return true
}

// UpdateVideo replaces the entry matching the video's id; a miss is a no-op.
func (cs *ContentStore) UpdateVideo(item content.VideoItem) bool {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()
	for i := range cs.cache.Videos {
		if cs.cache.Videos[i].ID == item.ID {
			cs.cache.Videos[i] = item
			cs.touch()
			return true
		}
	}
	return false
}

// RemoveVideo deletes by id; a miss is a no-op.
func (cs *ContentStore) RemoveVideo(id string) bool {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()
	for i := range cs.cache.Videos {
		if cs.cache.Videos[i].ID == id {
			cs.cache.Videos = append(cs.cache.Videos[:i], cs.cache.Videos[i+1:]...)
			cs.touch()
			return true
		}
	}
	return false
}
