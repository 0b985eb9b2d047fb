package stores

import (
	"github.com/sauntrix/sauntrix-go/internal/domain/entities/content"
)

// CommunityPosts returns a copy of all cached posts, every status included.
// Public-feed filtering happens at the read surface.
func (cs *ContentStore) CommunityPosts() []content.CommunityPost {
	cs.cache.Mu.RLock()
	defer cs.cache.Mu.RUnlock()
	out := make([]content.CommunityPost, len(cs.cache.CommunityPosts))
	copy(out, cs.cache.CommunityPosts)
	return out
}

// CommunityPost looks up a single post by id.
func (cs *ContentStore) CommunityPost(id string) (content.CommunityPost, bool) {
	cs.cache.Mu.RLock()
	defer cs.cache.Mu.RUnlock()
	for i := range cs.cache.CommunityPosts {
		if cs.cache.CommunityPosts[i].ID == id {
			return cs.cache.CommunityPosts[i], true
		}
	}
	return content.CommunityPost{}, false
}

// SetCommunityPosts replaces the collection wholesale (bulk load path).
func (cs *ContentStore) SetCommunityPosts(items []content.CommunityPost) {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()
	cs.cache.CommunityPosts = append([]content.CommunityPost(nil), items...)
	cs.touch()
}

// InsertCommunityPost appends the post unless its id is already cached.
func (cs *ContentStore) InsertCommunityPost(item content.CommunityPost) bool {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()
	for i := range cs.cache.CommunityPosts {
		if cs.cache.CommunityPosts[i].ID == item.ID {
			return false
		}
	}
	cs.cache.CommunityPosts = append(cs.cache.CommunityPosts, item)
	cs.touch()
	return true
}

// UpdateCommunityPost replaces the entry matching the post's id; a miss is a
// no-op.
func (cs *ContentStore) UpdateCommunityPost(item content.CommunityPost) bool {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()
	for i := range cs.cache.CommunityPosts {
		if cs.cache.CommunityPosts[i].ID == item.ID {
			cs.cache.CommunityPosts[i] = item
			cs.touch()
			return true
		}
	}
	return false
}

// RemoveCommunityPost deletes by id; a miss is a no-op.
func (cs *ContentStore) RemoveCommunityPost(id string) bool {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()
	for i := range cs.cache.CommunityPosts {
		if cs.cache.CommunityPosts[i].ID == id {
			cs.cache.CommunityPosts = append(cs.cache.CommunityPosts[:i], cs.cache.CommunityPosts[i+1:]...)
			cs.touch()
			return true
		}
	}
	return false
}
