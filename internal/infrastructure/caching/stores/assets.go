package stores

import (
	"github.com/sauntrix/sauntrix-go/internal/domain/entities/content"
)

// SiteAssets returns a copy of all cached assets in fetch order.
func (cs *ContentStore) SiteAssets() []content.SiteAsset {
	cs.cache.Mu.RLock()
	defer cs.cache.Mu.RUnlock()
	out := make([]content.SiteAsset, len(cs.cache.SiteAssets))
	copy(out, cs.cache.SiteAssets)
	return out
}

// Asset looks up an asset by its asset_key, the external identity assets are
// addressed by everywhere.
func (cs *ContentStore) Asset(assetKey string) (content.SiteAsset, bool) {
	cs.cache.Mu.RLock()
	defer cs.cache.Mu.RUnlock()
	for i := range cs.cache.SiteAssets {
		if cs.cache.SiteAssets[i].AssetKey == assetKey {
			return cs.cache.SiteAssets[i], true
		}
	}
	return content.SiteAsset{}, false
}

// SetSiteAssets replaces the collection wholesale (bulk load path).
func (cs *ContentStore) SetSiteAssets(items []content.SiteAsset) {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()
	cs.cache.SiteAssets = append([]content.SiteAsset(nil), items...)
	cs.touch()
}

// InsertSiteAsset appends the asset unless its id is already cached.
func (cs *ContentStore) InsertSiteAsset(item content.SiteAsset) bool {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()
	for i := range cs.cache.SiteAssets {
		if cs.cache.SiteAssets[i].ID == item.ID {
			return false
		}
	}
	cs.cache.SiteAssets = append(cs.cache.SiteAssets, item)
	cs.touch()
	return true
}

// UpdateSiteAsset replaces the entry matching the asset's id; a miss is a
// no-op. Realtime merge path, where rows arrive with storage identity.
func (cs *ContentStore) UpdateSiteAsset(item content.SiteAsset) bool {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()
	for i := range cs.cache.SiteAssets {
		if cs.cache.SiteAssets[i].ID == item.ID {
			cs.cache.SiteAssets[i] = item
			cs.touch()
			return true
		}
	}
	return false
}

// UpsertAssetByKey replaces the entry matching the asset's asset_key, or
// appends when the key is new. Last write wins; the key stays unique.
func (cs *ContentStore) UpsertAssetByKey(item content.SiteAsset) {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()
	for i := range cs.cache.SiteAssets {
		if cs.cache.SiteAssets[i].AssetKey == item.AssetKey {
			cs.cache.SiteAssets[i] = item
			cs.touch()
			return
		}
	}
	cs.cache.SiteAssets = append(cs.cache.SiteAssets, item)
	cs.touch()
}

// RemoveSiteAsset deletes by id; a miss is a no-op.
func (cs *ContentStore) RemoveSiteAsset(id string) bool {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()
	for i := range cs.cache.SiteAssets {
		if cs.cache.SiteAssets[i].ID == id {
			cs.cache.SiteAssets = append(cs.cache.SiteAssets[:i], cs.cache.SiteAssets[i+1:]...)
			cs.touch()
			return true
		}
	}
	return false
}

// RemoveAssetByKey deletes by asset_key; a miss is a no-op.
func (cs *ContentStore) RemoveAssetByKey(assetKey string) bool {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()
	for i := range cs.cache.SiteAssets {
		if cs.cache.SiteAssets[i].AssetKey == assetKey {
			cs.cache.SiteAssets = append(cs.cache.SiteAssets[:i], cs.cache.SiteAssets[i+1:]...)
			cs.touch()
			return true
		}
	}
	return false
}
