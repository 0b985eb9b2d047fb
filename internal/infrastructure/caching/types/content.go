// Package types defines the shared cache structures.
package types

import (
	"sync"
	"time"

	"github.com/sauntrix/sauntrix-go/internal/domain/entities/content"
)

// ContentCache is the process-wide in-memory mirror of every remote-store
// collection. It is mutated only by the bulk loader (full replace per
// collection), the realtime merge engine (per-id merges), and the mutation
// services (optimistic patches after confirmed writes). List collections keep
// fetch/insertion order; display ordering is imposed at read time.
type ContentCache struct {
	Mu sync.RWMutex

	Discography    []content.DiscographyItem
	Videos         []content.VideoItem
	CommunityPosts []content.CommunityPost
	Fanart         []content.FanartItem
	SiteAssets     []content.SiteAsset

	// PageContent maps page name -> section key -> free-form content.
	PageContent map[string]map[string]map[string]any

	Footer   content.FooterContent
	Settings content.SiteSettings

	// Loading is true while the bulk loader is running; reads during that
	// window may observe defaults.
	Loading     bool
	LastUpdated time.Time
}

// NewContentCache returns a cache seeded with built-in defaults: empty list
// collections and the hardcoded footer/settings singletons.
func NewContentCache() *ContentCache {
	return &ContentCache{
		Discography:    make([]content.DiscographyItem, 0),
		Videos:         make([]content.VideoItem, 0),
		CommunityPosts: make([]content.CommunityPost, 0),
		Fanart:         make([]content.FanartItem, 0),
		SiteAssets:     make([]content.SiteAsset, 0),
		PageContent:    make(map[string]map[string]map[string]any),
		Footer:         content.DefaultFooterContent(),
		Settings:       content.DefaultSiteSettings(),
		LastUpdated:    time.Now().UTC(),
	}
}
