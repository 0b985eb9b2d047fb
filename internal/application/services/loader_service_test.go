package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sauntrix/sauntrix-go/internal/domain/entities/content"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/caching/stores"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/remotestore"
)

func TestLoadAllUnconfiguredStoreKeepsDefaults(t *testing.T) {
	store := newFakeStore()
	store.configured = false
	cache := stores.NewContentStore()
	loader := NewLoaderService(store, cache, newTestLogger())

	loader.LoadAll(context.Background())

	assert.Empty(t, cache.Discography())
	assert.False(t, cache.Loading())
	assert.Equal(t, content.DefaultFooterContent(), cache.Footer())
	assert.Equal(t, content.DefaultSiteSettings(), cache.Settings())
}

func TestLoadAllProbeFailureKeepsDefaults(t *testing.T) {
	store := newFakeStore()
	store.probeErr = errors.New("connection refused")
	store.selectRows[remotestore.TableDiscography] = `[{"id":"a1","title":"Neon Dawn"}]`
	cache := stores.NewContentStore()
	loader := NewLoaderService(store, cache, newTestLogger())

	loader.LoadAll(context.Background())

	assert.Empty(t, cache.Discography())
	assert.False(t, cache.Loading())
}

func TestLoadAllPopulatesEveryCollection(t *testing.T) {
	store := newFakeStore()
	store.selectRows[remotestore.TableDiscography] = `[{"id":"a1","title":"Neon Dawn","release_date":"2025-03-01"}]`
	store.selectRows[remotestore.TableVideos] = `[{"id":"v1","title":"Neon Dawn MV","url":"https://youtube.com/watch?v=x"}]`
	store.selectRows[remotestore.TableCommunityPosts] = `[{"id":"p1","user_name":"mika","message":"hi","rank":"gold","status":"approved"}]`
	store.selectRows[remotestore.TableFanart] = `[{"id":"f1","title":"Trio","artist":"ren","image_url":"https://img.example/t.png","status":"pending"}]`
	store.selectRows[remotestore.TableSiteAssets] = `[{"id":"s1","asset_key":"hero_banner","asset_type":"image","url":"https://img.example/h.png"}]`
	store.selectRows[remotestore.TableSiteSettings] = `[
		{"id":"c1","key":"footer_content","value":{"tagline":"Custom tagline"}},
		{"id":"c2","key":"site_settings","value":{"siteTitle":"Custom title"}},
		{"id":"c3","key":"mystery","value":{"x":1}}
	]`
	store.selectRows[remotestore.TablePageContent] = `[{"id":"pc1","page_name":"home","section_key":"hero","content":{"heading":"Welcome"}}]`

	cache := stores.NewContentStore()
	loader := NewLoaderService(store, cache, newTestLogger())

	loader.LoadAll(context.Background())

	require.Len(t, cache.Discography(), 1)
	require.Len(t, cache.Videos(), 1)
	require.Len(t, cache.CommunityPosts(), 1)
	require.Len(t, cache.Fanart(), 1)
	require.Len(t, cache.SiteAssets(), 1)

	assert.Equal(t, "Custom tagline", cache.Footer().Tagline)
	assert.Equal(t, "Custom title", cache.Settings().SiteTitle)

	section, ok := cache.PageSection("home", "hero")
	require.True(t, ok)
	assert.Equal(t, "Welcome", section["heading"])

	assert.False(t, cache.Loading())
}

func TestLoadAllPartialFailureLeavesOtherCollectionsLoaded(t *testing.T) {
	store := newFakeStore()
	store.selectErr[remotestore.TableVideos] = errors.New("boom")
	store.selectRows[remotestore.TableDiscography] = `[{"id":"a1","title":"Neon Dawn"}]`

	cache := stores.NewContentStore()
	loader := NewLoaderService(store, cache, newTestLogger())

	loader.LoadAll(context.Background())

	assert.Len(t, cache.Discography(), 1)
	assert.Empty(t, cache.Videos())
	assert.False(t, cache.Loading())
}
