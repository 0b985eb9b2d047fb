package services

import (
	"context"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sauntrix/sauntrix-go/internal/domain/entities/content"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/caching/stores"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/remotestore"
)

func newSiteFixture() (*SiteService, *fakeStore, *stores.ContentStore) {
	store := newFakeStore()
	cache := stores.NewContentStore()
	notifier, _ := newTestNotifier()
	return NewSiteService(store, cache, notifier, newTestLogger()), store, cache
}

func TestUpdateAssetTwiceKeepsOneRowWithLatestURL(t *testing.T) {
	svc, store, cache := newSiteFixture()

	require.NoError(t, svc.UpdateAsset(context.Background(), "hero_banner", "image",
		"https://img.example/v1.png", "Hero", nil))
	require.NoError(t, svc.UpdateAsset(context.Background(), "hero_banner", "image",
		"https://img.example/v2.png", "Hero", nil))

	require.Len(t, store.upserts, 2)
	assert.Equal(t, "asset_key", store.upserts[0].conflictKey)

	assets := cache.SiteAssets()
	require.Len(t, assets, 1)
	assert.Equal(t, "https://img.example/v2.png", assets[0].URL)

	asset, ok := cache.Asset("hero_banner")
	require.True(t, ok)
	assert.Equal(t, "https://img.example/v2.png", asset.URL)
}

func TestRemoveAssetByKey(t *testing.T) {
	svc, store, cache := newSiteFixture()
	cache.SetSiteAssets([]content.SiteAsset{{ID: "s1", AssetKey: "hero_banner", URL: "https://img.example/h.png"}})

	require.NoError(t, svc.RemoveAsset(context.Background(), "hero_banner"))

	require.Len(t, store.deletes, 1)
	assert.Equal(t, remotestore.Filter{Column: "asset_key", Value: "hero_banner"}, store.deletes[0])
	_, ok := cache.Asset("hero_banner")
	assert.False(t, ok)
}

func TestUpdatePageContentUpsertsOnPageAndSection(t *testing.T) {
	svc, store, cache := newSiteFixture()

	require.NoError(t, svc.UpdatePageContent(context.Background(), "home", "hero",
		map[string]any{"heading": "Welcome"}))

	require.Len(t, store.upserts, 1)
	assert.Equal(t, "page_name,section_key", store.upserts[0].conflictKey)

	section, ok := cache.PageSection("home", "hero")
	require.True(t, ok)
	assert.Equal(t, "Welcome", section["heading"])
}

func TestUpdateFooterContentMergesPartialPatch(t *testing.T) {
	svc, store, cache := newSiteFixture()
	original := cache.Footer()

	require.NoError(t, svc.UpdateFooterContent(context.Background(), map[string]any{
		"tagline": "A new era begins",
	}))

	footer := cache.Footer()
	assert.Equal(t, "A new era begins", footer.Tagline)
	assert.Equal(t, original.CopyrightText, footer.CopyrightText)
	assert.Equal(t, original.SocialLinks, footer.SocialLinks)

	require.Len(t, store.upserts, 1)
	assert.Equal(t, "key", store.upserts[0].conflictKey)
	var sent content.SettingsRow
	require.NoError(t, json.Unmarshal(store.upserts[0].payload, &sent))
	assert.Equal(t, content.SettingsKeyFooter, sent.Key)
	assert.Equal(t, "A new era begins", sent.Value["tagline"])
}

func TestUpdateSiteSettingsMergesPartialPatch(t *testing.T) {
	svc, _, cache := newSiteFixture()
	original := cache.Settings()

	require.NoError(t, svc.UpdateSiteSettings(context.Background(), map[string]any{
		"contactEmail": "hello@sauntrix.com",
	}))

	settings := cache.Settings()
	assert.Equal(t, "hello@sauntrix.com", settings.ContactEmail)
	assert.Equal(t, original.SiteTitle, settings.SiteTitle)
}

func TestUpdateSiteSettingsStoreFailureLeavesCache(t *testing.T) {
	svc, store, cache := newSiteFixture()
	store.writeErr[remotestore.TableSiteSettings] = &remotestore.StoreError{Status: 500, Body: "oops"}
	original := cache.Settings()

	err := svc.UpdateSiteSettings(context.Background(), map[string]any{"siteTitle": "X"})
	require.Error(t, err)
	assert.Equal(t, original, cache.Settings())
}
