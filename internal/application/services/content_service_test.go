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

func newContentFixture() (*ContentService, *fakeStore, *stores.ContentStore) {
	store := newFakeStore()
	cache := stores.NewContentStore()
	notifier, _ := newTestNotifier()
	return NewContentService(store, cache, notifier, newTestLogger()), store, cache
}

func TestAddDiscographyItemWritesStoreThenCache(t *testing.T) {
	svc, store, cache := newContentFixture()

	err := svc.AddDiscographyItem(context.Background(), content.DiscographyItem{
		Title:       "Neon Dawn",
		ReleaseDate: "2025-03-01",
	})
	require.NoError(t, err)

	require.Len(t, store.inserts, 1)
	assert.Equal(t, remotestore.TableDiscography, store.inserts[0].table)

	items := cache.Discography()
	require.Len(t, items, 1)
	assert.NotEmpty(t, items[0].ID)
	assert.Equal(t, "Neon Dawn", items[0].Title)
}

func TestAddDiscographyItemStoreFailureLeavesCacheUntouched(t *testing.T) {
	svc, store, cache := newContentFixture()
	store.writeErr[remotestore.TableDiscography] = &remotestore.StoreError{Status: 500, Body: "oops"}

	err := svc.AddDiscographyItem(context.Background(), content.DiscographyItem{Title: "Neon Dawn"})
	require.Error(t, err)
	assert.Empty(t, cache.Discography())
}

func TestAddDiscographyItemUnconfiguredStore(t *testing.T) {
	svc, store, cache := newContentFixture()
	store.configured = false

	err := svc.AddDiscographyItem(context.Background(), content.DiscographyItem{Title: "Neon Dawn"})
	assert.ErrorIs(t, err, remotestore.ErrStoreUnavailable)
	assert.Empty(t, cache.Discography())
}

func TestUpdateDiscographyItemWhitelistsPatchKeys(t *testing.T) {
	svc, store, _ := newContentFixture()

	err := svc.UpdateDiscographyItem(context.Background(), "a1", map[string]any{
		"title":      "Neon Dawn (Deluxe)",
		"id":         "evil",
		"created_at": "2001-01-01",
	})
	require.NoError(t, err)

	require.Len(t, store.updates, 1)
	var sent map[string]any
	require.NoError(t, json.Unmarshal(store.updates[0].payload, &sent))
	assert.Equal(t, map[string]any{"title": "Neon Dawn (Deluxe)"}, sent)
	assert.Equal(t, remotestore.Filter{Column: "id", Value: "a1"}, store.updates[0].filter)
}

func TestRemoveVideoDeletesFromStoreAndCache(t *testing.T) {
	svc, store, cache := newContentFixture()
	cache.SetVideos([]content.VideoItem{{ID: "v1", Title: "MV"}})

	require.NoError(t, svc.RemoveVideo(context.Background(), "v1"))

	require.Len(t, store.deletes, 1)
	assert.Equal(t, remotestore.Filter{Column: "id", Value: "v1"}, store.deletes[0])
	assert.Empty(t, cache.Videos())
}

func TestDiscographySortedByReleaseDateDesc(t *testing.T) {
	svc, _, cache := newContentFixture()
	cache.SetDiscography([]content.DiscographyItem{
		{ID: "a1", Title: "Old", ReleaseDate: "2023-01-01"},
		{ID: "a2", Title: "New", ReleaseDate: "2025-06-15"},
		{ID: "a3", Title: "Mid", ReleaseDate: "2024-04-10"},
	})

	items := svc.Discography()
	require.Len(t, items, 3)
	assert.Equal(t, []string{"New", "Mid", "Old"}, []string{items[0].Title, items[1].Title, items[2].Title})
}

func TestVideosSortedByCreatedAtDesc(t *testing.T) {
	svc, _, cache := newContentFixture()
	cache.SetVideos([]content.VideoItem{
		{ID: "v1", Title: "First", CreatedAt: "2025-01-01T00:00:00Z"},
		{ID: "v2", Title: "Latest", CreatedAt: "2025-08-01T00:00:00Z"},
	})

	items := svc.Videos()
	require.Len(t, items, 2)
	assert.Equal(t, "Latest", items[0].Title)
}
