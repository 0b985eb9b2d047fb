package services

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sauntrix/sauntrix-go/internal/domain/entities/content"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/caching/stores"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/messaging"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/remotestore"
)

func newSyncFixture() (*SyncService, *stores.ContentStore) {
	cache := stores.NewContentStore()
	broadcaster := messaging.NewSSEBroadcaster(newTestLogger())
	return NewSyncService(newFakeStore(), cache, broadcaster, newTestLogger()), cache
}

func event(table string, kind remotestore.ChangeKind, newRow, oldRow string) remotestore.ChangeEvent {
	e := remotestore.ChangeEvent{Table: table, Kind: kind}
	if newRow != "" {
		e.New = json.RawMessage(newRow)
	}
	if oldRow != "" {
		e.Old = json.RawMessage(oldRow)
	}
	return e
}

func TestApplyInsertThenDuplicateIsIdempotent(t *testing.T) {
	sync, cache := newSyncFixture()

	row := `{"id":"v1","title":"Neon Dawn MV"}`
	sync.Apply(event(remotestore.TableVideos, remotestore.ChangeInsert, row, ""))
	sync.Apply(event(remotestore.TableVideos, remotestore.ChangeInsert, row, ""))

	assert.Len(t, cache.Videos(), 1)
}

func TestApplyUpdateReplacesPresentRow(t *testing.T) {
	sync, cache := newSyncFixture()

	sync.Apply(event(remotestore.TableDiscography, remotestore.ChangeInsert, `{"id":"a1","title":"Neon Dawn"}`, ""))
	sync.Apply(event(remotestore.TableDiscography, remotestore.ChangeUpdate, `{"id":"a1","title":"Neon Dawn (Deluxe)"}`, `{"id":"a1"}`))

	items := cache.Discography()
	require.Len(t, items, 1)
	assert.Equal(t, "Neon Dawn (Deluxe)", items[0].Title)
}

func TestApplyUpdateNeverResurrectsDeletedRow(t *testing.T) {
	sync, cache := newSyncFixture()

	sync.Apply(event(remotestore.TableDiscography, remotestore.ChangeInsert, `{"id":"a1","title":"Neon Dawn"}`, ""))
	sync.Apply(event(remotestore.TableDiscography, remotestore.ChangeDelete, "", `{"id":"a1"}`))
	sync.Apply(event(remotestore.TableDiscography, remotestore.ChangeUpdate, `{"id":"a1","title":"Back from the dead"}`, `{"id":"a1"}`))

	assert.Empty(t, cache.Discography())
}

func TestApplyDeleteMissIsNoOp(t *testing.T) {
	sync, cache := newSyncFixture()

	sync.Apply(event(remotestore.TableFanart, remotestore.ChangeDelete, "", `{"id":"nope"}`))

	assert.Empty(t, cache.Fanart())
}

func TestApplySettingsDispatchesOnKey(t *testing.T) {
	sync, cache := newSyncFixture()

	sync.Apply(event(remotestore.TableSiteSettings, remotestore.ChangeUpdate,
		`{"id":"c1","key":"footer_content","value":{"tagline":"New tagline"}}`, ""))
	sync.Apply(event(remotestore.TableSiteSettings, remotestore.ChangeUpdate,
		`{"id":"c2","key":"site_settings","value":{"siteTitle":"New title"}}`, ""))

	assert.Equal(t, "New tagline", cache.Footer().Tagline)
	assert.Equal(t, "New title", cache.Settings().SiteTitle)
}

func TestApplySettingsIgnoresUnknownKeyAndDelete(t *testing.T) {
	sync, cache := newSyncFixture()
	before := cache.Footer()

	sync.Apply(event(remotestore.TableSiteSettings, remotestore.ChangeUpdate,
		`{"id":"c9","key":"mystery","value":{"x":1}}`, ""))
	sync.Apply(event(remotestore.TableSiteSettings, remotestore.ChangeDelete, "",
		`{"id":"c1","key":"footer_content"}`))

	assert.Equal(t, before, cache.Footer())
}

func TestApplyPageContentUpsertAndDelete(t *testing.T) {
	sync, cache := newSyncFixture()

	sync.Apply(event(remotestore.TablePageContent, remotestore.ChangeInsert,
		`{"id":"pc1","page_name":"home","section_key":"hero","content":{"heading":"Hi"}}`, ""))

	section, ok := cache.PageSection("home", "hero")
	require.True(t, ok)
	assert.Equal(t, "Hi", section["heading"])

	sync.Apply(event(remotestore.TablePageContent, remotestore.ChangeUpdate,
		`{"id":"pc1","page_name":"home","section_key":"hero","content":{"heading":"Hello"}}`, ""))

	section, _ = cache.PageSection("home", "hero")
	assert.Equal(t, "Hello", section["heading"])

	sync.Apply(event(remotestore.TablePageContent, remotestore.ChangeDelete, "",
		`{"id":"pc1","page_name":"home","section_key":"hero"}`))

	_, ok = cache.PageSection("home", "hero")
	assert.False(t, ok)
}

func TestApplyBroadcastsOnlyWhenCacheChanged(t *testing.T) {
	cache := stores.NewContentStore()
	broadcaster := messaging.NewSSEBroadcaster(newTestLogger())
	sync := NewSyncService(newFakeStore(), cache, broadcaster, newTestLogger())

	client := broadcaster.AddClient()
	defer broadcaster.RemoveClient(client)

	sync.Apply(event(remotestore.TableVideos, remotestore.ChangeInsert, `{"id":"v1","title":"MV"}`, ""))

	var frame struct {
		Type  string `json:"type"`
		Table string `json:"table"`
		Kind  string `json:"kind"`
	}
	require.NoError(t, json.Unmarshal([]byte(<-client), &frame))
	assert.Equal(t, "change", frame.Type)
	assert.Equal(t, remotestore.TableVideos, frame.Table)
	assert.Equal(t, "INSERT", frame.Kind)

	// A duplicate insert changes nothing and must not emit a frame.
	sync.Apply(event(remotestore.TableVideos, remotestore.ChangeInsert, `{"id":"v1","title":"MV"}`, ""))
	select {
	case msg := <-client:
		t.Fatalf("unexpected SSE frame: %s", msg)
	default:
	}
}

func TestStartAndStopDrainSubscriptions(t *testing.T) {
	store := newFakeStore()
	cache := stores.NewContentStore()
	broadcaster := messaging.NewSSEBroadcaster(newTestLogger())
	sync := NewSyncService(store, cache, broadcaster, newTestLogger())

	require.NoError(t, sync.Start())
	require.Len(t, store.subs, 7)

	store.subs[remotestore.TableVideos].events <- event(
		remotestore.TableVideos, remotestore.ChangeInsert, `{"id":"v1","title":"MV"}`, "")

	sync.Stop()

	assert.Len(t, cache.Videos(), 1)
	for _, sub := range store.subs {
		assert.True(t, sub.closed)
	}
}

func TestModerationStatusFlowsThroughSync(t *testing.T) {
	sync, cache := newSyncFixture()

	sync.Apply(event(remotestore.TableCommunityPosts, remotestore.ChangeInsert,
		`{"id":"p1","user_name":"mika","message":"hi","rank":"gold","status":"pending"}`, ""))
	sync.Apply(event(remotestore.TableCommunityPosts, remotestore.ChangeUpdate,
		`{"id":"p1","user_name":"mika","message":"hi","rank":"gold","status":"approved"}`, ""))

	posts := cache.CommunityPosts()
	require.Len(t, posts, 1)
	assert.Equal(t, content.StatusApproved, posts[0].Status)
}
