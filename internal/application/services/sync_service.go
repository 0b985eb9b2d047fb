package services

import (
	"sync"

	json "github.com/goccy/go-json"

	"github.com/sauntrix/sauntrix-go/internal/domain/entities/content"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/caching/stores"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/messaging"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/observability/logging"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/remotestore"
)

// syncTables lists every collection with a change stream.
var syncTables = []string{
	remotestore.TableDiscography,
	remotestore.TableVideos,
	remotestore.TableCommunityPosts,
	remotestore.TableFanart,
	remotestore.TableSiteAssets,
	remotestore.TableSiteSettings,
	remotestore.TablePageContent,
}

// changeBroadcast is the SSE frame emitted after a change event is applied,
// so browser clients converge without polling.
type changeBroadcast struct {
	Type  string          `json:"type"`
	Table string          `json:"table"`
	Kind  string          `json:"kind"`
	Row   json.RawMessage `json:"row,omitempty"`
}

// SyncService is the realtime merge engine. It subscribes to one change
// stream per collection and folds every event into the content cache by
// entity identity: INSERT appends (idempotent against duplicate delivery),
// UPDATE replaces a present entry (never resurrects a deleted one), DELETE
// removes. Events are applied in delivery order per stream; collections are
// mutually independent.
type SyncService struct {
	store       remotestore.Client
	cache       *stores.ContentStore
	broadcaster *messaging.SSEBroadcaster
	logger      *logging.ChanneledLogger

	mu   sync.Mutex
	subs []remotestore.Subscription
	wg   sync.WaitGroup
}

// NewSyncService creates a realtime merge engine.
func NewSyncService(store remotestore.Client, cache *stores.ContentStore, broadcaster *messaging.SSEBroadcaster, logger *logging.ChanneledLogger) *SyncService {
	return &SyncService{
		store:       store,
		cache:       cache,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// Start opens all change streams. Called once after the initial bulk load.
// An unconfigured store is not an error: the service simply stays inert.
func (s *SyncService) Start() error {
	if !s.store.Configured() {
		s.logger.Realtime().Warn("Remote store not configured, realtime sync disabled")
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, table := range syncTables {
		sub, err := s.store.Subscribe(table)
		if err != nil {
			s.logger.Realtime().Error("Subscribe failed", "table", table, "error", err.Error())
			continue
		}
		s.subs = append(s.subs, sub)

		s.wg.Add(1)
		go func(sub remotestore.Subscription) {
			defer s.wg.Done()
			for event := range sub.Events() {
				s.Apply(event)
			}
		}(sub)
	}

	s.logger.Realtime().Info("Realtime sync started", "streams", len(s.subs))
	return nil
}

// Stop unsubscribes every stream and waits for in-flight events to drain.
func (s *SyncService) Stop() {
	s.mu.Lock()
	subs := s.subs
	s.subs = nil
	s.mu.Unlock()

	for _, sub := range subs {
		sub.Unsubscribe()
	}
	s.wg.Wait()
	s.logger.Realtime().Info("Realtime sync stopped")
}

// Apply folds one change event into the cache and, when it changed anything,
// re-broadcasts it to SSE clients.
func (s *SyncService) Apply(event remotestore.ChangeEvent) {
	applied := false

	switch event.Table {
	case remotestore.TableDiscography:
		applied = s.applyDiscography(event)
	case remotestore.TableVideos:
		applied = s.applyVideo(event)
	case remotestore.TableCommunityPosts:
		applied = s.applyCommunityPost(event)
	case remotestore.TableFanart:
		applied = s.applyFanart(event)
	case remotestore.TableSiteAssets:
		applied = s.applySiteAsset(event)
	case remotestore.TableSiteSettings:
		applied = s.applySettings(event)
	case remotestore.TablePageContent:
		applied = s.applyPageContent(event)
	default:
		s.logger.Realtime().Debug("Ignoring event for unknown table", "table", event.Table)
		return
	}

	if applied {
		s.broadcaster.Broadcast(changeBroadcast{
			Type:  "change",
			Table: event.Table,
			Kind:  string(event.Kind),
			Row:   event.New,
		})
	}
}

// rowID extracts the primary key from a raw row payload. DELETE events carry
// only the old row's key columns.
func (s *SyncService) rowID(raw json.RawMessage) (string, bool) {
	var row struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &row); err != nil || row.ID == "" {
		return "", false
	}
	return row.ID, true
}

func (s *SyncService) applyDiscography(event remotestore.ChangeEvent) bool {
	switch event.Kind {
	case remotestore.ChangeInsert, remotestore.ChangeUpdate:
		var item content.DiscographyItem
		if err := json.Unmarshal(event.New, &item); err != nil {
			s.logger.Realtime().Warn("Undecodable discography row", "error", err.Error())
			return false
		}
		if event.Kind == remotestore.ChangeInsert {
			return s.cache.InsertDiscographyItem(item)
		}
		return s.cache.UpdateDiscographyItem(item)
	case remotestore.ChangeDelete:
		id, ok := s.rowID(event.Old)
		return ok && s.cache.RemoveDiscographyItem(id)
	}
	return false
}

func (s *SyncService) applyVideo(event remotestore.ChangeEvent) bool {
	switch event.Kind {
	case remotestore.ChangeInsert, remotestore.ChangeUpdate:
		var item content.VideoItem
		if err := json.Unmarshal(event.New, &item); err != nil {
			s.logger.Realtime().Warn("Undecodable video row", "error", err.Error())
			return false
		}
		if event.Kind == remotestore.ChangeInsert {
			return s.cache.InsertVideo(item)
		}
		return s.cache.UpdateVideo(item)
	case remotestore.ChangeDelete:
		id, ok := s.rowID(event.Old)
		return ok && s.cache.RemoveVideo(id)
	}
	return false
}

func (s *SyncService) applyCommunityPost(event remotestore.ChangeEvent) bool {
	switch event.Kind {
	case remotestore.ChangeInsert, remotestore.ChangeUpdate:
		var item content.CommunityPost
		if err := json.Unmarshal(event.New, &item); err != nil {
			s.logger.Realtime().Warn("Undecodable community post row", "error", err.Error())
			return false
		}
		if event.Kind == remotestore.ChangeInsert {
			return s.cache.InsertCommunityPost(item)
		}
		return s.cache.UpdateCommunityPost(item)
	case remotestore.ChangeDelete:
		id, ok := s.rowID(event.Old)
		return ok && s.cache.RemoveCommunityPost(id)
	}
	return false
}

func (s *SyncService) applyFanart(event remotestore.ChangeEvent) bool {
	switch event.Kind {
	case remotestore.ChangeInsert, remotestore.ChangeUpdate:
		var item content.FanartItem
		if err := json.Unmarshal(event.New, &item); err != nil {
			s.logger.Realtime().Warn("Undecodable fanart row", "error", err.Error())
			return false
		}
		if event.Kind == remotestore.ChangeInsert {
			return s.cache.InsertFanartItem(item)
		}
		return s.cache.UpdateFanartItem(item)
	case remotestore.ChangeDelete:
		id, ok := s.rowID(event.Old)
		return ok && s.cache.RemoveFanartItem(id)
	}
	return false
}

func (s *SyncService) applySiteAsset(event remotestore.ChangeEvent) bool {
	switch event.Kind {
	case remotestore.ChangeInsert, remotestore.ChangeUpdate:
		var item content.SiteAsset
		if err := json.Unmarshal(event.New, &item); err != nil {
			s.logger.Realtime().Warn("Undecodable site asset row", "error", err.Error())
			return false
		}
		if event.Kind == remotestore.ChangeInsert {
			return s.cache.InsertSiteAsset(item)
		}
		return s.cache.UpdateSiteAsset(item)
	case remotestore.ChangeDelete:
		id, ok := s.rowID(event.Old)
		return ok && s.cache.RemoveSiteAsset(id)
	}
	return false
}

// applySettings dispatches INSERT/UPDATE on the row's key discriminator to
// the matching named singleton. Unrecognized keys and DELETEs are ignored —
// the singletons always hold something renderable.
func (s *SyncService) applySettings(event remotestore.ChangeEvent) bool {
	if event.Kind != remotestore.ChangeInsert && event.Kind != remotestore.ChangeUpdate {
		return false
	}

	var row content.SettingsRow
	if err := json.Unmarshal(event.New, &row); err != nil {
		s.logger.Realtime().Warn("Undecodable settings row", "error", err.Error())
		return false
	}

	switch row.Key {
	case content.SettingsKeyFooter:
		var footer content.FooterContent
		if err := decodeValue(row.Value, &footer); err != nil {
			s.logger.Realtime().Warn("Undecodable footer value", "error", err.Error())
			return false
		}
		s.cache.SetFooter(footer)
		return true
	case content.SettingsKeySite:
		var settings content.SiteSettings
		if err := decodeValue(row.Value, &settings); err != nil {
			s.logger.Realtime().Warn("Undecodable site settings value", "error", err.Error())
			return false
		}
		s.cache.SetSettings(settings)
		return true
	}

	s.logger.Realtime().Debug("Ignoring unknown settings key", "key", row.Key)
	return false
}

func (s *SyncService) applyPageContent(event remotestore.ChangeEvent) bool {
	switch event.Kind {
	case remotestore.ChangeInsert, remotestore.ChangeUpdate:
		var row content.PageContent
		if err := json.Unmarshal(event.New, &row); err != nil {
			s.logger.Realtime().Warn("Undecodable page content row", "error", err.Error())
			return false
		}
		s.cache.UpsertPageSection(row.PageName, row.SectionKey, row.Content)
		return true
	case remotestore.ChangeDelete:
		var row content.PageContent
		if err := json.Unmarshal(event.Old, &row); err != nil || row.PageName == "" {
			return false
		}
		s.cache.RemovePageSection(row.PageName, row.SectionKey)
		return true
	}
	return false
}
