package services

import (
	"context"
	"sync"

	"github.com/sauntrix/sauntrix-go/internal/domain/entities/content"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/caching/stores"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/observability/logging"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/remotestore"
)

// LoaderService performs the startup bulk load: one read per collection,
// issued concurrently, each independently fallible. A failed read leaves that
// collection at its prior/default state; the others still populate. LoadAll
// never returns an error — a degraded cache is a valid terminal outcome.
type LoaderService struct {
	store  remotestore.Client
	cache  *stores.ContentStore
	logger *logging.ChanneledLogger
}

// NewLoaderService creates a bulk loader.
func NewLoaderService(store remotestore.Client, cache *stores.ContentStore, logger *logging.ChanneledLogger) *LoaderService {
	return &LoaderService{store: store, cache: cache, logger: logger}
}

// LoadAll populates the content cache from the remote store. When the store
// is unconfigured or the connectivity probe fails, the cache is left at its
// built-in defaults and the page renders from those.
func (s *LoaderService) LoadAll(ctx context.Context) {
	if !s.store.Configured() {
		s.logger.Cache().Warn("Remote store not configured, serving fallback content")
		return
	}

	s.cache.SetLoading(true)
	defer s.cache.SetLoading(false)

	if err := s.store.Probe(ctx); err != nil {
		s.logger.Cache().Warn("Remote store unreachable, serving fallback content", "error", err.Error())
		return
	}

	var wg sync.WaitGroup
	wg.Add(7)

	go func() {
		defer wg.Done()
		var items []content.DiscographyItem
		opts := remotestore.SelectOptions{OrderBy: "release_date", Descending: true}
		if err := s.store.Select(ctx, remotestore.TableDiscography, opts, &items); err != nil {
			s.logger.Cache().Warn("Discography load failed", "error", err.Error())
			return
		}
		s.cache.SetDiscography(items)
		s.logger.Cache().Info("Loaded discography", "count", len(items))
	}()

	go func() {
		defer wg.Done()
		var items []content.VideoItem
		opts := remotestore.SelectOptions{OrderBy: "created_at", Descending: true}
		if err := s.store.Select(ctx, remotestore.TableVideos, opts, &items); err != nil {
			s.logger.Cache().Warn("Videos load failed", "error", err.Error())
			return
		}
		s.cache.SetVideos(items)
		s.logger.Cache().Info("Loaded videos", "count", len(items))
	}()

	go func() {
		defer wg.Done()
		var items []content.CommunityPost
		opts := remotestore.SelectOptions{OrderBy: "created_at", Descending: true}
		if err := s.store.Select(ctx, remotestore.TableCommunityPosts, opts, &items); err != nil {
			s.logger.Cache().Warn("Community posts load failed", "error", err.Error())
			return
		}
		s.cache.SetCommunityPosts(items)
		s.logger.Cache().Info("Loaded community posts", "count", len(items))
	}()

	go func() {
		defer wg.Done()
		var items []content.FanartItem
		opts := remotestore.SelectOptions{OrderBy: "created_at", Descending: true}
		if err := s.store.Select(ctx, remotestore.TableFanart, opts, &items); err != nil {
			s.logger.Cache().Warn("Fanart load failed", "error", err.Error())
			return
		}
		s.cache.SetFanart(items)
		s.logger.Cache().Info("Loaded fanart", "count", len(items))
	}()

	go func() {
		defer wg.Done()
		var items []content.SiteAsset
		opts := remotestore.SelectOptions{OrderBy: "asset_key"}
		if err := s.store.Select(ctx, remotestore.TableSiteAssets, opts, &items); err != nil {
			s.logger.Cache().Warn("Site assets load failed", "error", err.Error())
			return
		}
		s.cache.SetSiteAssets(items)
		s.logger.Cache().Info("Loaded site assets", "count", len(items))
	}()

	go func() {
		defer wg.Done()
		var rows []content.SettingsRow
		if err := s.store.Select(ctx, remotestore.TableSiteSettings, remotestore.SelectOptions{}, &rows); err != nil {
			s.logger.Cache().Warn("Site settings load failed", "error", err.Error())
			return
		}
		s.applySettingsRows(rows)
	}()

	go func() {
		defer wg.Done()
		var rows []content.PageContent
		if err := s.store.Select(ctx, remotestore.TablePageContent, remotestore.SelectOptions{}, &rows); err != nil {
			s.logger.Cache().Warn("Page content load failed", "error", err.Error())
			return
		}
		s.cache.SetPageContent(rows)
		s.logger.Cache().Info("Loaded page content", "sections", len(rows))
	}()

	wg.Wait()
	s.logger.Cache().Info("Bulk load complete")
}

// applySettingsRows dispatches each settings row on its key discriminator.
// Unrecognized keys are ignored.
func (s *LoaderService) applySettingsRows(rows []content.SettingsRow) {
	for _, row := range rows {
		switch row.Key {
		case content.SettingsKeyFooter:
			var footer content.FooterContent
			if err := decodeValue(row.Value, &footer); err != nil {
				s.logger.Cache().Warn("Footer settings row undecodable", "error", err.Error())
				continue
			}
			s.cache.SetFooter(footer)
		case content.SettingsKeySite:
			var settings content.SiteSettings
			if err := decodeValue(row.Value, &settings); err != nil {
				s.logger.Cache().Warn("Site settings row undecodable", "error", err.Error())
				continue
			}
			s.cache.SetSettings(settings)
		default:
			s.logger.Cache().Debug("Ignoring unknown settings key", "key", row.Key)
		}
	}
	s.logger.Cache().Info("Loaded site settings", "rows", len(rows))
}
