package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/sauntrix/sauntrix-go/internal/domain/entities/content"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/caching/stores"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/messaging"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/observability/logging"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/remotestore"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/security"
)

// ContentService is the mutation façade for the admin-managed catalog
// collections (discography, videos). Every mutation writes to the remote
// store first; on success the cache is patched optimistically with the row
// the store returned, and the realtime echo is idempotent against that
// patch. On failure the cache is untouched and an error notice is raised.
type ContentService struct {
	store    remotestore.Client
	cache    *stores.ContentStore
	notifier *messaging.Notifier
	logger   *logging.ChanneledLogger
}

// NewContentService creates the catalog mutation façade.
func NewContentService(store remotestore.Client, cache *stores.ContentStore, notifier *messaging.Notifier, logger *logging.ChanneledLogger) *ContentService {
	return &ContentService{store: store, cache: cache, notifier: notifier, logger: logger}
}

// Discography returns the cached discography sorted by release_date
// descending. Ordering is imposed here, at read time, not in the cache.
func (s *ContentService) Discography() []content.DiscographyItem {
	items := s.cache.Discography()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ReleaseDate > items[j].ReleaseDate
	})
	return items
}

// Videos returns the cached videos sorted by created_at descending.
func (s *ContentService) Videos() []content.VideoItem {
	items := s.cache.Videos()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt > items[j].CreatedAt
	})
	return items
}

// requireStore rejects mutations while the remote store is unconfigured.
// There is no local-only persistence fallback by design.
func (s *ContentService) requireStore() error {
	if !s.store.Configured() {
		s.notifier.Error("Database not available")
		return remotestore.ErrStoreUnavailable
	}
	return nil
}

// AddDiscographyItem creates an album entry.
func (s *ContentService) AddDiscographyItem(ctx context.Context, item content.DiscographyItem) error {
	if err := s.requireStore(); err != nil {
		return err
	}

	item.ID = security.GenerateULID()
	item.CreatedAt = ""
	item.UpdatedAt = ""

	var created content.DiscographyItem
	if err := s.store.Insert(ctx, remotestore.TableDiscography, item, &created); err != nil {
		s.logger.Content().Error("Discography insert failed", "title", item.Title, "error", err.Error())
		s.notifier.Error("Failed to add album")
		return fmt.Errorf("add discography item: %w", err)
	}

	s.cache.InsertDiscographyItem(created)
	s.notifier.Success("Album added successfully!")
	return nil
}

// UpdateDiscographyItem applies a partial update to an album entry. Only
// content fields may be patched; identity and timestamps are stripped.
func (s *ContentService) UpdateDiscographyItem(ctx context.Context, id string, patch map[string]any) error {
	if err := s.requireStore(); err != nil {
		return err
	}
	patch = allowKeys(patch, "title", "description", "cover", "release_date", "streaming_links")

	var updated content.DiscographyItem
	filter := remotestore.Filter{Column: "id", Value: id}
	if err := s.store.Update(ctx, remotestore.TableDiscography, filter, patch, &updated); err != nil {
		s.logger.Content().Error("Discography update failed", "id", id, "error", err.Error())
		s.notifier.Error("Failed to update album")
		return fmt.Errorf("update discography item: %w", err)
	}

	if updated.ID != "" {
		s.cache.UpdateDiscographyItem(updated)
	}
	s.notifier.Success("Album updated successfully!")
	return nil
}

// RemoveDiscographyItem hard-deletes an album entry.
func (s *ContentService) RemoveDiscographyItem(ctx context.Context, id string) error {
	if err := s.requireStore(); err != nil {
		return err
	}

	filter := remotestore.Filter{Column: "id", Value: id}
	if err := s.store.Delete(ctx, remotestore.TableDiscography, filter); err != nil {
		s.logger.Content().Error("Discography delete failed", "id", id, "error", err.Error())
		s.notifier.Error("Failed to delete album")
		return fmt.Errorf("remove discography item: %w", err)
	}

	s.cache.RemoveDiscographyItem(id)
	s.notifier.Success("Album deleted successfully!")
	return nil
}

// AddVideo creates a video entry.
func (s *ContentService) AddVideo(ctx context.Context, item content.VideoItem) error {
	if err := s.requireStore(); err != nil {
		return err
	}

	item.ID = security.GenerateULID()
	item.CreatedAt = ""
	item.UpdatedAt = ""

	var created content.VideoItem
	if err := s.store.Insert(ctx, remotestore.TableVideos, item, &created); err != nil {
		s.logger.Content().Error("Video insert failed", "title", item.Title, "error", err.Error())
		s.notifier.Error("Failed to add video")
		return fmt.Errorf("add video: %w", err)
	}

	s.cache.InsertVideo(created)
	s.notifier.Success("Video added successfully!")
	return nil
}

// UpdateVideo applies a partial update to a video entry.
func (s *ContentService) UpdateVideo(ctx context.Context, id string, patch map[string]any) error {
	if err := s.requireStore(); err != nil {
		return err
	}
	patch = allowKeys(patch, "title", "description", "url", "thumbnail")

	var updated content.VideoItem
	filter := remotestore.Filter{Column: "id", Value: id}
	if err := s.store.Update(ctx, remotestore.TableVideos, filter, patch, &updated); err != nil {
		s.logger.Content().Error("Video update failed", "id", id, "error", err.Error())
		s.notifier.Error("Failed to update video")
		return fmt.Errorf("update video: %w", err)
	}

	if updated.ID != "" {
		s.cache.UpdateVideo(updated)
	}
	s.notifier.Success("Video updated successfully!")
	return nil
}

// RemoveVideo hard-deletes a video entry.
func (s *ContentService) RemoveVideo(ctx context.Context, id string) error {
	if err := s.requireStore(); err != nil {
		return err
	}

	filter := remotestore.Filter{Column: "id", Value: id}
	if err := s.store.Delete(ctx, remotestore.TableVideos, filter); err != nil {
		s.logger.Content().Error("Video delete failed", "id", id, "error", err.Error())
		s.notifier.Error("Failed to delete video")
		return fmt.Errorf("remove video: %w", err)
	}

	s.cache.RemoveVideo(id)
	s.notifier.Success("Video deleted successfully!")
	return nil
}

// allowKeys filters a patch down to the whitelisted columns.
func allowKeys(patch map[string]any, keys ...string) map[string]any {
	out := make(map[string]any, len(keys))
	for _, key := range keys {
		if v, ok := patch[key]; ok {
			out[key] = v
		}
	}
	return out
}
