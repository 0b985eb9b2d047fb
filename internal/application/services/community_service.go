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

// CommunityService handles fan submissions and their moderation lifecycle.
// Submissions always enter as pending regardless of what the caller sends;
// only moderation moves them to approved or rejected, and public reads only
// ever see approved rows.
type CommunityService struct {
	store    remotestore.Client
	cache    *stores.ContentStore
	notifier *messaging.Notifier
	logger   *logging.ChanneledLogger
}

// NewCommunityService creates the submission and moderation façade.
func NewCommunityService(store remotestore.Client, cache *stores.ContentStore, notifier *messaging.Notifier, logger *logging.ChanneledLogger) *CommunityService {
	return &CommunityService{store: store, cache: cache, notifier: notifier, logger: logger}
}

func (s *CommunityService) requireStore() error {
	if !s.store.Configured() {
		s.notifier.Error("Database not available")
		return remotestore.ErrStoreUnavailable
	}
	return nil
}

// ApprovedCommunityPosts returns the publicly visible posts, newest first.
func (s *CommunityService) ApprovedCommunityPosts() []content.CommunityPost {
	all := s.cache.CommunityPosts()
	posts := make([]content.CommunityPost, 0, len(all))
	for _, post := range all {
		if post.Status == content.StatusApproved {
			posts = append(posts, post)
		}
	}
	sortByCreatedAtDesc(posts, func(p content.CommunityPost) string { return p.CreatedAt })
	return posts
}

// AllCommunityPosts returns every post for the moderation queue, newest first.
func (s *CommunityService) AllCommunityPosts() []content.CommunityPost {
	posts := s.cache.CommunityPosts()
	sortByCreatedAtDesc(posts, func(p content.CommunityPost) string { return p.CreatedAt })
	return posts
}

// ApprovedFanart returns the publicly visible fanart, newest first.
func (s *CommunityService) ApprovedFanart() []content.FanartItem {
	all := s.cache.Fanart()
	items := make([]content.FanartItem, 0, len(all))
	for _, item := range all {
		if item.Status == content.StatusApproved {
			items = append(items, item)
		}
	}
	sortByCreatedAtDesc(items, func(f content.FanartItem) string { return f.CreatedAt })
	return items
}

// AllFanart returns every fanart item for the moderation queue, newest first.
func (s *CommunityService) AllFanart() []content.FanartItem {
	items := s.cache.Fanart()
	sortByCreatedAtDesc(items, func(f content.FanartItem) string { return f.CreatedAt })
	return items
}

// SubmitCommunityPost files a fan message into the moderation queue. The
// status is forced to pending here; callers cannot self-approve.
func (s *CommunityService) SubmitCommunityPost(ctx context.Context, post content.CommunityPost) error {
	if err := s.requireStore(); err != nil {
		return err
	}

	post.ID = security.GenerateULID()
	post.Status = content.StatusPending
	post.CreatedAt = ""
	if !post.Rank.Valid() {
		post.Rank = content.RankGold
	}

	var created content.CommunityPost
	if err := s.store.Insert(ctx, remotestore.TableCommunityPosts, post, &created); err != nil {
		s.logger.Content().Error("Community post insert failed", "error", err.Error())
		s.notifier.Error("Failed to post message")
		return fmt.Errorf("submit community post: %w", err)
	}

	s.cache.InsertCommunityPost(created)
	s.notifier.Success("Message posted successfully!")
	return nil
}

// SubmitFanart files a fanart entry into the moderation queue. Status is
// forced to pending.
func (s *CommunityService) SubmitFanart(ctx context.Context, item content.FanartItem) error {
	if err := s.requireStore(); err != nil {
		return err
	}

	item.ID = security.GenerateULID()
	item.Status = content.StatusPending
	item.CreatedAt = ""

	var created content.FanartItem
	if err := s.store.Insert(ctx, remotestore.TableFanart, item, &created); err != nil {
		s.logger.Content().Error("Fanart insert failed", "error", err.Error())
		s.notifier.Error("Failed to submit fanart")
		return fmt.Errorf("submit fanart: %w", err)
	}

	s.cache.InsertFanartItem(created)
	s.notifier.Success("Fanart submitted successfully!")
	return nil
}

// SetCommunityPostStatus moves a post through the moderation state machine.
// The write goes to the store first; the cache reflects it only on success.
func (s *CommunityService) SetCommunityPostStatus(ctx context.Context, id string, status content.Status) error {
	if err := s.requireStore(); err != nil {
		return err
	}
	if !status.Valid() {
		return fmt.Errorf("invalid moderation status %q", status)
	}

	var updated content.CommunityPost
	filter := remotestore.Filter{Column: "id", Value: id}
	patch := map[string]any{"status": status}
	if err := s.store.Update(ctx, remotestore.TableCommunityPosts, filter, patch, &updated); err != nil {
		s.logger.Content().Error("Community post status update failed", "id", id, "error", err.Error())
		s.notifier.Error("Failed to update message status")
		return fmt.Errorf("set community post status: %w", err)
	}

	if updated.ID != "" {
		s.cache.UpdateCommunityPost(updated)
	} else if post, ok := s.cache.CommunityPost(id); ok {
		post.Status = status
		s.cache.UpdateCommunityPost(post)
	}
	s.notifier.Success(fmt.Sprintf("Message %s!", status))
	return nil
}

// SetFanartStatus moves a fanart item through the moderation state machine.
func (s *CommunityService) SetFanartStatus(ctx context.Context, id string, status content.Status) error {
	if err := s.requireStore(); err != nil {
		return err
	}
	if !status.Valid() {
		return fmt.Errorf("invalid moderation status %q", status)
	}

	var updated content.FanartItem
	filter := remotestore.Filter{Column: "id", Value: id}
	patch := map[string]any{"status": status}
	if err := s.store.Update(ctx, remotestore.TableFanart, filter, patch, &updated); err != nil {
		s.logger.Content().Error("Fanart status update failed", "id", id, "error", err.Error())
		s.notifier.Error("Failed to update fanart status")
		return fmt.Errorf("set fanart status: %w", err)
	}

	if updated.ID != "" {
		s.cache.UpdateFanartItem(updated)
	} else if item, ok := s.cache.FanartItem(id); ok {
		item.Status = status
		s.cache.UpdateFanartItem(item)
	}
	s.notifier.Success(fmt.Sprintf("Fanart %s!", status))
	return nil
}

// RemoveCommunityPost hard-deletes a post from any moderation state.
func (s *CommunityService) RemoveCommunityPost(ctx context.Context, id string) error {
	if err := s.requireStore(); err != nil {
		return err
	}

	filter := remotestore.Filter{Column: "id", Value: id}
	if err := s.store.Delete(ctx, remotestore.TableCommunityPosts, filter); err != nil {
		s.logger.Content().Error("Community post delete failed", "id", id, "error", err.Error())
		s.notifier.Error("Failed to delete message")
		return fmt.Errorf("remove community post: %w", err)
	}

	s.cache.RemoveCommunityPost(id)
	s.notifier.Success("Message deleted successfully!")
	return nil
}

// RemoveFanart hard-deletes a fanart item from any moderation state.
func (s *CommunityService) RemoveFanart(ctx context.Context, id string) error {
	if err := s.requireStore(); err != nil {
		return err
	}

	filter := remotestore.Filter{Column: "id", Value: id}
	if err := s.store.Delete(ctx, remotestore.TableFanart, filter); err != nil {
		s.logger.Content().Error("Fanart delete failed", "id", id, "error", err.Error())
		s.notifier.Error("Failed to delete fanart")
		return fmt.Errorf("remove fanart: %w", err)
	}

	s.cache.RemoveFanartItem(id)
	s.notifier.Success("Fanart deleted successfully!")
	return nil
}

// sortByCreatedAtDesc orders newest-first. Timestamps are RFC 3339 strings,
// so byte order is chronological order.
func sortByCreatedAtDesc[T any](items []T, createdAt func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]) > createdAt(items[j])
	})
}
