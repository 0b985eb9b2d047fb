package services

import (
	"context"
	"fmt"

	"github.com/sauntrix/sauntrix-go/internal/domain/entities/content"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/caching/stores"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/messaging"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/observability/logging"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/remotestore"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/security"
)

// SiteService manages the keyed site surfaces: assets addressed by asset_key,
// page sections addressed by (page_name, section_key), and the footer and
// site-settings singletons. Writes that target a key use upsert semantics so
// first write and subsequent edits are the same operation.
type SiteService struct {
	store    remotestore.Client
	cache    *stores.ContentStore
	notifier *messaging.Notifier
	logger   *logging.ChanneledLogger
}

// NewSiteService creates the site surface façade.
func NewSiteService(store remotestore.Client, cache *stores.ContentStore, notifier *messaging.Notifier, logger *logging.ChanneledLogger) *SiteService {
	return &SiteService{store: store, cache: cache, notifier: notifier, logger: logger}
}

func (s *SiteService) requireStore() error {
	if !s.store.Configured() {
		s.notifier.Error("Database not available")
		return remotestore.ErrStoreUnavailable
	}
	return nil
}

// SiteAssets returns all cached assets.
func (s *SiteService) SiteAssets() []content.SiteAsset {
	return s.cache.SiteAssets()
}

// Asset resolves a single asset by its key.
func (s *SiteService) Asset(assetKey string) (content.SiteAsset, bool) {
	return s.cache.Asset(assetKey)
}

// PageSections returns every cached section for a page.
func (s *SiteService) PageSections(pageName string) map[string]map[string]any {
	return s.cache.PageSections(pageName)
}

// PageSection resolves one section of one page.
func (s *SiteService) PageSection(pageName, sectionKey string) (map[string]any, bool) {
	return s.cache.PageSection(pageName, sectionKey)
}

// Footer returns the footer singleton. Never empty: defaults seed it.
func (s *SiteService) Footer() content.FooterContent {
	return s.cache.Footer()
}

// Settings returns the site-settings singleton. Never empty: defaults seed it.
func (s *SiteService) Settings() content.SiteSettings {
	return s.cache.Settings()
}

// UpdateAsset writes an asset URL (and optional metadata) under a key,
// creating the row if the key is new. Upserts on asset_key.
func (s *SiteService) UpdateAsset(ctx context.Context, assetKey, assetType, url, altText string, metadata map[string]any) error {
	if err := s.requireStore(); err != nil {
		return err
	}

	row := content.SiteAsset{
		ID:        security.GenerateULID(),
		AssetKey:  assetKey,
		AssetType: assetType,
		URL:       url,
		AltText:   altText,
		Metadata:  metadata,
	}

	var saved content.SiteAsset
	if err := s.store.Upsert(ctx, remotestore.TableSiteAssets, row, "asset_key", &saved); err != nil {
		s.logger.Content().Error("Asset upsert failed", "asset_key", assetKey, "error", err.Error())
		s.notifier.Error("Failed to update asset")
		return fmt.Errorf("update asset %q: %w", assetKey, err)
	}

	s.cache.UpsertAssetByKey(saved)
	s.notifier.Success("Asset updated successfully!")
	return nil
}

// RemoveAsset deletes the asset stored under a key. The site falls back to
// its built-in art for that slot.
func (s *SiteService) RemoveAsset(ctx context.Context, assetKey string) error {
	if err := s.requireStore(); err != nil {
		return err
	}

	filter := remotestore.Filter{Column: "asset_key", Value: assetKey}
	if err := s.store.Delete(ctx, remotestore.TableSiteAssets, filter); err != nil {
		s.logger.Content().Error("Asset delete failed", "asset_key", assetKey, "error", err.Error())
		s.notifier.Error("Failed to delete asset")
		return fmt.Errorf("remove asset %q: %w", assetKey, err)
	}

	s.cache.RemoveAssetByKey(assetKey)
	s.notifier.Success("Asset deleted successfully!")
	return nil
}

// UpdatePageContent writes one section of one page. Upserts on the
// (page_name, section_key) pair.
func (s *SiteService) UpdatePageContent(ctx context.Context, pageName, sectionKey string, sectionContent map[string]any) error {
	if err := s.requireStore(); err != nil {
		return err
	}

	row := content.PageContent{
		ID:         security.GenerateULID(),
		PageName:   pageName,
		SectionKey: sectionKey,
		Content:    sectionContent,
	}

	var saved content.PageContent
	if err := s.store.Upsert(ctx, remotestore.TablePageContent, row, "page_name,section_key", &saved); err != nil {
		s.logger.Content().Error("Page content upsert failed", "page", pageName, "section", sectionKey, "error", err.Error())
		s.notifier.Error("Failed to update page content")
		return fmt.Errorf("update page content %s/%s: %w", pageName, sectionKey, err)
	}

	s.cache.UpsertPageSection(saved.PageName, saved.SectionKey, saved.Content)
	s.notifier.Success("Page content updated successfully!")
	return nil
}

// UpdateFooterContent merges a partial footer patch over the current value
// and persists the result. Absent fields keep their current value.
func (s *SiteService) UpdateFooterContent(ctx context.Context, patch map[string]any) error {
	if err := s.requireStore(); err != nil {
		return err
	}

	current, err := encodeValue(s.cache.Footer())
	if err != nil {
		return fmt.Errorf("encode footer: %w", err)
	}
	for k, v := range patch {
		current[k] = v
	}

	var merged content.FooterContent
	if err := decodeValue(current, &merged); err != nil {
		s.notifier.Error("Failed to update footer")
		return fmt.Errorf("merge footer patch: %w", err)
	}

	if err := s.writeSettingsRow(ctx, content.SettingsKeyFooter, current); err != nil {
		s.notifier.Error("Failed to update footer")
		return err
	}

	s.cache.SetFooter(merged)
	s.notifier.Success("Footer updated successfully!")
	return nil
}

// UpdateSiteSettings merges a partial settings patch over the current value
// and persists the result.
func (s *SiteService) UpdateSiteSettings(ctx context.Context, patch map[string]any) error {
	if err := s.requireStore(); err != nil {
		return err
	}

	current, err := encodeValue(s.cache.Settings())
	if err != nil {
		return fmt.Errorf("encode site settings: %w", err)
	}
	for k, v := range patch {
		current[k] = v
	}

	var merged content.SiteSettings
	if err := decodeValue(current, &merged); err != nil {
		s.notifier.Error("Failed to update settings")
		return fmt.Errorf("merge settings patch: %w", err)
	}

	if err := s.writeSettingsRow(ctx, content.SettingsKeySite, current); err != nil {
		s.notifier.Error("Failed to update settings")
		return err
	}

	s.cache.SetSettings(merged)
	s.notifier.Success("Settings updated successfully!")
	return nil
}

// writeSettingsRow upserts one named singleton row in site_settings.
func (s *SiteService) writeSettingsRow(ctx context.Context, key string, value map[string]any) error {
	row := content.SettingsRow{
		ID:    security.GenerateULID(),
		Key:   key,
		Value: value,
	}

	var saved content.SettingsRow
	if err := s.store.Upsert(ctx, remotestore.TableSiteSettings, row, "key", &saved); err != nil {
		s.logger.Content().Error("Settings upsert failed", "key", key, "error", err.Error())
		return fmt.Errorf("write settings row %q: %w", key, err)
	}
	return nil
}
