package stores

import (
	"github.com/sauntrix/sauntrix-go/internal/domain/entities/content"
)

// Footer returns the footer_content singleton (defaults until loaded).
func (cs *ContentStore) Footer() content.FooterContent {
	cs.cache.Mu.RLock()
	defer cs.cache.Mu.RUnlock()
	return cs.cache.Footer
}

// SetFooter replaces the footer_content singleton.
func (cs *ContentStore) SetFooter(footer content.FooterContent) {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()
	cs.cache.Footer = footer
	cs.touch()
}

// Settings returns the site_settings singleton (defaults until loaded).
func (cs *ContentStore) Settings() content.SiteSettings {
	cs.cache.Mu.RLock()
	defer cs.cache.Mu.RUnlock()
	return cs.cache.Settings
}

// SetSettings replaces the site_settings singleton.
func (cs *ContentStore) SetSettings(settings content.SiteSettings) {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()
	cs.cache.Settings = settings
	cs.touch()
}
