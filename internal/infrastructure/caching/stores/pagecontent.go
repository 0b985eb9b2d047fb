package stores

import (
	"github.com/sauntrix/sauntrix-go/internal/domain/entities/content"
)

// PageSection returns the free-form content stored under (page, section).
// Absence returns nil and false; callers render their own fallback copy.
func (cs *ContentStore) PageSection(pageName, sectionKey string) (map[string]any, bool) {
	cs.cache.Mu.RLock()
	defer cs.cache.Mu.RUnlock()
	sections, ok := cs.cache.PageContent[pageName]
	if !ok {
		return nil, false
	}
	section, ok := sections[sectionKey]
	if !ok {
		return nil, false
	}
	return section, true
}

// PageSections returns every section map for one page.
func (cs *ContentStore) PageSections(pageName string) map[string]map[string]any {
	cs.cache.Mu.RLock()
	defer cs.cache.Mu.RUnlock()
	out := make(map[string]map[string]any, len(cs.cache.PageContent[pageName]))
	for section, fields := range cs.cache.PageContent[pageName] {
		out[section] = fields
	}
	return out
}

// SetPageContent rebuilds the whole (page, section) map from store rows.
func (cs *ContentStore) SetPageContent(rows []content.PageContent) {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()
	rebuilt := make(map[string]map[string]map[string]any)
	for _, row := range rows {
		if rebuilt[row.PageName] == nil {
			rebuilt[row.PageName] = make(map[string]map[string]any)
		}
		rebuilt[row.PageName][row.SectionKey] = row.Content
	}
	cs.cache.PageContent = rebuilt
	cs.touch()
}

// UpsertPageSection sets the content under (page, section); last write wins.
func (cs *ContentStore) UpsertPageSection(pageName, sectionKey string, fields map[string]any) {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()
	if cs.cache.PageContent[pageName] == nil {
		cs.cache.PageContent[pageName] = make(map[string]map[string]any)
	}
	cs.cache.PageContent[pageName][sectionKey] = fields
	cs.touch()
}

// RemovePageSection deletes the (page, section) entry; a miss is a no-op.
func (cs *ContentStore) RemovePageSection(pageName, sectionKey string) {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()
	if sections, ok := cs.cache.PageContent[pageName]; ok {
		delete(sections, sectionKey)
		cs.touch()
	}
}
