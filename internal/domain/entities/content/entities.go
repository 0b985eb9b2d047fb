// Package content defines the application's core content-related domain entities.
package content

// Timestamps are carried as the RFC3339 strings the remote store emits. They
// compare lexicographically in chronological order, which is all the display
// sort needs.

type StreamingLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type DiscographyItem struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Cover          string          `json:"cover"`
	ReleaseDate    string          `json:"release_date"`
	StreamingLinks []StreamingLink `json:"streaming_links"`
	CreatedAt      string          `json:"created_at,omitempty"`
	UpdatedAt      string          `json:"updated_at,omitempty"`
}

type VideoItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Thumbnail   string `json:"thumbnail"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

type CommunityPost struct {
	ID        string `json:"id"`
	UserName  string `json:"user_name"`
	Message   string `json:"message"`
	Rank      Rank   `json:"rank"`
	Status    Status `json:"status"`
	CreatedAt string `json:"created_at,omitempty"`
}

type FanartItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	ImageURL  string `json:"image_url"`
	Status    Status `json:"status"`
	CreatedAt string `json:"created_at,omitempty"`
}

// SiteAsset is addressed by AssetKey for every lookup and update; ID is
// incidental storage identity.
type SiteAsset struct {
	ID        string         `json:"id"`
	AssetKey  string         `json:"asset_key"`
	AssetType string         `json:"asset_type"`
	URL       string         `json:"url"`
	AltText   string         `json:"alt_text"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt string         `json:"created_at,omitempty"`
	UpdatedAt string         `json:"updated_at,omitempty"`
}

// PageContent rows are addressed by the (PageName, SectionKey) pair. Content
// is a free-form field map interpreted by each page section.
type PageContent struct {
	ID         string         `json:"id"`
	PageName   string         `json:"page_name"`
	SectionKey string         `json:"section_key"`
	Content    map[string]any `json:"content"`
	CreatedAt  string         `json:"created_at,omitempty"`
	UpdatedAt  string         `json:"updated_at,omitempty"`
}

// SettingsRow is one of the two singleton rows in site_settings,
// distinguished by Key ("footer_content" or "site_settings").
type SettingsRow struct {
	ID        string         `json:"id"`
	Key       string         `json:"key"`
	Value     map[string]any `json:"value"`
	UpdatedAt string         `json:"updated_at,omitempty"`
}

// Settings row key discriminators.
const (
	SettingsKeyFooter = "footer_content"
	SettingsKeySite   = "site_settings"
)

type SocialLink struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
}

// FooterContent is the "footer_content" settings singleton.
type FooterContent struct {
	Tagline       string       `json:"tagline"`
	Description   string       `json:"description"`
	SocialLinks   []SocialLink `json:"socialLinks"`
	CopyrightText string       `json:"copyrightText"`
	MadeWithText  string       `json:"madeWithText"`
}

// SiteSettings is the "site_settings" settings singleton.
type SiteSettings struct {
	SiteTitle       string `json:"siteTitle"`
	MetaDescription string `json:"metaDescription"`
	ContactEmail    string `json:"contactEmail"`
}
