package content

// DefaultFooterContent returns the built-in footer singleton used until the
// remote store row loads, and indefinitely when the store is unconfigured.
func DefaultFooterContent() FooterContent {
	return FooterContent{
		Tagline:     "Stronger Together, Shining Forever",
		Description: "A virtual K-pop trio blending anime fantasy with idol artistry. Three guardians united by destiny to inspire fans worldwide through music and stories.",
		SocialLinks: []SocialLink{
			{ID: "1", Platform: "Twitter", URL: "https://twitter.com/sauntrix", Icon: "Twitter"},
			{ID: "2", Platform: "Instagram", URL: "https://instagram.com/sauntrix", Icon: "Instagram"},
			{ID: "3", Platform: "TikTok", URL: "https://tiktok.com/@sauntrix", Icon: "Music"},
			{ID: "4", Platform: "Email", URL: "mailto:contact@sauntrix.com", Icon: "Mail"},
		},
		CopyrightText: "SAUNTRIX. All rights reserved.",
		MadeWithText:  "Made with ❤️ for AUREA",
	}
}

// DefaultSiteSettings returns the built-in "site_settings" singleton.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		SiteTitle:       "SAUNTRIX - Stronger Together, Shining Forever",
		MetaDescription: "SAUNTRIX - Virtual K-pop trio blending anime fantasy with idol artistry. Lumia, Kira, and Riven unite to inspire fans worldwide.",
		ContactEmail:    "contact@sauntrix.com",
	}
}
