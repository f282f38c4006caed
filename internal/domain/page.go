package domain

import "time"

// HeroSettings configures the hero carousel of a page.
type HeroSettings struct {
	Enabled          bool   `json:"enabled"`
	ArticleSource    string `json:"article_source"` // "hero", "featured" or "recent"
	RotationInterval int    `json:"rotation_interval"` // seconds
	MaxArticles      int    `json:"max_articles"`
}

// Page represents a site page composed of content blocks.
type Page struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Slug           string        `json:"slug"`
	Blocks         []Block       `json:"blocks"`
	SEOTitle       string        `json:"seo_title,omitempty"`
	SEODescription string        `json:"seo_description,omitempty"`
	Hero           *HeroSettings `json:"hero,omitempty"`
	Status         Status        `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// PageUpdate carries the fields of a partial page update.
type PageUpdate struct {
	Title          *string       `json:"title,omitempty"`
	Slug           *string       `json:"slug,omitempty"`
	Blocks         *[]Block      `json:"blocks,omitempty"`
	SEOTitle       *string       `json:"seo_title,omitempty"`
	SEODescription *string       `json:"seo_description,omitempty"`
	Hero           *HeroSettings `json:"hero,omitempty"`
	Status         *Status       `json:"status,omitempty"`
}

// ProtectedPageIDs lists page ids that can never be deleted.
var ProtectedPageIDs = []string{"home", "hakkimizda", "iletisim", "kullanim-kilavuzu"}

// IsProtectedPage reports whether a page id is delete-protected.
func IsProtectedPage(id string) bool {
	for _, p := range ProtectedPageIDs {
		if p == id {
			return true
		}
	}
	return false
}
