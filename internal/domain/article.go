package domain

import "time"

// Article represents a magazine article composed of content blocks.
type Article struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Slug           string    `json:"slug"`
	Excerpt        string    `json:"excerpt,omitempty"`
	Blocks         []Block   `json:"blocks"`
	Category       string    `json:"category"`
	Status         Status    `json:"status"`
	ImageURL       string    `json:"image_url,omitempty"`
	SEOTitle       string    `json:"seo_title,omitempty"`
	SEODescription string    `json:"seo_description,omitempty"`
	Keywords       []string  `json:"keywords,omitempty"`
	CanonicalURL   string    `json:"canonical_url,omitempty"`
	IsFeatured     bool      `json:"is_featured"`
	IsHero         bool      `json:"is_hero"`
	AuthorID       string    `json:"author_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ArticleUpdate carries the fields of a partial article update. Nil fields
// are left untouched by the merge.
type ArticleUpdate struct {
	Title          *string   `json:"title,omitempty"`
	Slug           *string   `json:"slug,omitempty"`
	Excerpt        *string   `json:"excerpt,omitempty"`
	Blocks         *[]Block  `json:"blocks,omitempty"`
	Category       *string   `json:"category,omitempty"`
	Status         *Status   `json:"status,omitempty"`
	ImageURL       *string   `json:"image_url,omitempty"`
	SEOTitle       *string   `json:"seo_title,omitempty"`
	SEODescription *string   `json:"seo_description,omitempty"`
	Keywords       *[]string `json:"keywords,omitempty"`
	CanonicalURL   *string   `json:"canonical_url,omitempty"`
	IsFeatured     *bool     `json:"is_featured,omitempty"`
	IsHero         *bool     `json:"is_hero,omitempty"`
}
