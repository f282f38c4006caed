package domain

import "regexp"

// BlockType discriminates the kind of a content block.
type BlockType string

const (
	BlockText    BlockType = "text"
	BlockHeading BlockType = "heading"
	BlockImage   BlockType = "image"
	BlockQuote   BlockType = "quote"
	BlockDivider BlockType = "divider"
	BlockVideo   BlockType = "video"
	BlockGallery BlockType = "gallery"
	BlockCode    BlockType = "code"
	BlockSection BlockType = "section"
)

// GalleryImage is one entry of a gallery block.
type GalleryImage struct {
	URL     string `json:"url"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// Block is one unit of structured document content. The Type field selects
// which of the remaining fields carry the payload; blocks have no identity
// outside the document that owns them.
type Block struct {
	Type BlockType `json:"type"`

	// text, quote, code
	Content string `json:"content,omitempty"`

	// heading
	Level int `json:"level,omitempty"`

	// image, video
	URL     string `json:"url,omitempty"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`

	// quote
	Citation string `json:"citation,omitempty"`

	// gallery
	Images []GalleryImage `json:"images,omitempty"`

	// code
	Language string `json:"language,omitempty"`

	// section
	SectionType string         `json:"sectionType,omitempty"`
	Settings    map[string]any `json:"settings,omitempty"`
}

// youtubeIDPattern matches the watch, embed, short "v" and youtu.be URL forms.
var youtubeIDPattern = regexp.MustCompile(`(?:youtube\.com/(?:watch\?v=|embed/|v/)|youtu\.be/)([A-Za-z0-9_-]+)`)

// YouTubeID extracts the video id from a YouTube URL. The id is accepted only
// if the captured fragment is exactly 11 characters; anything else returns
// the empty string and the caller falls back to a plain link.
func YouTubeID(url string) string {
	m := youtubeIDPattern.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	if len(m[1]) != 11 {
		return ""
	}
	return m[1]
}

// Section type discriminators for section blocks.
const (
	SectionFeaturedList   = "featured-list"
	SectionCategoryTeaser = "category-teaser"
	SectionRecentList     = "recent-list"
	SectionContactForm    = "contact-form"
	SectionCustomText     = "custom-text"
)

// SectionDefaults returns the default settings map for a section type.
// Unknown section types get an empty map.
func SectionDefaults(sectionType string) map[string]any {
	switch sectionType {
	case SectionFeaturedList:
		return map[string]any{"title": "Öne Çıkanlar", "count": 3, "source": "articles"}
	case SectionCategoryTeaser:
		return map[string]any{"title": "Kategoriler", "category": "", "count": 4}
	case SectionRecentList:
		return map[string]any{"title": "Son Eklenenler", "count": 5, "source": "articles"}
	case SectionContactForm:
		return map[string]any{"title": "İletişim", "recipient": ""}
	case SectionCustomText:
		return map[string]any{"title": "", "text": ""}
	default:
		return map[string]any{}
	}
}

// ResetSectionSettings switches a section block to a new section type and
// resets its settings to that type's defaults. A shared "title" value is
// preserved across the switch when the old settings carry one.
func ResetSectionSettings(b *Block, sectionType string) {
	defaults := SectionDefaults(sectionType)
	if b.Settings != nil {
		if title, ok := b.Settings["title"]; ok {
			if _, accepts := defaults["title"]; accepts {
				defaults["title"] = title
			}
		}
	}
	b.SectionType = sectionType
	b.Settings = defaults
}
