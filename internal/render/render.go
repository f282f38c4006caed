// Package render turns content blocks into HTML fragments. Each block type
// has exactly one render case; types without a renderer produce a visible
// placeholder naming the type, never a silent no-op.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/babyBee3443/biogenius-sub001/internal/domain"
)

// HTML renders a single block to an HTML fragment.
func HTML(b domain.Block) string {
	switch b.Type {
	case domain.BlockText:
		return renderText(b)
	case domain.BlockHeading:
		return renderHeading(b)
	case domain.BlockImage:
		return renderImage(b)
	case domain.BlockQuote:
		return renderQuote(b)
	case domain.BlockDivider:
		return "<hr>"
	case domain.BlockVideo:
		return renderVideo(b)
	case domain.BlockGallery, domain.BlockCode, domain.BlockSection:
		// Renderers deferred; the placeholder keeps the gap visible.
		return placeholder(string(b.Type))
	default:
		return placeholder(string(b.Type))
	}
}

// Document renders a block sequence in order.
func Document(blocks []domain.Block) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, HTML(b))
	}
	return strings.Join(parts, "\n")
}

func renderText(b domain.Block) string {
	escaped := html.EscapeString(b.Content)
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	return "<p>" + escaped + "</p>"
}

func renderHeading(b domain.Block) string {
	level := b.Level
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return fmt.Sprintf("<h%d>%s</h%d>", level, html.EscapeString(b.Content), level)
}

func renderImage(b domain.Block) string {
	var sb strings.Builder
	sb.WriteString("<figure>")
	sb.WriteString(fmt.Sprintf(`<img src="%s" alt="%s">`, html.EscapeString(b.URL), html.EscapeString(b.Alt)))
	if b.Caption != "" {
		sb.WriteString("<figcaption>" + html.EscapeString(b.Caption) + "</figcaption>")
	}
	sb.WriteString("</figure>")
	return sb.String()
}

func renderQuote(b domain.Block) string {
	var sb strings.Builder
	sb.WriteString("<blockquote><p>" + html.EscapeString(b.Content) + "</p>")
	if b.Citation != "" {
		sb.WriteString("<cite>" + html.EscapeString(b.Citation) + "</cite>")
	}
	sb.WriteString("</blockquote>")
	return sb.String()
}

func renderVideo(b domain.Block) string {
	id := domain.YouTubeID(b.URL)
	if id == "" {
		// Unrecognized video URL: fall back to a plain link
		escaped := html.EscapeString(b.URL)
		return fmt.Sprintf(`<p><a href="%s" rel="noopener">%s</a></p>`, escaped, escaped)
	}
	return fmt.Sprintf(`<div class="video-embed"><iframe src="https://www.youtube.com/embed/%s" allowfullscreen></iframe></div>`, id)
}

func placeholder(blockType string) string {
	if blockType == "" {
		blockType = "unknown"
	}
	return fmt.Sprintf(`<div class="block-placeholder">[%s bloğu henüz desteklenmiyor]</div>`, html.EscapeString(blockType))
}
