package domain

import "strings"

// Category is a content category. Articles and notes reference categories by
// name, not by id; deleting a category does not cascade into content.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var turkishFold = strings.NewReplacer(
	"ç", "c", "Ç", "c",
	"ğ", "g", "Ğ", "g",
	"ı", "i", "İ", "i",
	"ö", "o", "Ö", "o",
	"ş", "s", "Ş", "s",
	"ü", "u", "Ü", "u",
)

// CategoryIDFromName derives a category id from its display name: Turkish
// characters folded to ASCII, lowercased, non-alphanumerics collapsed to
// single dashes.
func CategoryIDFromName(name string) string {
	s := strings.ToLower(turkishFold.Replace(strings.TrimSpace(name)))
	var b strings.Builder
	lastDash := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
