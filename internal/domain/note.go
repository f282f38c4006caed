package domain

import "time"

// Note represents a biology study note.
type Note struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Category   string    `json:"category"`
	Level      Level     `json:"level"`
	Tags       []string  `json:"tags,omitempty"`
	Summary    string    `json:"summary,omitempty"`
	Blocks     []Block   `json:"blocks"`
	RelatedIDs []string  `json:"related_ids,omitempty"`
	ImageURL   string    `json:"image_url,omitempty"`
	AuthorID   string    `json:"author_id"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NoteUpdate carries the fields of a partial note update.
type NoteUpdate struct {
	Title      *string   `json:"title,omitempty"`
	Slug       *string   `json:"slug,omitempty"`
	Category   *string   `json:"category,omitempty"`
	Level      *Level    `json:"level,omitempty"`
	Tags       *[]string `json:"tags,omitempty"`
	Summary    *string   `json:"summary,omitempty"`
	Blocks     *[]Block  `json:"blocks,omitempty"`
	RelatedIDs *[]string `json:"related_ids,omitempty"`
	ImageURL   *string   `json:"image_url,omitempty"`
	Status     *Status   `json:"status,omitempty"`
}
