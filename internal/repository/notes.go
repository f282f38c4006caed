package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/babyBee3443/biogenius-sub001/internal/domain"
	"github.com/babyBee3443/biogenius-sub001/internal/store"
)

// NoteRepository provides CRUD over the study-note collection.
type NoteRepository struct {
	col *collection[domain.Note]
}

// NewNoteRepository creates a new NoteRepository.
func NewNoteRepository(kv store.KV) *NoteRepository {
	return &NoteRepository{
		col: newCollection(kv, store.KeyNotes, func(n *domain.Note) string { return n.ID }),
	}
}

// List returns all notes.
func (r *NoteRepository) List(ctx context.Context) []domain.Note {
	return r.col.List(ctx)
}

// GetByID returns the note with the given id or slug, or nil. Notes are
// commonly addressed by slug from the front end, so both are accepted.
func (r *NoteRepository) GetByID(ctx context.Context, id string) *domain.Note {
	return r.col.Find(ctx, func(n *domain.Note) bool { return n.ID == id || n.Slug == id })
}

// GetBySlug returns the note with the given slug, or nil.
func (r *NoteRepository) GetBySlug(ctx context.Context, slug string) *domain.Note {
	return r.col.Find(ctx, func(n *domain.Note) bool { return n.Slug == slug })
}

// Create assigns an id and timestamps, persists the note and returns a copy.
func (r *NoteRepository) Create(ctx context.Context, n domain.Note) (domain.Note, error) {
	now := time.Now().UTC()
	n.ID = uuid.New().String()
	n.CreatedAt = now
	n.UpdatedAt = now
	if n.Status == "" {
		n.Status = domain.StatusDraft
	}
	if n.Blocks == nil {
		n.Blocks = []domain.Block{}
	}
	return r.col.Insert(ctx, n)
}

// Update merges the non-nil fields of u into the stored note, bumps
// UpdatedAt and returns the updated copy, or nil when the id is absent.
// check runs on the merged record before anything is persisted; its error
// aborts the update with no write.
func (r *NoteRepository) Update(ctx context.Context, id string, u domain.NoteUpdate, check func(*domain.Note) error) (*domain.Note, error) {
	return r.col.Mutate(ctx, id, func(n *domain.Note) error {
		if u.Title != nil {
			n.Title = *u.Title
		}
		if u.Slug != nil {
			n.Slug = *u.Slug
		}
		if u.Category != nil {
			n.Category = *u.Category
		}
		if u.Level != nil {
			n.Level = *u.Level
		}
		if u.Tags != nil {
			n.Tags = *u.Tags
		}
		if u.Summary != nil {
			n.Summary = *u.Summary
		}
		if u.Blocks != nil {
			n.Blocks = *u.Blocks
		}
		if u.RelatedIDs != nil {
			n.RelatedIDs = *u.RelatedIDs
		}
		if u.ImageURL != nil {
			n.ImageURL = *u.ImageURL
		}
		if u.Status != nil {
			n.Status = *u.Status
		}
		n.UpdatedAt = time.Now().UTC()
		if check != nil {
			return check(n)
		}
		return nil
	})
}

// Delete removes the note with the given id.
func (r *NoteRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.Delete(ctx, id)
}
