package service

import (
	"context"
	"log/slog"

	"github.com/babyBee3443/biogenius-sub001/internal/domain"
	"github.com/babyBee3443/biogenius-sub001/internal/logger"
	"github.com/babyBee3443/biogenius-sub001/internal/repository"
	"github.com/babyBee3443/biogenius-sub001/internal/search"
	"github.com/babyBee3443/biogenius-sub001/internal/validator"
)

// NoteService wraps study-note CRUD with validation, visibility filtering
// and search-index upkeep.
type NoteService struct {
	repo      *repository.NoteRepository
	validator *validator.Validator
	index     *search.Index
}

// NewNoteService creates a new NoteService. The index may be nil when search
// is disabled.
func NewNoteService(repo *repository.NoteRepository, v *validator.Validator, idx *search.Index) *NoteService {
	return &NoteService{repo: repo, validator: v, index: idx}
}

// ListVisible returns the notes a viewer with the given role may see.
func (s *NoteService) ListVisible(ctx context.Context, viewerRole string) []domain.Note {
	var out []domain.Note
	for _, n := range s.repo.List(ctx) {
		if StatusVisibleTo(viewerRole, n.Status) {
			out = append(out, n)
		}
	}
	return out
}

// ListAll returns every note regardless of status, for the admin views.
func (s *NoteService) ListAll(ctx context.Context) []domain.Note {
	return s.repo.List(ctx)
}

// Get returns the note with the given id or slug if the viewer may see it.
func (s *NoteService) Get(ctx context.Context, id, viewerRole string) *domain.Note {
	n := s.repo.GetByID(ctx, id)
	if n == nil || !StatusVisibleTo(viewerRole, n.Status) {
		return nil
	}
	return n
}

// GetAny returns the note with the given id regardless of status.
func (s *NoteService) GetAny(ctx context.Context, id string) *domain.Note {
	return s.repo.GetByID(ctx, id)
}

// Create validates and persists a new note.
func (s *NoteService) Create(ctx context.Context, n domain.Note) (domain.Note, error) {
	if n.Status == "" {
		n.Status = domain.StatusDraft
	}
	if err := s.validator.ValidateNote(&n); err != nil {
		return domain.Note{}, newValidationError(err)
	}
	created, err := s.repo.Create(ctx, n)
	if err != nil {
		return domain.Note{}, err
	}
	s.reindex(&created)
	return created, nil
}

// Update merges a partial update into an existing note. The merged record is
// validated before anything is written; a rejected update leaves the stored
// note untouched. Returns nil when the id is absent.
func (s *NoteService) Update(ctx context.Context, id string, u domain.NoteUpdate) (*domain.Note, error) {
	updated, err := s.repo.Update(ctx, id, u, func(n *domain.Note) error {
		if verr := s.validator.ValidateNote(n); verr != nil {
			return newValidationError(verr)
		}
		return nil
	})
	if err != nil || updated == nil {
		return updated, err
	}
	s.reindex(updated)
	return updated, nil
}

// Delete removes a note.
func (s *NoteService) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := s.repo.Delete(ctx, id)
	if ok && s.index != nil {
		if ierr := s.index.Delete(search.KindNote, id); ierr != nil {
			logger.Warn("failed to remove note from search index",
				slog.String("note_id", id),
				slog.String("error", ierr.Error()))
		}
	}
	return ok, err
}

func (s *NoteService) reindex(n *domain.Note) {
	if s.index == nil {
		return
	}
	var err error
	if n.Status == domain.StatusPublished {
		err = s.index.IndexNote(n)
	} else {
		err = s.index.Delete(search.KindNote, n.ID)
	}
	if err != nil {
		logger.Warn("search index update failed",
			slog.String("note_id", n.ID),
			slog.String("error", err.Error()))
	}
}
