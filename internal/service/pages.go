package service

import (
	"context"

	"github.com/babyBee3443/biogenius-sub001/internal/domain"
	"github.com/babyBee3443/biogenius-sub001/internal/repository"
	"github.com/babyBee3443/biogenius-sub001/internal/validator"
)

// PageService wraps page CRUD with validation and visibility filtering.
type PageService struct {
	repo      *repository.PageRepository
	validator *validator.Validator
}

// NewPageService creates a new PageService.
func NewPageService(repo *repository.PageRepository, v *validator.Validator) *PageService {
	return &PageService{repo: repo, validator: v}
}

// ListVisible returns the pages a viewer with the given role may see.
func (s *PageService) ListVisible(ctx context.Context, viewerRole string) []domain.Page {
	var out []domain.Page
	for _, p := range s.repo.List(ctx) {
		if StatusVisibleTo(viewerRole, p.Status) {
			out = append(out, p)
		}
	}
	return out
}

// ListAll returns every page regardless of status, for the admin views.
func (s *PageService) ListAll(ctx context.Context) []domain.Page {
	return s.repo.List(ctx)
}

// Get returns the page with the given id or slug if the viewer may see it.
func (s *PageService) Get(ctx context.Context, id, viewerRole string) *domain.Page {
	p := s.repo.GetByID(ctx, id)
	if p == nil || !StatusVisibleTo(viewerRole, p.Status) {
		return nil
	}
	return p
}

// GetAny returns the page with the given id regardless of status.
func (s *PageService) GetAny(ctx context.Context, id string) *domain.Page {
	return s.repo.GetByID(ctx, id)
}

// Create validates and persists a new page.
func (s *PageService) Create(ctx context.Context, p domain.Page) (domain.Page, error) {
	if p.Status == "" {
		p.Status = domain.StatusDraft
	}
	if err := s.validator.ValidatePage(&p); err != nil {
		return domain.Page{}, newValidationError(err)
	}
	return s.repo.Create(ctx, p)
}

// Update merges a partial update into an existing page. The merged record is
// validated before anything is written; a rejected update leaves the stored
// page untouched. Returns nil when the id is absent.
func (s *PageService) Update(ctx context.Context, id string, u domain.PageUpdate) (*domain.Page, error) {
	return s.repo.Update(ctx, id, u, func(p *domain.Page) error {
		if verr := s.validator.ValidatePage(p); verr != nil {
			return newValidationError(verr)
		}
		return nil
	})
}

// Delete removes a page. Protected page ids always return false with the
// collection unchanged.
func (s *PageService) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}

// IsProtected reports whether a page id is delete-protected, so handlers can
// distinguish "forbidden" from "not found".
func (s *PageService) IsProtected(id string) bool {
	return domain.IsProtectedPage(id)
}
