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

// ArticleService wraps article CRUD with validation, visibility filtering
// and search-index upkeep.
type ArticleService struct {
	repo      *repository.ArticleRepository
	validator *validator.Validator
	index     *search.Index
}

// NewArticleService creates a new ArticleService. The index may be nil when
// search is disabled.
func NewArticleService(repo *repository.ArticleRepository, v *validator.Validator, idx *search.Index) *ArticleService {
	return &ArticleService{repo: repo, validator: v, index: idx}
}

// ListVisible returns the articles a viewer with the given role may see.
func (s *ArticleService) ListVisible(ctx context.Context, viewerRole string) []domain.Article {
	var out []domain.Article
	for _, a := range s.repo.List(ctx) {
		if StatusVisibleTo(viewerRole, a.Status) {
			out = append(out, a)
		}
	}
	return out
}

// ListAll returns every article regardless of status, for the admin views.
func (s *ArticleService) ListAll(ctx context.Context) []domain.Article {
	return s.repo.List(ctx)
}

// Get returns the article with the given id if the viewer may see it.
func (s *ArticleService) Get(ctx context.Context, id, viewerRole string) *domain.Article {
	a := s.repo.GetByID(ctx, id)
	if a == nil || !StatusVisibleTo(viewerRole, a.Status) {
		return nil
	}
	return a
}

// GetBySlug returns the article with the given slug if the viewer may see it.
func (s *ArticleService) GetBySlug(ctx context.Context, slug, viewerRole string) *domain.Article {
	a := s.repo.GetBySlug(ctx, slug)
	if a == nil || !StatusVisibleTo(viewerRole, a.Status) {
		return nil
	}
	return a
}

// GetAny returns the article with the given id regardless of status.
func (s *ArticleService) GetAny(ctx context.Context, id string) *domain.Article {
	return s.repo.GetByID(ctx, id)
}

// Create validates and persists a new article.
func (s *ArticleService) Create(ctx context.Context, a domain.Article) (domain.Article, error) {
	if a.Status == "" {
		a.Status = domain.StatusDraft
	}
	if err := s.validator.ValidateArticle(&a); err != nil {
		return domain.Article{}, newValidationError(err)
	}
	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return domain.Article{}, err
	}
	s.reindex(&created)
	return created, nil
}

// Update merges a partial update into an existing article. The merged record
// is validated before anything is written; a rejected update leaves the
// stored article untouched. Returns nil when the id is absent.
func (s *ArticleService) Update(ctx context.Context, id string, u domain.ArticleUpdate) (*domain.Article, error) {
	updated, err := s.repo.Update(ctx, id, u, func(a *domain.Article) error {
		if verr := s.validator.ValidateArticle(a); verr != nil {
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

// Delete removes an article.
func (s *ArticleService) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := s.repo.Delete(ctx, id)
	if ok && s.index != nil {
		if ierr := s.index.Delete(search.KindArticle, id); ierr != nil {
			logger.Warn("failed to remove article from search index",
				slog.String("article_id", id),
				slog.String("error", ierr.Error()))
		}
	}
	return ok, err
}

// reindex keeps the search index in step with the article's status: only
// published articles are searchable.
func (s *ArticleService) reindex(a *domain.Article) {
	if s.index == nil {
		return
	}
	var err error
	if a.Status == domain.StatusPublished {
		err = s.index.IndexArticle(a)
	} else {
		err = s.index.Delete(search.KindArticle, a.ID)
	}
	if err != nil {
		logger.Warn("search index update failed",
			slog.String("article_id", a.ID),
			slog.String("error", err.Error()))
	}
}
