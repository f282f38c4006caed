package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/babyBee3443/biogenius-sub001/internal/domain"
	"github.com/babyBee3443/biogenius-sub001/internal/store"
)

// ArticleRepository provides CRUD over the article collection.
type ArticleRepository struct {
	col *collection[domain.Article]
}

// NewArticleRepository creates a new ArticleRepository.
func NewArticleRepository(kv store.KV) *ArticleRepository {
	return &ArticleRepository{
		col: newCollection(kv, store.KeyArticles, func(a *domain.Article) string { return a.ID }),
	}
}

// List returns all articles.
func (r *ArticleRepository) List(ctx context.Context) []domain.Article {
	return r.col.List(ctx)
}

// GetByID returns the article with the given id, or nil.
func (r *ArticleRepository) GetByID(ctx context.Context, id string) *domain.Article {
	return r.col.GetByID(ctx, id)
}

// GetBySlug returns the article with the given slug, or nil.
func (r *ArticleRepository) GetBySlug(ctx context.Context, slug string) *domain.Article {
	return r.col.Find(ctx, func(a *domain.Article) bool { return a.Slug == slug })
}

// Create assigns an id and timestamps, persists the article and returns a copy.
func (r *ArticleRepository) Create(ctx context.Context, a domain.Article) (domain.Article, error) {
	now := time.Now().UTC()
	a.ID = uuid.New().String()
	a.CreatedAt = now
	a.UpdatedAt = now
	if a.Status == "" {
		a.Status = domain.StatusDraft
	}
	if a.Blocks == nil {
		a.Blocks = []domain.Block{}
	}
	return r.col.Insert(ctx, a)
}

// Update merges the non-nil fields of u into the stored article, bumps
// UpdatedAt and returns the updated copy, or nil when the id is absent.
// check runs on the merged record before anything is persisted; its error
// aborts the update with no write.
func (r *ArticleRepository) Update(ctx context.Context, id string, u domain.ArticleUpdate, check func(*domain.Article) error) (*domain.Article, error) {
	return r.col.Mutate(ctx, id, func(a *domain.Article) error {
		if u.Title != nil {
			a.Title = *u.Title
		}
		if u.Slug != nil {
			a.Slug = *u.Slug
		}
		if u.Excerpt != nil {
			a.Excerpt = *u.Excerpt
		}
		if u.Blocks != nil {
			a.Blocks = *u.Blocks
		}
		if u.Category != nil {
			a.Category = *u.Category
		}
		if u.Status != nil {
			a.Status = *u.Status
		}
		if u.ImageURL != nil {
			a.ImageURL = *u.ImageURL
		}
		if u.SEOTitle != nil {
			a.SEOTitle = *u.SEOTitle
		}
		if u.SEODescription != nil {
			a.SEODescription = *u.SEODescription
		}
		if u.Keywords != nil {
			a.Keywords = *u.Keywords
		}
		if u.CanonicalURL != nil {
			a.CanonicalURL = *u.CanonicalURL
		}
		if u.IsFeatured != nil {
			a.IsFeatured = *u.IsFeatured
		}
		if u.IsHero != nil {
			a.IsHero = *u.IsHero
		}
		a.UpdatedAt = time.Now().UTC()
		if check != nil {
			return check(a)
		}
		return nil
	})
}

// Delete removes the article with the given id.
func (r *ArticleRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.Delete(ctx, id)
}
