package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/babyBee3443/biogenius-sub001/internal/domain"
	"github.com/babyBee3443/biogenius-sub001/internal/store"
)

// PageRepository provides CRUD over the page collection. Pages are the only
// collection with non-empty seed defaults, and some ids can never be deleted.
type PageRepository struct {
	col *collection[domain.Page]
}

// NewPageRepository creates a new PageRepository.
func NewPageRepository(kv store.KV) *PageRepository {
	r := &PageRepository{
		col: newCollection(kv, store.KeyPages, func(p *domain.Page) string { return p.ID }),
	}
	r.col.seed = seedPages
	return r
}

// seedPages is the default page set served on first read with empty storage.
func seedPages() []domain.Page {
	now := time.Now().UTC()
	return []domain.Page{
		{
			ID:    "home",
			Title: "Ana Sayfa",
			Slug:  "",
			Blocks: []domain.Block{
				{Type: domain.BlockSection, SectionType: domain.SectionFeaturedList, Settings: domain.SectionDefaults(domain.SectionFeaturedList)},
				{Type: domain.BlockSection, SectionType: domain.SectionRecentList, Settings: domain.SectionDefaults(domain.SectionRecentList)},
			},
			SEOTitle:       "BiyoGenius — Teknoloji ve Biyoloji Dergisi",
			SEODescription: "Teknoloji ve biyoloji üzerine makaleler, ders notları ve daha fazlası.",
			Hero: &domain.HeroSettings{
				Enabled:          true,
				ArticleSource:    "hero",
				RotationInterval: 7,
				MaxArticles:      5,
			},
			Status:    domain.StatusPublished,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:    "hakkimizda",
			Title: "Hakkımızda",
			Slug:  "hakkimizda",
			Blocks: []domain.Block{
				{Type: domain.BlockHeading, Level: 1, Content: "Hakkımızda"},
				{Type: domain.BlockText, Content: "BiyoGenius, teknoloji ve biyolojiyi bir araya getiren bağımsız bir dijital dergidir."},
			},
			Status:    domain.StatusPublished,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:    "iletisim",
			Title: "İletişim",
			Slug:  "iletisim",
			Blocks: []domain.Block{
				{Type: domain.BlockHeading, Level: 1, Content: "İletişim"},
				{Type: domain.BlockSection, SectionType: domain.SectionContactForm, Settings: domain.SectionDefaults(domain.SectionContactForm)},
			},
			Status:    domain.StatusPublished,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:    "kullanim-kilavuzu",
			Title: "Kullanım Kılavuzu",
			Slug:  "kullanim-kilavuzu",
			Blocks: []domain.Block{
				{Type: domain.BlockHeading, Level: 1, Content: "Kullanım Kılavuzu"},
				{Type: domain.BlockText, Content: "Site özelliklerinin nasıl kullanılacağına dair rehber."},
			},
			Status:    domain.StatusPublished,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// List returns all pages, seeding defaults on first read with empty storage.
func (r *PageRepository) List(ctx context.Context) []domain.Page {
	return r.col.List(ctx)
}

// GetByID returns the page with the given id or slug, or nil.
func (r *PageRepository) GetByID(ctx context.Context, id string) *domain.Page {
	return r.col.Find(ctx, func(p *domain.Page) bool { return p.ID == id || (p.Slug != "" && p.Slug == id) })
}

// Create assigns an id and timestamps, persists the page and returns a copy.
func (r *PageRepository) Create(ctx context.Context, p domain.Page) (domain.Page, error) {
	now := time.Now().UTC()
	p.ID = uuid.New().String()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = domain.StatusDraft
	}
	if p.Blocks == nil {
		p.Blocks = []domain.Block{}
	}
	return r.col.Insert(ctx, p)
}

// Update merges the non-nil fields of u into the stored page, bumps
// UpdatedAt and returns the updated copy, or nil when the id is absent.
// check runs on the merged record before anything is persisted; its error
// aborts the update with no write.
func (r *PageRepository) Update(ctx context.Context, id string, u domain.PageUpdate, check func(*domain.Page) error) (*domain.Page, error) {
	return r.col.Mutate(ctx, id, func(p *domain.Page) error {
		if u.Title != nil {
			p.Title = *u.Title
		}
		if u.Slug != nil {
			p.Slug = *u.Slug
		}
		if u.Blocks != nil {
			p.Blocks = *u.Blocks
		}
		if u.SEOTitle != nil {
			p.SEOTitle = *u.SEOTitle
		}
		if u.SEODescription != nil {
			p.SEODescription = *u.SEODescription
		}
		if u.Hero != nil {
			p.Hero = u.Hero
		}
		if u.Status != nil {
			p.Status = *u.Status
		}
		p.UpdatedAt = time.Now().UTC()
		if check != nil {
			return check(p)
		}
		return nil
	})
}

// Delete removes the page with the given id. Protected page ids are
// hard-blocked regardless of caller; the collection is left unchanged.
func (r *PageRepository) Delete(ctx context.Context, id string) (bool, error) {
	if domain.IsProtectedPage(id) {
		return false, nil
	}
	return r.col.Delete(ctx, id)
}
