package repository

import (
	"context"

	"github.com/babyBee3443/biogenius-sub001/internal/domain"
	"github.com/babyBee3443/biogenius-sub001/internal/store"
)

// CategoryRepository provides CRUD over the category collection. Category
// ids derive from names; content references categories by name with no
// cascade on delete.
type CategoryRepository struct {
	col *collection[domain.Category]
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(kv store.KV) *CategoryRepository {
	return &CategoryRepository{
		col: newCollection(kv, store.KeyCategories, func(c *domain.Category) string { return c.ID }),
	}
}

// List returns all categories.
func (r *CategoryRepository) List(ctx context.Context) []domain.Category {
	return r.col.List(ctx)
}

// GetByID returns the category with the given id, or nil.
func (r *CategoryRepository) GetByID(ctx context.Context, id string) *domain.Category {
	return r.col.GetByID(ctx, id)
}

// Create derives the id from the name and persists the category.
func (r *CategoryRepository) Create(ctx context.Context, c domain.Category) (domain.Category, error) {
	c.ID = domain.CategoryIDFromName(c.Name)
	return r.col.Insert(ctx, c)
}

// Delete removes the category with the given id. Content keeps its category
// string; orphaned references are deliberate.
func (r *CategoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.Delete(ctx, id)
}
