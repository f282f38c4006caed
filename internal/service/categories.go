package service

import (
	"context"

	"github.com/babyBee3443/biogenius-sub001/internal/domain"
	"github.com/babyBee3443/biogenius-sub001/internal/repository"
	"github.com/babyBee3443/biogenius-sub001/internal/validator"
)

// CategoryService wraps category CRUD. Content references categories by
// name; deleting a category leaves referencing content untouched.
type CategoryService struct {
	repo      *repository.CategoryRepository
	validator *validator.Validator
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo *repository.CategoryRepository, v *validator.Validator) *CategoryService {
	return &CategoryService{repo: repo, validator: v}
}

// List returns all categories.
func (s *CategoryService) List(ctx context.Context) []domain.Category {
	return s.repo.List(ctx)
}

// Create validates and persists a new category; the id derives from the name.
// A category whose derived id already exists is rejected.
func (s *CategoryService) Create(ctx context.Context, c domain.Category) (domain.Category, error) {
	if err := s.validator.ValidateCategory(&c); err != nil {
		return domain.Category{}, newValidationError(err)
	}
	id := domain.CategoryIDFromName(c.Name)
	if existing := s.repo.GetByID(ctx, id); existing != nil {
		return domain.Category{}, fieldError("name", "category_already_exists")
	}
	return s.repo.Create(ctx, c)
}

// Delete removes a category without cascading into content.
func (s *CategoryService) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}
