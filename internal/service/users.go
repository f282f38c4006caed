package service

import (
	"context"

	"github.com/babyBee3443/biogenius-sub001/internal/domain"
	"github.com/babyBee3443/biogenius-sub001/internal/repository"
	"github.com/babyBee3443/biogenius-sub001/internal/validator"
)

// UserService wraps user CRUD with validation and duplicate checks.
type UserService struct {
	repo      *repository.UserRepository
	validator *validator.Validator
}

// NewUserService creates a new UserService.
func NewUserService(repo *repository.UserRepository, v *validator.Validator) *UserService {
	return &UserService{repo: repo, validator: v}
}

// List returns all users.
func (s *UserService) List(ctx context.Context) []domain.User {
	return s.repo.List(ctx)
}

// Get returns the user with the given id, or nil.
func (s *UserService) Get(ctx context.Context, id string) *domain.User {
	return s.repo.GetByID(ctx, id)
}

// Create validates and persists a new user. Duplicate usernames and emails
// are rejected before any write happens.
func (s *UserService) Create(ctx context.Context, u domain.User) (domain.User, error) {
	if err := s.validator.ValidateUser(&u); err != nil {
		return domain.User{}, newValidationError(err)
	}
	if existing := s.repo.GetByUsername(ctx, u.Username); existing != nil {
		return domain.User{}, fieldError("username", "username_already_taken")
	}
	if existing := s.repo.GetByEmail(ctx, u.Email); existing != nil {
		return domain.User{}, fieldError("email", "email_already_registered")
	}
	return s.repo.Create(ctx, u)
}

// Update merges a partial update into an existing user, re-checking
// username/email uniqueness when those fields change. Returns nil when the
// id is absent.
func (s *UserService) Update(ctx context.Context, id string, upd domain.UserUpdate) (*domain.User, error) {
	if upd.Username != nil {
		if existing := s.repo.GetByUsername(ctx, *upd.Username); existing != nil && existing.ID != id {
			return nil, fieldError("username", "username_already_taken")
		}
	}
	if upd.Email != nil {
		if existing := s.repo.GetByEmail(ctx, *upd.Email); existing != nil && existing.ID != id {
			return nil, fieldError("email", "email_already_registered")
		}
	}
	return s.repo.Update(ctx, id, upd)
}

// Delete removes a user.
func (s *UserService) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}
