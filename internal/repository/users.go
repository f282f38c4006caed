package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/babyBee3443/biogenius-sub001/internal/domain"
	"github.com/babyBee3443/biogenius-sub001/internal/store"
)

// UserRepository provides CRUD over the user collection.
type UserRepository struct {
	col *collection[domain.User]
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(kv store.KV) *UserRepository {
	return &UserRepository{
		col: newCollection(kv, store.KeyUsers, func(u *domain.User) string { return u.ID }),
	}
}

// List returns all users.
func (r *UserRepository) List(ctx context.Context) []domain.User {
	return r.col.List(ctx)
}

// GetByID returns the user with the given id, or nil.
func (r *UserRepository) GetByID(ctx context.Context, id string) *domain.User {
	return r.col.GetByID(ctx, id)
}

// GetByUsername returns the user with the given username (case-insensitive),
// or nil.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) *domain.User {
	v := strings.ToLower(strings.TrimSpace(username))
	return r.col.Find(ctx, func(u *domain.User) bool { return strings.ToLower(u.Username) == v })
}

// GetByEmail returns the user with the given email (case-insensitive), or nil.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) *domain.User {
	v := strings.ToLower(strings.TrimSpace(email))
	return r.col.Find(ctx, func(u *domain.User) bool { return strings.ToLower(u.Email) == v })
}

// Create assigns an id and timestamps, persists the user and returns a copy.
func (r *UserRepository) Create(ctx context.Context, u domain.User) (domain.User, error) {
	now := time.Now().UTC()
	u.ID = uuid.New().String()
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.JoinedAt.IsZero() {
		u.JoinedAt = now
	}
	return r.col.Insert(ctx, u)
}

// Update merges the non-nil fields of upd into the stored user, bumps
// UpdatedAt and returns the updated copy, or nil when the id is absent.
func (r *UserRepository) Update(ctx context.Context, id string, upd domain.UserUpdate) (*domain.User, error) {
	return r.col.Mutate(ctx, id, func(u *domain.User) error {
		if upd.Name != nil {
			u.Name = *upd.Name
		}
		if upd.Username != nil {
			u.Username = *upd.Username
		}
		if upd.Email != nil {
			u.Email = *upd.Email
		}
		if upd.Role != nil {
			u.Role = *upd.Role
		}
		if upd.Status != nil {
			u.Status = *upd.Status
		}
		if upd.Avatar != nil {
			u.Avatar = *upd.Avatar
		}
		if upd.LastLogin != nil {
			u.LastLogin = upd.LastLogin
		}
		if upd.Bio != nil {
			u.Bio = *upd.Bio
		}
		if upd.Social != nil {
			u.Social = *upd.Social
		}
		u.UpdatedAt = time.Now().UTC()
		return nil
	})
}

// Delete removes the user with the given id.
func (r *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.Delete(ctx, id)
}
