package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/babyBee3443/biogenius-sub001/internal/domain"
	"github.com/babyBee3443/biogenius-sub001/internal/store"
)

// RoleRepository provides CRUD over persisted roles. Persisted base-role
// records are advisory: the service layer always overrides their permission
// lists with the in-code definitions.
type RoleRepository struct {
	col *collection[domain.Role]
}

// NewRoleRepository creates a new RoleRepository.
func NewRoleRepository(kv store.KV) *RoleRepository {
	return &RoleRepository{
		col: newCollection(kv, store.KeyRoles, func(r *domain.Role) string { return r.ID }),
	}
}

// List returns all persisted roles as stored, without base-role
// reconciliation; see service.RoleService for the merged view.
func (r *RoleRepository) List(ctx context.Context) []domain.Role {
	return r.col.List(ctx)
}

// GetByID returns the persisted role with the given id, or nil.
func (r *RoleRepository) GetByID(ctx context.Context, id string) *domain.Role {
	return r.col.GetByID(ctx, id)
}

// Create assigns an id when absent and persists the role.
func (r *RoleRepository) Create(ctx context.Context, role domain.Role) (domain.Role, error) {
	if role.ID == "" {
		role.ID = uuid.New().String()
	}
	if role.Permissions == nil {
		role.Permissions = []string{}
	}
	return r.col.Insert(ctx, role)
}

// Update replaces the mutable fields of a persisted role and returns the
// updated copy, or nil when the id is absent.
func (r *RoleRepository) Update(ctx context.Context, id string, name, description string, permissions []string) (*domain.Role, error) {
	return r.col.Mutate(ctx, id, func(role *domain.Role) error {
		if name != "" {
			role.Name = name
		}
		role.Description = description
		if permissions != nil {
			role.Permissions = permissions
		}
		return nil
	})
}

// Delete removes the persisted role with the given id.
func (r *RoleRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.Delete(ctx, id)
}
