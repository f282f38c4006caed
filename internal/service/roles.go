package service

import (
	"context"
	"strings"

	"github.com/babyBee3443/biogenius-sub001/internal/domain"
	"github.com/babyBee3443/biogenius-sub001/internal/repository"
	"github.com/babyBee3443/biogenius-sub001/internal/validator"
)

// RoleService merges the in-code base roles with persisted custom roles and
// derives per-role user counts from the live user collection.
type RoleService struct {
	roles     *repository.RoleRepository
	users     *repository.UserRepository
	validator *validator.Validator
}

// NewRoleService creates a new RoleService.
func NewRoleService(roles *repository.RoleRepository, users *repository.UserRepository, v *validator.Validator) *RoleService {
	return &RoleService{roles: roles, users: users, validator: v}
}

// Roles returns the effective role set. For the three base roles the
// permission list always comes from the code definition; a persisted copy
// may only override the description. Custom roles use their persisted
// permissions verbatim. UserCount is recomputed from the user collection on
// every call and never trusted from storage.
func (s *RoleService) Roles(ctx context.Context) []domain.Role {
	persisted := s.roles.List(ctx)
	persistedByID := make(map[string]domain.Role, len(persisted))
	for _, r := range persisted {
		persistedByID[r.ID] = r
	}

	out := make([]domain.Role, 0, len(persisted)+3)
	for _, base := range domain.BaseRoles() {
		if stored, ok := persistedByID[base.ID]; ok && strings.TrimSpace(stored.Description) != "" {
			base.Description = stored.Description
		}
		out = append(out, base)
	}
	for _, r := range persisted {
		if domain.IsBaseRole(r.ID) {
			continue
		}
		out = append(out, r)
	}

	users := s.users.List(ctx)
	for i := range out {
		out[i].UserCount = countUsersWithRole(users, out[i])
	}
	return out
}

// GetRole returns the effective role with the given id, or nil.
func (s *RoleService) GetRole(ctx context.Context, id string) *domain.Role {
	for _, r := range s.Roles(ctx) {
		if r.ID == id {
			role := r
			return &role
		}
	}
	return nil
}

// CreateRole persists a custom role. Ids colliding with a base role are
// rejected; base roles exist only in code.
func (s *RoleService) CreateRole(ctx context.Context, r domain.Role) (domain.Role, error) {
	if err := s.validator.ValidateRole(&r); err != nil {
		return domain.Role{}, newValidationError(err)
	}
	for _, base := range domain.BaseRoles() {
		if domain.MatchesRole(r.ID, base) || domain.MatchesRole(r.Name, base) {
			return domain.Role{}, fieldError("name", "base_role_reserved")
		}
	}
	return s.roles.Create(ctx, r)
}

// UpdateRole updates a role. For base roles only the description is applied;
// the permission list stays pinned to the code definition no matter what the
// caller sends. Returns nil when the id is absent.
func (s *RoleService) UpdateRole(ctx context.Context, id, name, description string, permissions []string) (*domain.Role, error) {
	if domain.IsBaseRole(id) {
		// Persist just the description override. The stored record may not
		// exist yet for a base role; create it on first override.
		if existing := s.roles.GetByID(ctx, id); existing == nil {
			var base domain.Role
			for _, b := range domain.BaseRoles() {
				if b.ID == id {
					base = b
					break
				}
			}
			base.Description = description
			if _, err := s.roles.Create(ctx, base); err != nil {
				return nil, err
			}
		} else {
			if _, err := s.roles.Update(ctx, id, "", description, nil); err != nil {
				return nil, err
			}
		}
		return s.GetRole(ctx, id), nil
	}

	updated, err := s.roles.Update(ctx, id, name, description, permissions)
	if err != nil || updated == nil {
		return updated, err
	}
	return s.GetRole(ctx, id), nil
}

// DeleteRole removes a custom role. Base roles cannot be deleted.
func (s *RoleService) DeleteRole(ctx context.Context, id string) (bool, error) {
	if domain.IsBaseRole(id) {
		return false, nil
	}
	return s.roles.Delete(ctx, id)
}

// IsBaseRole reports whether a role id belongs to a base role.
func (s *RoleService) IsBaseRole(id string) bool {
	return domain.IsBaseRole(id)
}

func countUsersWithRole(users []domain.User, r domain.Role) int {
	count := 0
	for _, u := range users {
		if domain.MatchesRole(u.Role, r) {
			count++
		}
	}
	return count
}
