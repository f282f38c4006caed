package service

import (
	"context"
	"strings"

	"github.com/babyBee3443/biogenius-sub001/internal/domain"
	"github.com/babyBee3443/biogenius-sub001/internal/repository"
)

// Resolution is the outcome of a permission resolution: the effective
// permission set plus a human-readable message when the set is empty for a
// reason the UI should explain. Resolution failures are values, not errors.
type Resolution struct {
	Permissions []string `json:"permissions"`
	Role        string   `json:"role,omitempty"`
	Message     string   `json:"message,omitempty"`
}

// PermissionService computes effective permission sets for signed-in
// identities. It consumes sessions produced by the external login flow and
// never manages login/logout itself.
type PermissionService struct {
	sessions *repository.SessionRepository
	roles    *RoleService
}

// NewPermissionService creates a new PermissionService.
func NewPermissionService(sessions *repository.SessionRepository, roles *RoleService) *PermissionService {
	return &PermissionService{sessions: sessions, roles: roles}
}

// Resolve computes the permission set for the user behind a session token.
// Every failure path yields an empty set plus a message; the UI must deny
// access independently rather than relying on the empty set alone.
func (s *PermissionService) Resolve(ctx context.Context, token, userID string) Resolution {
	empty := Resolution{Permissions: []string{}}

	if strings.TrimSpace(token) == "" {
		empty.Message = "Oturum bulunamadı"
		return empty
	}
	sess := s.sessions.GetByToken(ctx, token)
	if sess == nil {
		empty.Message = "Oturum bulunamadı"
		return empty
	}
	if sess.UserID != userID {
		empty.Message = "Oturum farklı bir kullanıcıya ait"
		return empty
	}
	if strings.TrimSpace(sess.Role) == "" {
		empty.Message = "Kullanıcıya atanmış bir rol yok"
		return empty
	}

	for _, role := range s.roles.Roles(ctx) {
		if domain.MatchesRole(sess.Role, role) {
			perms := role.Permissions
			if perms == nil {
				perms = []string{}
			}
			return Resolution{Permissions: perms, Role: role.ID}
		}
	}

	empty.Message = "Rol tanımı bulunamadı: " + sess.Role
	return empty
}

// HasPermission is a pure lookup in a resolved permission set.
func HasPermission(r Resolution, name string) bool {
	for _, p := range r.Permissions {
		if p == name {
			return true
		}
	}
	return false
}
