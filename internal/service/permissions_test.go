package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babyBee3443/biogenius-sub001/internal/domain"
	"github.com/babyBee3443/biogenius-sub001/internal/repository"
	"github.com/babyBee3443/biogenius-sub001/internal/service"
	"github.com/babyBee3443/biogenius-sub001/internal/validator"
)

func newPermissionService(t *testing.T) (*service.PermissionService, *repository.SessionRepository) {
	t.Helper()
	kv := newTestKV(t)
	sessions := repository.NewSessionRepository(kv)
	roles := service.NewRoleService(
		repository.NewRoleRepository(kv),
		repository.NewUserRepository(kv),
		validator.NewValidator(),
	)
	return service.NewPermissionService(sessions, roles), sessions
}

func TestPermissionService_Resolve(t *testing.T) {
	svc, sessions := newPermissionService(t)
	ctx := context.Background()

	require.NoError(t, sessions.Put(ctx, domain.Session{
		Token:  "tok-editor",
		UserID: "u-1",
		Name:   "Ayşe",
		Role:   "Editör",
	}))
	require.NoError(t, sessions.Put(ctx, domain.Session{
		Token:  "tok-roleless",
		UserID: "u-2",
	}))
	require.NoError(t, sessions.Put(ctx, domain.Session{
		Token:  "tok-ghost-role",
		UserID: "u-3",
		Role:   "hayalet",
	}))

	t.Run("resolves base role via display name", func(t *testing.T) {
		r := svc.Resolve(ctx, "tok-editor", "u-1")
		assert.Empty(t, r.Message)
		assert.Equal(t, domain.RoleEditor, r.Role)
		assert.True(t, service.HasPermission(r, domain.PermArticlesEdit))
		assert.False(t, service.HasPermission(r, domain.PermRolesManage))
	})

	t.Run("missing token", func(t *testing.T) {
		r := svc.Resolve(ctx, "", "u-1")
		assert.Empty(t, r.Permissions)
		assert.Equal(t, "Oturum bulunamadı", r.Message)
	})

	t.Run("unknown token", func(t *testing.T) {
		r := svc.Resolve(ctx, "tok-nope", "u-1")
		assert.Empty(t, r.Permissions)
		assert.Equal(t, "Oturum bulunamadı", r.Message)
	})

	t.Run("token for a different user", func(t *testing.T) {
		r := svc.Resolve(ctx, "tok-editor", "u-9")
		assert.Empty(t, r.Permissions)
		assert.Equal(t, "Oturum farklı bir kullanıcıya ait", r.Message)
	})

	t.Run("session without a role", func(t *testing.T) {
		r := svc.Resolve(ctx, "tok-roleless", "u-2")
		assert.Empty(t, r.Permissions)
		assert.Equal(t, "Kullanıcıya atanmış bir rol yok", r.Message)
	})

	t.Run("role definition missing", func(t *testing.T) {
		r := svc.Resolve(ctx, "tok-ghost-role", "u-3")
		assert.Empty(t, r.Permissions)
		assert.Equal(t, "Rol tanımı bulunamadı: hayalet", r.Message)
	})

	t.Run("permission list is never nil", func(t *testing.T) {
		r := svc.Resolve(ctx, "", "u-1")
		assert.NotNil(t, r.Permissions)
	})
}
