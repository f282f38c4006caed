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

func newRoleService(t *testing.T) (*service.RoleService, *repository.UserRepository) {
	t.Helper()
	kv := newTestKV(t)
	users := repository.NewUserRepository(kv)
	roles := repository.NewRoleRepository(kv)
	return service.NewRoleService(roles, users, validator.NewValidator()), users
}

func TestRoleService_BaseRolesAlwaysPresent(t *testing.T) {
	svc, _ := newRoleService(t)
	ctx := context.Background()

	roles := svc.Roles(ctx)
	require.Len(t, roles, 3)

	ids := []string{roles[0].ID, roles[1].ID, roles[2].ID}
	assert.Equal(t, []string{domain.RoleAdmin, domain.RoleEditor, domain.RoleUser}, ids)
}

func TestRoleService_BaseRolePermissionsPinned(t *testing.T) {
	svc, _ := newRoleService(t)
	ctx := context.Background()

	// An update that tries to rewrite admin permissions only lands the
	// description; the permission list stays the code definition.
	updated, err := svc.UpdateRole(ctx, domain.RoleAdmin, "Süper Admin", "Tüm yetkiler", []string{"only.this"})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "Tüm yetkiler", updated.Description)
	assert.NotEqual(t, []string{"only.this"}, updated.Permissions)
	assert.Contains(t, updated.Permissions, domain.PermRolesManage)

	// The override survives a fresh read and stays idempotent
	again := svc.GetRole(ctx, domain.RoleAdmin)
	require.NotNil(t, again)
	assert.Equal(t, "Tüm yetkiler", again.Description)
	assert.Contains(t, again.Permissions, domain.PermRolesManage)
}

func TestRoleService_CustomRoleLifecycle(t *testing.T) {
	svc, _ := newRoleService(t)
	ctx := context.Background()

	created, err := svc.CreateRole(ctx, domain.Role{
		Name:        "Moderatör",
		Description: "Yorumları yönetir",
		Permissions: []string{domain.PermArticlesView},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	updated, err := svc.UpdateRole(ctx, created.ID, "Baş Moderatör", "Daha fazla yetki", []string{domain.PermArticlesView, domain.PermNotesView})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Baş Moderatör", updated.Name)
	assert.Len(t, updated.Permissions, 2)

	ok, err := svc.DeleteRole(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Nil(t, svc.GetRole(ctx, created.ID))
}

func TestRoleService_CreateRejectsBaseCollision(t *testing.T) {
	svc, _ := newRoleService(t)
	ctx := context.Background()

	_, err := svc.CreateRole(ctx, domain.Role{ID: domain.RoleAdmin, Name: "Sahte Admin"})
	require.Error(t, err)

	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "base_role_reserved", verr.Fields["name"])

	_, err = svc.CreateRole(ctx, domain.Role{Name: "Editor"})
	require.Error(t, err)
}

func TestRoleService_BaseRolesUndeletable(t *testing.T) {
	svc, _ := newRoleService(t)
	ctx := context.Background()

	for _, id := range []string{domain.RoleAdmin, domain.RoleEditor, domain.RoleUser} {
		ok, err := svc.DeleteRole(ctx, id)
		require.NoError(t, err)
		assert.False(t, ok)
	}
	assert.Len(t, svc.Roles(ctx), 3)
}

func TestRoleService_UserCountRecomputed(t *testing.T) {
	svc, users := newRoleService(t)
	ctx := context.Background()

	mkUser := func(username, role string) domain.User {
		u, err := users.Create(ctx, domain.User{
			Name:     username,
			Username: username,
			Email:    username + "@example.com",
			Role:     role,
		})
		require.NoError(t, err)
		return u
	}

	mkUser("ali", "editor")
	mkUser("veli", "Editör") // display name, mixed case
	mkUser("ayse", "admin")
	deleted := mkUser("can", "editor")

	counts := func() map[string]int {
		out := map[string]int{}
		for _, r := range svc.Roles(ctx) {
			out[r.ID] = r.UserCount
		}
		return out
	}

	c := counts()
	assert.Equal(t, 3, c[domain.RoleEditor])
	assert.Equal(t, 1, c[domain.RoleAdmin])
	assert.Equal(t, 0, c[domain.RoleUser])

	// Counts track the live user collection, not a stored number
	ok, err := users.Delete(ctx, deleted.ID)
	require.NoError(t, err)
	require.True(t, ok)

	c = counts()
	assert.Equal(t, 2, c[domain.RoleEditor])
}
