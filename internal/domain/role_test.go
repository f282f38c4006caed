package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseRoles(t *testing.T) {
	t.Run("contains the three base roles", func(t *testing.T) {
		roles := BaseRoles()
		require.Len(t, roles, 3)
		assert.Equal(t, RoleAdmin, roles[0].ID)
		assert.Equal(t, RoleEditor, roles[1].ID)
		assert.Equal(t, RoleUser, roles[2].ID)
	})

	t.Run("each call returns independent copies", func(t *testing.T) {
		first := BaseRoles()
		first[0].Permissions[0] = "tampered"
		first[0].Description = "tampered"

		second := BaseRoles()
		assert.Equal(t, PermDashboardView, second[0].Permissions[0])
		assert.NotEqual(t, "tampered", second[0].Description)
	})

	t.Run("editor cannot delete or manage roles", func(t *testing.T) {
		var editor Role
		for _, r := range BaseRoles() {
			if r.ID == RoleEditor {
				editor = r
			}
		}
		assert.NotContains(t, editor.Permissions, PermArticlesDelete)
		assert.NotContains(t, editor.Permissions, PermRolesManage)
		assert.Contains(t, editor.Permissions, PermArticlesEdit)
	})
}

func TestIsBaseRole(t *testing.T) {
	assert.True(t, IsBaseRole(RoleAdmin))
	assert.True(t, IsBaseRole(RoleEditor))
	assert.True(t, IsBaseRole(RoleUser))
	assert.False(t, IsBaseRole("moderator"))
	assert.False(t, IsBaseRole(""))
}

func TestMatchesRole(t *testing.T) {
	role := Role{ID: "editor", Name: "Editör"}

	tests := []struct {
		name     string
		userRole string
		want     bool
	}{
		{"exact id", "editor", true},
		{"id with different case", "Editor", true},
		{"id with whitespace", "  editor ", true},
		{"display name", "Editör", true},
		{"display name lowercased", "editör", true},
		{"unrelated role", "admin", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesRole(tt.userRole, role))
		})
	}
}
