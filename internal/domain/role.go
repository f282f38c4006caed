package domain

import "strings"

// Role groups a set of named permissions. UserCount is derived from the live
// user collection on every read and is never trusted from storage.
type Role struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Permissions []string `json:"permissions"`
	UserCount   int      `json:"user_count"`
}

// Base role ids. Their permission lists are fixed in code; persisted copies
// may only override the description.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleUser   = "user"
)

// Permission names.
const (
	PermDashboardView    = "dashboard.view"
	PermArticlesView     = "articles.view"
	PermArticlesCreate   = "articles.create"
	PermArticlesEdit     = "articles.edit"
	PermArticlesDelete   = "articles.delete"
	PermNotesView        = "notes.view"
	PermNotesCreate      = "notes.create"
	PermNotesEdit        = "notes.edit"
	PermNotesDelete      = "notes.delete"
	PermPagesManage      = "pages.manage"
	PermCategoriesManage = "categories.manage"
	PermRolesManage      = "roles.manage"
	PermUsersManage      = "users.manage"
	PermAssistUse        = "assist.use"
)

// BaseRoles returns the canonical definitions of the three built-in roles.
// Callers get fresh copies; mutating the result never leaks into later calls.
func BaseRoles() []Role {
	return []Role{
		{
			ID:          RoleAdmin,
			Name:        "Admin",
			Description: "Tüm içerik ve yönetim yetkileri",
			Permissions: []string{
				PermDashboardView,
				PermArticlesView, PermArticlesCreate, PermArticlesEdit, PermArticlesDelete,
				PermNotesView, PermNotesCreate, PermNotesEdit, PermNotesDelete,
				PermPagesManage, PermCategoriesManage, PermRolesManage, PermUsersManage,
				PermAssistUse,
			},
		},
		{
			ID:          RoleEditor,
			Name:        "Editör",
			Description: "İçerik oluşturma ve düzenleme yetkileri",
			Permissions: []string{
				PermDashboardView,
				PermArticlesView, PermArticlesCreate, PermArticlesEdit,
				PermNotesView, PermNotesCreate, PermNotesEdit,
				PermAssistUse,
			},
		},
		{
			ID:          RoleUser,
			Name:        "Kullanıcı",
			Description: "Yayınlanmış içeriği görüntüleme",
			Permissions: []string{PermArticlesView, PermNotesView},
		},
	}
}

// IsBaseRole reports whether a role id belongs to one of the three base roles.
func IsBaseRole(id string) bool {
	switch id {
	case RoleAdmin, RoleEditor, RoleUser:
		return true
	}
	return false
}

// MatchesRole reports whether a user's free-text role string refers to the
// given role. The match is case-insensitive and trimmed, against both the
// role id and the role name.
func MatchesRole(userRole string, r Role) bool {
	v := strings.ToLower(strings.TrimSpace(userRole))
	if v == "" {
		return false
	}
	return v == strings.ToLower(strings.TrimSpace(r.ID)) || v == strings.ToLower(strings.TrimSpace(r.Name))
}
