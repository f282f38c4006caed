package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babyBee3443/biogenius-sub001/internal/domain"
	"github.com/babyBee3443/biogenius-sub001/internal/middleware"
	"github.com/babyBee3443/biogenius-sub001/internal/service"
)

func resolvePermissions(t *testing.T, env *testEnv, userID, token string) service.Resolution {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/permissions/"+userID, nil)
	if token != "" {
		req.Header.Set(middleware.SessionTokenHeader, token)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, "resolution failures are payloads, never HTTP errors")

	var out service.Resolution
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestPermissionHandler_Resolve(t *testing.T) {
	env := newTestEnv(t, nil)
	token := env.loginAs(t, "u-editor", "editor")

	t.Run("matching session yields role permissions", func(t *testing.T) {
		res := resolvePermissions(t, env, "u-editor", token)
		assert.Equal(t, "editor", res.Role)
		assert.Empty(t, res.Message)
		assert.Contains(t, res.Permissions, domain.PermArticlesEdit)
		assert.NotContains(t, res.Permissions, domain.PermRolesManage)
	})

	t.Run("missing token", func(t *testing.T) {
		res := resolvePermissions(t, env, "u-editor", "")
		assert.Empty(t, res.Permissions)
		assert.Equal(t, "Oturum bulunamadı", res.Message)
	})

	t.Run("token for a different user", func(t *testing.T) {
		res := resolvePermissions(t, env, "u-baskasi", token)
		assert.Empty(t, res.Permissions)
		assert.Equal(t, "Oturum farklı bir kullanıcıya ait", res.Message)
	})

	t.Run("session without a role", func(t *testing.T) {
		roleless := env.loginAs(t, "u-rolsuz", "")
		res := resolvePermissions(t, env, "u-rolsuz", roleless)
		assert.Empty(t, res.Permissions)
		assert.Equal(t, "Kullanıcıya atanmış bir rol yok", res.Message)
	})
}
