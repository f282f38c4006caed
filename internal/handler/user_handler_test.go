package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_CreateNeverEchoesPassword(t *testing.T) {
	env := newTestEnv(t, nil)

	body := `{"name":"Ayşe Yılmaz","username":"ayse","email":"ayse@example.com","role":"editor","status":"student","password":"gizli-sifre-123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "gizli-sifre-123")
	assert.NotContains(t, w.Body.String(), "password")

	// The list endpoint must not leak it either
	req = httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ayse")
	assert.NotContains(t, w.Body.String(), "gizli-sifre-123")
}

func TestUserHandler_CreateValidation(t *testing.T) {
	env := newTestEnv(t, nil)

	t.Run("short password", func(t *testing.T) {
		body := `{"name":"Veli Kaya","username":"veli","email":"veli@example.com","role":"user","status":"student","password":"kisa"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "password_too_short")
	})

	t.Run("duplicate username", func(t *testing.T) {
		body := `{"name":"Kemal Demir","username":"kemal","email":"kemal@example.com","role":"user","status":"student","password":"gizli-sifre-123"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)

		dup := `{"name":"Kemal Demir","username":"KEMAL","email":"kemal2@example.com","role":"user","status":"student","password":"gizli-sifre-123"}`
		req = httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(dup))
		req.Header.Set("Content-Type", "application/json")
		w = httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "username_already_taken")
	})
}
