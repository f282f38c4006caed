package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/babyBee3443/biogenius-sub001/internal/middleware"
)

func TestPageHandler_ProtectedDelete(t *testing.T) {
	env := newTestEnv(t, nil)
	token := env.loginAs(t, "u-admin", "admin")

	for _, id := range []string{"home", "hakkimizda", "iletisim", "kullanim-kilavuzu"} {
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/pages/"+id, nil)
		req.Header.Set(middleware.SessionTokenHeader, token)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code, "page %s must answer 403", id)
		assert.Contains(t, w.Body.String(), "page_protected")
	}

	// The pages are still there
	req := httptest.NewRequest(http.MethodGet, "/api/v1/pages/home", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPageHandler_DeleteUnknownPage(t *testing.T) {
	env := newTestEnv(t, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/pages/yok-boyle-bir-sayfa", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPageHandler_RenderHTML(t *testing.T) {
	env := newTestEnv(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pages/hakkimizda/html", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/html"))
	assert.Contains(t, w.Body.String(), "<h1>Hakkımızda</h1>")
}

func TestPageHandler_CreateValidation(t *testing.T) {
	env := newTestEnv(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pages", strings.NewReader(`{"status":"draft"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation_failed")
	assert.Contains(t, w.Body.String(), "title")
}
