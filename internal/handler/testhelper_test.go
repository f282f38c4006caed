package handler_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/babyBee3443/biogenius-sub001/internal/domain"
	"github.com/babyBee3443/biogenius-sub001/internal/handler"
	"github.com/babyBee3443/biogenius-sub001/internal/middleware"
	"github.com/babyBee3443/biogenius-sub001/internal/repository"
	"github.com/babyBee3443/biogenius-sub001/internal/search"
	"github.com/babyBee3443/biogenius-sub001/internal/service"
	"github.com/babyBee3443/biogenius-sub001/internal/store"
	"github.com/babyBee3443/biogenius-sub001/internal/validator"
)

// testEnv wires a full API router over throwaway storage.
type testEnv struct {
	router   *gin.Engine
	sessions *repository.SessionRepository
	articles *service.ArticleService
	pages    *service.PageService
}

func newTestEnv(t *testing.T, assist *service.AssistService) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kv, err := store.OpenSQLite(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = kv.Close()
	})

	index, err := search.Open("")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = index.Close()
	})

	articleRepo := repository.NewArticleRepository(kv)
	noteRepo := repository.NewNoteRepository(kv)
	pageRepo := repository.NewPageRepository(kv)
	categoryRepo := repository.NewCategoryRepository(kv)
	roleRepo := repository.NewRoleRepository(kv)
	userRepo := repository.NewUserRepository(kv)
	sessionRepo := repository.NewSessionRepository(kv)

	v := validator.NewValidator()

	articleService := service.NewArticleService(articleRepo, v, index)
	noteService := service.NewNoteService(noteRepo, v, index)
	pageService := service.NewPageService(pageRepo, v)
	categoryService := service.NewCategoryService(categoryRepo, v)
	roleService := service.NewRoleService(roleRepo, userRepo, v)
	userService := service.NewUserService(userRepo, v)
	permissionService := service.NewPermissionService(sessionRepo, roleService)

	articleHandler := handler.NewArticleHandler(articleService)
	noteHandler := handler.NewNoteHandler(noteService)
	pageHandler := handler.NewPageHandler(pageService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	roleHandler := handler.NewRoleHandler(roleService)
	userHandler := handler.NewUserHandler(userService)
	permissionHandler := handler.NewPermissionHandler(permissionService)
	assistHandler := handler.NewAssistHandler(assist)
	searchHandler := handler.NewSearchHandler(index)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Session(sessionRepo))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/articles", articleHandler.List)
		v1.POST("/articles", articleHandler.Create)
		v1.GET("/articles/slug/:slug", articleHandler.GetBySlug)
		v1.GET("/articles/:id", articleHandler.Get)
		v1.GET("/articles/:id/html", articleHandler.RenderHTML)
		v1.PUT("/articles/:id", articleHandler.Update)
		v1.DELETE("/articles/:id", articleHandler.Delete)

		v1.GET("/notes", noteHandler.List)
		v1.POST("/notes", noteHandler.Create)
		v1.GET("/notes/:id", noteHandler.Get)
		v1.DELETE("/notes/:id", noteHandler.Delete)

		v1.GET("/pages", pageHandler.List)
		v1.POST("/pages", pageHandler.Create)
		v1.GET("/pages/:id", pageHandler.Get)
		v1.GET("/pages/:id/html", pageHandler.RenderHTML)
		v1.PUT("/pages/:id", pageHandler.Update)
		v1.DELETE("/pages/:id", pageHandler.Delete)

		v1.GET("/categories", categoryHandler.List)
		v1.POST("/categories", categoryHandler.Create)
		v1.DELETE("/categories/:id", categoryHandler.Delete)

		v1.GET("/roles", roleHandler.List)
		v1.POST("/roles", roleHandler.Create)
		v1.DELETE("/roles/:id", roleHandler.Delete)

		v1.GET("/users", userHandler.List)
		v1.POST("/users", userHandler.Create)

		v1.GET("/permissions/:userID", permissionHandler.Resolve)

		v1.POST("/assist/chat", assistHandler.Chat)
		v1.POST("/assist/note-suggestion", assistHandler.SuggestNote)
		v1.GET("/assist/daily-fact", assistHandler.DailyFact)

		v1.GET("/search", searchHandler.Search)
	}

	return &testEnv{
		router:   router,
		sessions: sessionRepo,
		articles: articleService,
		pages:    pageService,
	}
}

// loginAs seeds a session and returns its token.
func (e *testEnv) loginAs(t *testing.T, userID, role string) string {
	t.Helper()
	token := "tok-" + userID
	require.NoError(t, e.sessions.Put(context.Background(), domain.Session{
		Token:  token,
		UserID: userID,
		Role:   role,
	}))
	return token
}
