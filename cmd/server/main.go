package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/babyBee3443/biogenius-sub001/internal/config"
	"github.com/babyBee3443/biogenius-sub001/internal/domain"
	"github.com/babyBee3443/biogenius-sub001/internal/genai"
	"github.com/babyBee3443/biogenius-sub001/internal/handler"
	"github.com/babyBee3443/biogenius-sub001/internal/logger"
	"github.com/babyBee3443/biogenius-sub001/internal/middleware"
	"github.com/babyBee3443/biogenius-sub001/internal/repository"
	"github.com/babyBee3443/biogenius-sub001/internal/search"
	"github.com/babyBee3443/biogenius-sub001/internal/service"
	"github.com/babyBee3443/biogenius-sub001/internal/store"
	"github.com/babyBee3443/biogenius-sub001/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Configure(cfg.LogLevel)

	// Open the key-value store
	kv, err := openStore(cfg)
	if err != nil {
		logger.Fatal("Failed to open store",
			slog.String("driver", cfg.StoreDriver),
			slog.String("error", err.Error()))
	}
	defer kv.Close()

	// Open the search index
	index, err := search.Open(cfg.SearchIndexPath)
	if err != nil {
		logger.Fatal("Failed to open search index",
			slog.String("error", err.Error()))
	}
	defer index.Close()

	// Initialize repositories
	articleRepo := repository.NewArticleRepository(kv)
	noteRepo := repository.NewNoteRepository(kv)
	pageRepo := repository.NewPageRepository(kv)
	categoryRepo := repository.NewCategoryRepository(kv)
	roleRepo := repository.NewRoleRepository(kv)
	userRepo := repository.NewUserRepository(kv)
	sessionRepo := repository.NewSessionRepository(kv)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	articleService := service.NewArticleService(articleRepo, v, index)
	noteService := service.NewNoteService(noteRepo, v, index)
	pageService := service.NewPageService(pageRepo, v)
	categoryService := service.NewCategoryService(categoryRepo, v)
	roleService := service.NewRoleService(roleRepo, userRepo, v)
	userService := service.NewUserService(userRepo, v)
	permissionService := service.NewPermissionService(sessionRepo, roleService)

	// Index published content so a fresh (or rebuilt) index answers queries
	// before the first mutation.
	reindexPublished(context.Background(), index, articleRepo, noteRepo)

	// Assist flows are optional: without an API key the endpoints answer 503.
	var assistService *service.AssistService
	if cfg.GenAIAPIKey != "" {
		client, err := genai.NewClient(genai.Config{
			BaseURL:    cfg.GenAIBaseURL,
			APIKey:     cfg.GenAIAPIKey,
			Model:      cfg.GenAIModel,
			Timeout:    cfg.GenAITimeout,
			MaxRetries: cfg.GenAIMaxRetries,
		})
		if err != nil {
			logger.Fatal("Failed to create model client",
				slog.String("error", err.Error()))
		}
		assistService = service.NewAssistService(client)
	} else {
		logger.Warn("GENAI_API_KEY not set, assist endpoints disabled")
	}

	// Initialize handlers
	articleHandler := handler.NewArticleHandler(articleService)
	noteHandler := handler.NewNoteHandler(noteService)
	pageHandler := handler.NewPageHandler(pageService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	roleHandler := handler.NewRoleHandler(roleService)
	userHandler := handler.NewUserHandler(userService)
	permissionHandler := handler.NewPermissionHandler(permissionService)
	assistHandler := handler.NewAssistHandler(assistService)
	searchHandler := handler.NewSearchHandler(index)
	healthHandler := handler.NewHealthHandler(kv)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.Session(sessionRepo))
	router.Use(gin.Logger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader, middleware.SessionTokenHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		articles := v1.Group("/articles")
		{
			articles.GET("", articleHandler.List)
			articles.POST("", articleHandler.Create)
			articles.GET("/slug/:slug", articleHandler.GetBySlug)
			articles.GET("/:id", articleHandler.Get)
			articles.GET("/:id/html", articleHandler.RenderHTML)
			articles.PUT("/:id", articleHandler.Update)
			articles.DELETE("/:id", articleHandler.Delete)
		}

		notes := v1.Group("/notes")
		{
			notes.GET("", noteHandler.List)
			notes.POST("", noteHandler.Create)
			notes.GET("/:id", noteHandler.Get)
			notes.GET("/:id/html", noteHandler.RenderHTML)
			notes.PUT("/:id", noteHandler.Update)
			notes.DELETE("/:id", noteHandler.Delete)
		}

		pages := v1.Group("/pages")
		{
			pages.GET("", pageHandler.List)
			pages.POST("", pageHandler.Create)
			pages.GET("/:id", pageHandler.Get)
			pages.GET("/:id/html", pageHandler.RenderHTML)
			pages.PUT("/:id", pageHandler.Update)
			pages.DELETE("/:id", pageHandler.Delete)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.List)
			categories.POST("", categoryHandler.Create)
			categories.DELETE("/:id", categoryHandler.Delete)
		}

		roles := v1.Group("/roles")
		{
			roles.GET("", roleHandler.List)
			roles.POST("", roleHandler.Create)
			roles.GET("/:id", roleHandler.Get)
			roles.PUT("/:id", roleHandler.Update)
			roles.DELETE("/:id", roleHandler.Delete)
		}

		users := v1.Group("/users")
		{
			users.GET("", userHandler.List)
			users.POST("", userHandler.Create)
			users.GET("/:id", userHandler.Get)
			users.PUT("/:id", userHandler.Update)
			users.DELETE("/:id", userHandler.Delete)
		}

		v1.GET("/permissions/:userID", permissionHandler.Resolve)

		assist := v1.Group("/assist")
		{
			assist.POST("/chat", assistHandler.Chat)
			assist.POST("/note-suggestion", assistHandler.SuggestNote)
			assist.GET("/daily-fact", assistHandler.DailyFact)
		}

		v1.GET("/search", searchHandler.Search)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("store_driver", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}

// openStore opens the configured KV backend. The postgres path runs pending
// migrations before the pool is handed out.
func openStore(cfg *config.Config) (store.KV, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		if err := runMigrations(cfg); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		return store.OpenPostgres(context.Background(), store.PostgresConfig{
			Host:              cfg.DBHost,
			Port:              cfg.DBPort,
			User:              cfg.DBUser,
			Password:          cfg.DBPassword,
			Database:          cfg.DBName,
			SSLMode:           cfg.DBSSLMode,
			MaxConns:          cfg.DBMaxConns,
			MinConns:          cfg.DBMinConns,
			MaxConnLifetime:   cfg.DBMaxConnLifetime,
			MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
			HealthCheckPeriod: cfg.DBHealthCheckPeriod,
		})
	default:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create data dir: %w", err)
			}
		}
		return store.OpenSQLite(cfg.SQLitePath)
	}
}

func runMigrations(cfg *config.Config) error {
	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(cfg.DBUser), url.QueryEscape(cfg.DBPassword),
		cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBSSLMode)

	m, err := migrate.New("file://migrations", dbURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

// reindexPublished seeds the search index from the store at startup.
func reindexPublished(ctx context.Context, index *search.Index, articles *repository.ArticleRepository, notes *repository.NoteRepository) {
	indexed := 0
	for _, a := range articles.List(ctx) {
		if a.Status != domain.StatusPublished {
			continue
		}
		if err := index.IndexArticle(&a); err != nil {
			logger.Warn("Failed to index article",
				slog.String("article_id", a.ID),
				slog.String("error", err.Error()))
			continue
		}
		indexed++
	}
	for _, n := range notes.List(ctx) {
		if n.Status != domain.StatusPublished {
			continue
		}
		if err := index.IndexNote(&n); err != nil {
			logger.Warn("Failed to index note",
				slog.String("note_id", n.ID),
				slog.String("error", err.Error()))
			continue
		}
		indexed++
	}
	logger.Info("Search index ready", slog.Int("documents", indexed))
}
