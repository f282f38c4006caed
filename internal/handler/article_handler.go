package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/babyBee3443/biogenius-sub001/internal/domain"
	"github.com/babyBee3443/biogenius-sub001/internal/middleware"
	"github.com/babyBee3443/biogenius-sub001/internal/render"
	"github.com/babyBee3443/biogenius-sub001/internal/service"
)

// ArticleHandler handles article-related HTTP requests.
type ArticleHandler struct {
	articles *service.ArticleService
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articles *service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

// List handles GET /api/v1/articles.
// The default listing is filtered by the viewer's role; ?include=all returns
// every status and is only honored for admin and editor viewers.
func (h *ArticleHandler) List(c *gin.Context) {
	role := middleware.ViewerRole(c)

	if c.Query("include") == "all" {
		if role != domain.RoleAdmin && role != domain.RoleEditor {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient_role"})
			return
		}
		c.JSON(http.StatusOK, h.articles.ListAll(c.Request.Context()))
		return
	}

	articles := h.articles.ListVisible(c.Request.Context(), role)
	if articles == nil {
		articles = []domain.Article{}
	}
	c.JSON(http.StatusOK, articles)
}

// Get handles GET /api/v1/articles/:id. The parameter may be an id or a slug.
func (h *ArticleHandler) Get(c *gin.Context) {
	key := c.Param("id")
	role := middleware.ViewerRole(c)

	a := h.articles.Get(c.Request.Context(), key, role)
	if a == nil {
		a = h.articles.GetBySlug(c.Request.Context(), key, role)
	}
	if a == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "article_not_found"})
		return
	}
	c.JSON(http.StatusOK, a)
}

// GetBySlug handles GET /api/v1/articles/slug/:slug.
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	a := h.articles.GetBySlug(c.Request.Context(), c.Param("slug"), middleware.ViewerRole(c))
	if a == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "article_not_found"})
		return
	}
	c.JSON(http.StatusOK, a)
}

// RenderHTML handles GET /api/v1/articles/:id/html and returns the article
// body rendered as an HTML fragment.
func (h *ArticleHandler) RenderHTML(c *gin.Context) {
	role := middleware.ViewerRole(c)
	key := c.Param("id")

	a := h.articles.Get(c.Request.Context(), key, role)
	if a == nil {
		a = h.articles.GetBySlug(c.Request.Context(), key, role)
	}
	if a == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "article_not_found"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(render.Document(a.Blocks)))
}

// Create handles POST /api/v1/articles.
func (h *ArticleHandler) Create(c *gin.Context) {
	var a domain.Article
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request_body"})
		return
	}

	created, err := h.articles.Create(c.Request.Context(), a)
	if err != nil {
		respondServiceError(c, err, "create article")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/v1/articles/:id.
func (h *ArticleHandler) Update(c *gin.Context) {
	var u domain.ArticleUpdate
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request_body"})
		return
	}

	updated, err := h.articles.Update(c.Request.Context(), c.Param("id"), u)
	if err != nil {
		respondServiceError(c, err, "update article")
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "article_not_found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/articles/:id.
func (h *ArticleHandler) Delete(c *gin.Context) {
	ok, err := h.articles.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "delete article")
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "article_not_found"})
		return
	}
	c.Status(http.StatusNoContent)
}
