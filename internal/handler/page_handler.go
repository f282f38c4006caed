package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/babyBee3443/biogenius-sub001/internal/domain"
	"github.com/babyBee3443/biogenius-sub001/internal/middleware"
	"github.com/babyBee3443/biogenius-sub001/internal/render"
	"github.com/babyBee3443/biogenius-sub001/internal/service"
)

// PageHandler handles static-page HTTP requests.
type PageHandler struct {
	pages *service.PageService
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(pages *service.PageService) *PageHandler {
	return &PageHandler{pages: pages}
}

// List handles GET /api/v1/pages.
func (h *PageHandler) List(c *gin.Context) {
	role := middleware.ViewerRole(c)

	if c.Query("include") == "all" {
		if role != domain.RoleAdmin && role != domain.RoleEditor {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient_role"})
			return
		}
		c.JSON(http.StatusOK, h.pages.ListAll(c.Request.Context()))
		return
	}

	pages := h.pages.ListVisible(c.Request.Context(), role)
	if pages == nil {
		pages = []domain.Page{}
	}
	c.JSON(http.StatusOK, pages)
}

// Get handles GET /api/v1/pages/:id. The parameter may be an id or a slug.
func (h *PageHandler) Get(c *gin.Context) {
	p := h.pages.Get(c.Request.Context(), c.Param("id"), middleware.ViewerRole(c))
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "page_not_found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// RenderHTML handles GET /api/v1/pages/:id/html and returns the page body
// rendered as an HTML fragment.
func (h *PageHandler) RenderHTML(c *gin.Context) {
	p := h.pages.Get(c.Request.Context(), c.Param("id"), middleware.ViewerRole(c))
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "page_not_found"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(render.Document(p.Blocks)))
}

// Create handles POST /api/v1/pages.
func (h *PageHandler) Create(c *gin.Context) {
	var p domain.Page
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request_body"})
		return
	}

	created, err := h.pages.Create(c.Request.Context(), p)
	if err != nil {
		respondServiceError(c, err, "create page")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/v1/pages/:id.
func (h *PageHandler) Update(c *gin.Context) {
	var u domain.PageUpdate
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request_body"})
		return
	}

	updated, err := h.pages.Update(c.Request.Context(), c.Param("id"), u)
	if err != nil {
		respondServiceError(c, err, "update page")
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "page_not_found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/pages/:id. System pages cannot be deleted and
// answer 403 rather than 404.
func (h *PageHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if h.pages.IsProtected(id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "page_protected"})
		return
	}

	ok, err := h.pages.Delete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "delete page")
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "page_not_found"})
		return
	}
	c.Status(http.StatusNoContent)
}
