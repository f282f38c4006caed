package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/babyBee3443/biogenius-sub001/internal/domain"
	"github.com/babyBee3443/biogenius-sub001/internal/service"
)

// CategoryHandler handles category HTTP requests.
type CategoryHandler struct {
	categories *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List handles GET /api/v1/categories.
func (h *CategoryHandler) List(c *gin.Context) {
	categories := h.categories.List(c.Request.Context())
	if categories == nil {
		categories = []domain.Category{}
	}
	c.JSON(http.StatusOK, categories)
}

// Create handles POST /api/v1/categories.
func (h *CategoryHandler) Create(c *gin.Context) {
	var cat domain.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request_body"})
		return
	}

	created, err := h.categories.Create(c.Request.Context(), cat)
	if err != nil {
		respondServiceError(c, err, "create category")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Delete handles DELETE /api/v1/categories/:id.
func (h *CategoryHandler) Delete(c *gin.Context) {
	ok, err := h.categories.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "delete category")
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "category_not_found"})
		return
	}
	c.Status(http.StatusNoContent)
}
