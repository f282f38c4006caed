package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/babyBee3443/biogenius-sub001/internal/metrics"
	"github.com/babyBee3443/biogenius-sub001/internal/search"
)

const defaultSearchLimit = 20

// SearchHandler answers full-text queries over published content.
type SearchHandler struct {
	index *search.Index
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(index *search.Index) *SearchHandler {
	return &SearchHandler{index: index}
}

// Search handles GET /api/v1/search?q=...&limit=...
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q_required"})
		return
	}

	limit := defaultSearchLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit_must_be_1_to_100"})
			return
		}
		limit = n
	}

	results, err := h.index.Search(query, limit)
	if err != nil {
		metrics.ObserveSearch("error")
		respondServiceError(c, err, "search")
		return
	}
	if results == nil {
		results = []*search.Result{}
	}

	metrics.ObserveSearch("success")
	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"count":   len(results),
		"results": results,
	})
}
