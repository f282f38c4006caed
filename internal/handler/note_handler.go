package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/babyBee3443/biogenius-sub001/internal/domain"
	"github.com/babyBee3443/biogenius-sub001/internal/middleware"
	"github.com/babyBee3443/biogenius-sub001/internal/render"
	"github.com/babyBee3443/biogenius-sub001/internal/service"
)

// NoteHandler handles study-note HTTP requests.
type NoteHandler struct {
	notes *service.NoteService
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(notes *service.NoteService) *NoteHandler {
	return &NoteHandler{notes: notes}
}

// List handles GET /api/v1/notes.
func (h *NoteHandler) List(c *gin.Context) {
	role := middleware.ViewerRole(c)

	if c.Query("include") == "all" {
		if role != domain.RoleAdmin && role != domain.RoleEditor {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient_role"})
			return
		}
		c.JSON(http.StatusOK, h.notes.ListAll(c.Request.Context()))
		return
	}

	notes := h.notes.ListVisible(c.Request.Context(), role)
	if notes == nil {
		notes = []domain.Note{}
	}
	c.JSON(http.StatusOK, notes)
}

// Get handles GET /api/v1/notes/:id. The parameter may be an id or a slug.
func (h *NoteHandler) Get(c *gin.Context) {
	n := h.notes.Get(c.Request.Context(), c.Param("id"), middleware.ViewerRole(c))
	if n == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "note_not_found"})
		return
	}
	c.JSON(http.StatusOK, n)
}

// RenderHTML handles GET /api/v1/notes/:id/html and returns the note body
// rendered as an HTML fragment.
func (h *NoteHandler) RenderHTML(c *gin.Context) {
	n := h.notes.Get(c.Request.Context(), c.Param("id"), middleware.ViewerRole(c))
	if n == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "note_not_found"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(render.Document(n.Blocks)))
}

// Create handles POST /api/v1/notes.
func (h *NoteHandler) Create(c *gin.Context) {
	var n domain.Note
	if err := c.ShouldBindJSON(&n); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request_body"})
		return
	}

	created, err := h.notes.Create(c.Request.Context(), n)
	if err != nil {
		respondServiceError(c, err, "create note")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/v1/notes/:id.
func (h *NoteHandler) Update(c *gin.Context) {
	var u domain.NoteUpdate
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request_body"})
		return
	}

	updated, err := h.notes.Update(c.Request.Context(), c.Param("id"), u)
	if err != nil {
		respondServiceError(c, err, "update note")
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "note_not_found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/notes/:id.
func (h *NoteHandler) Delete(c *gin.Context) {
	ok, err := h.notes.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "delete note")
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "note_not_found"})
		return
	}
	c.Status(http.StatusNoContent)
}
