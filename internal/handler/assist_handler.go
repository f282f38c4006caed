package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/babyBee3443/biogenius-sub001/internal/service"
)

// AssistHandler exposes the AI content-assist flows. The service may be nil
// when no model credentials are configured; every endpoint then answers 503.
type AssistHandler struct {
	assist *service.AssistService
}

// NewAssistHandler creates a new AssistHandler.
func NewAssistHandler(assist *service.AssistService) *AssistHandler {
	return &AssistHandler{assist: assist}
}

type chatRequest struct {
	Query   string             `json:"query"`
	History []service.ChatTurn `json:"history,omitempty"`
}

func (h *AssistHandler) disabled(c *gin.Context) bool {
	if h.assist == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "assist_disabled"})
		return true
	}
	return false
}

// Chat handles POST /api/v1/assist/chat.
func (h *AssistHandler) Chat(c *gin.Context) {
	if h.disabled(c) {
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query_required"})
		return
	}

	answer, err := h.assist.Chat(c.Request.Context(), req.Query, req.History)
	if err != nil {
		respondAssistError(c, err, "assist chat")
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

// SuggestNote handles POST /api/v1/assist/note-suggestion.
func (h *AssistHandler) SuggestNote(c *gin.Context) {
	if h.disabled(c) {
		return
	}

	var req service.NoteSuggestionInput
	if err := c.ShouldBindJSON(&req); err != nil || req.Topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic_required"})
		return
	}

	suggestion, err := h.assist.SuggestNote(c.Request.Context(), req)
	if err != nil {
		respondAssistError(c, err, "assist note suggestion")
		return
	}
	c.JSON(http.StatusOK, suggestion)
}

// DailyFact handles GET /api/v1/assist/daily-fact.
func (h *AssistHandler) DailyFact(c *gin.Context) {
	if h.disabled(c) {
		return
	}

	fact, err := h.assist.GenerateDailyFact(c.Request.Context())
	if err != nil {
		respondAssistError(c, err, "assist daily fact")
		return
	}
	c.JSON(http.StatusOK, fact)
}

// respondAssistError maps model failures to 502: the upstream model broke,
// not this service.
func respondAssistError(c *gin.Context, err error, action string) {
	if errors.Is(err, service.ErrEmptyModelOutput) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "empty_model_output"})
		return
	}
	respondServiceError(c, err, action)
}
