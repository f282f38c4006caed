package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/babyBee3443/biogenius-sub001/internal/middleware"
	"github.com/babyBee3443/biogenius-sub001/internal/service"
)

// PermissionHandler answers effective-permission queries for the admin UI.
type PermissionHandler struct {
	permissions *service.PermissionService
}

// NewPermissionHandler creates a new PermissionHandler.
func NewPermissionHandler(permissions *service.PermissionService) *PermissionHandler {
	return &PermissionHandler{permissions: permissions}
}

// Resolve handles GET /api/v1/permissions/:userID. Resolution failures are
// part of the payload, not HTTP errors: the response is always 200 and an
// empty permission list plus a message tells the caller why access is denied.
func (h *PermissionHandler) Resolve(c *gin.Context) {
	token := c.GetHeader(middleware.SessionTokenHeader)
	userID := c.Param("userID")

	resolution := h.permissions.Resolve(c.Request.Context(), token, userID)
	c.JSON(http.StatusOK, resolution)
}
