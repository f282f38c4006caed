package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/babyBee3443/biogenius-sub001/internal/domain"
	"github.com/babyBee3443/biogenius-sub001/internal/service"
)

// RoleHandler handles role HTTP requests.
type RoleHandler struct {
	roles *service.RoleService
}

// NewRoleHandler creates a new RoleHandler.
func NewRoleHandler(roles *service.RoleService) *RoleHandler {
	return &RoleHandler{roles: roles}
}

// roleUpdateRequest is the body for PUT /api/v1/roles/:id. For base roles
// only the description is applied.
type roleUpdateRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

// List handles GET /api/v1/roles.
func (h *RoleHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.roles.Roles(c.Request.Context()))
}

// Get handles GET /api/v1/roles/:id.
func (h *RoleHandler) Get(c *gin.Context) {
	r := h.roles.GetRole(c.Request.Context(), c.Param("id"))
	if r == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "role_not_found"})
		return
	}
	c.JSON(http.StatusOK, r)
}

// Create handles POST /api/v1/roles.
func (h *RoleHandler) Create(c *gin.Context) {
	var r domain.Role
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request_body"})
		return
	}

	created, err := h.roles.CreateRole(c.Request.Context(), r)
	if err != nil {
		respondServiceError(c, err, "create role")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/v1/roles/:id.
func (h *RoleHandler) Update(c *gin.Context) {
	var req roleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request_body"})
		return
	}

	updated, err := h.roles.UpdateRole(c.Request.Context(), c.Param("id"), req.Name, req.Description, req.Permissions)
	if err != nil {
		respondServiceError(c, err, "update role")
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "role_not_found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/roles/:id. Base roles answer 403.
func (h *RoleHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if h.roles.IsBaseRole(id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "base_role_protected"})
		return
	}

	ok, err := h.roles.DeleteRole(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "delete role")
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "role_not_found"})
		return
	}
	c.Status(http.StatusNoContent)
}
