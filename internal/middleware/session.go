package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/babyBee3443/biogenius-sub001/internal/repository"
)

const (
	// SessionTokenHeader carries the opaque session token issued by the login flow.
	SessionTokenHeader = "X-Session-Token"
	// ViewerRoleKey is the context key for the resolved viewer role.
	ViewerRoleKey = "viewer_role"
	// ViewerUserIDKey is the context key for the resolved viewer user id.
	ViewerUserIDKey = "viewer_user_id"
)

// Session resolves the caller's role from the session token header. Requests
// without a token, or with a token no session matches, proceed as anonymous
// viewers; this middleware never rejects a request.
func Session(sessions *repository.SessionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader(SessionTokenHeader))
		if token != "" {
			if sess := sessions.GetByToken(c.Request.Context(), token); sess != nil {
				c.Set(ViewerRoleKey, sess.Role)
				c.Set(ViewerUserIDKey, sess.UserID)
			}
		}
		c.Next()
	}
}

// ViewerRole returns the resolved role for the current request, or the empty
// string for anonymous viewers.
func ViewerRole(c *gin.Context) string {
	if role, exists := c.Get(ViewerRoleKey); exists {
		if r, ok := role.(string); ok {
			return r
		}
	}
	return ""
}
