package service

import (
	"strings"

	"github.com/babyBee3443/biogenius-sub001/internal/domain"
)

// StatusVisibleTo reports whether content with the given status is visible
// to a viewer with the given role string. Anonymous viewers and plain users
// see only published content; admins and editors additionally see ready
// content. Drafts are never visible outside the editing views.
func StatusVisibleTo(viewerRole string, s domain.Status) bool {
	if s == domain.StatusPublished {
		return true
	}
	role := strings.ToLower(strings.TrimSpace(viewerRole))
	if s == domain.StatusReady && (role == domain.RoleAdmin || role == domain.RoleEditor) {
		return true
	}
	return false
}
