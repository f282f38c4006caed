// Package handler contains the Gin HTTP handlers for the API surface.
package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/babyBee3443/biogenius-sub001/internal/logger"
	"github.com/babyBee3443/biogenius-sub001/internal/middleware"
	"github.com/babyBee3443/biogenius-sub001/internal/service"
)

// respondServiceError translates a service-layer error into an HTTP response.
// Validation failures become 400 with per-field reasons; everything else is a
// 500 with the detail kept out of the response body.
func respondServiceError(c *gin.Context, err error, action string) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation_failed",
			"fields": verr.Fields,
		})
		return
	}

	logger.Error("request failed",
		slog.String("request_id", middleware.GetRequestID(c)),
		slog.String("action", action),
		slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
}
