package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/babyBee3443/biogenius-sub001/internal/logger"
)

func captureAt(level slog.Level) *bytes.Buffer {
	var buf bytes.Buffer
	logger.SetLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level})))
	return &buf
}

func TestLogger_AttributesReachOutput(t *testing.T) {
	buf := captureAt(slog.LevelInfo)

	logger.Info("article indexed",
		slog.String("article_id", "a-1"),
		slog.Int("block_count", 4),
	)

	out := buf.String()
	assert.Contains(t, out, "article indexed")
	assert.Contains(t, out, "article_id")
	assert.Contains(t, out, "a-1")
	assert.Contains(t, out, `"block_count":4`)
}

func TestLogger_DebugSuppressedAtInfo(t *testing.T) {
	buf := captureAt(slog.LevelInfo)

	logger.Debug("blob reload")
	assert.Empty(t, buf.String())

	logger.Warn("blob corrupted")
	assert.Contains(t, buf.String(), "blob corrupted")
}

func TestLogger_WithRequestID(t *testing.T) {
	buf := captureAt(slog.LevelInfo)

	logger.WithRequestID("req-123").Info("request handled")

	out := buf.String()
	assert.Contains(t, out, "request_id")
	assert.Contains(t, out, "req-123")
}
