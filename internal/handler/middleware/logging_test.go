//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"lendhub/internal/handler/middleware"
	"lendhub/internal/pkg/config"
	commonhttp "lendhub/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddlewareUsesInjectedLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	cfg := config.LogConfig{Level: "info", TimeFormat: time.RFC3339}

	engine := newEngine(middleware.LoggingMiddleware(logger, cfg))
	engine.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := commonhttp.PerformRequest(t, engine, http.MethodGet, "/ping", nil, 42)

	assert.Equal(t, http.StatusOK, w.Code)
	out := buf.String()
	assert.Contains(t, out, "Request started")
	assert.Contains(t, out, "Request completed")
	assert.Contains(t, out, "request_id")
	assert.Contains(t, out, `"sharer_user_id":"42"`)
}
