//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"lendhub/internal/handler/httperr"
	"lendhub/internal/handler/middleware"
	commonhttp "lendhub/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(mw...)
	return engine
}

func TestAbortWithError(t *testing.T) {
	engine := newEngine(middleware.ErrorHandler())
	engine.GET("/boom", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusNotFound, errors.New("row missing"), "Thing not found")
	})

	w := commonhttp.PerformRequest(t, engine, http.MethodGet, "/boom", nil, 0)

	commonhttp.AssertErrorResponse(t, w, http.StatusNotFound, "Thing not found")
}

func TestErrorHandler(t *testing.T) {
	t.Run("replays a recorded public error the handler never wrote", func(t *testing.T) {
		engine := newEngine(middleware.ErrorHandler())
		engine.GET("/silent", func(c *gin.Context) {
			_ = c.Error(&gin.Error{
				Err:  errors.New("duplicate email"),
				Type: gin.ErrorTypePublic,
				Meta: httperr.Response{Status: http.StatusConflict, Message: "Email is already in use"},
			})
		})

		w := commonhttp.PerformRequest(t, engine, http.MethodGet, "/silent", nil, 0)

		commonhttp.AssertErrorResponse(t, w, http.StatusConflict, "Email is already in use")
	})

	t.Run("falls back to the 500 envelope when nothing was written", func(t *testing.T) {
		engine := newEngine(middleware.ErrorHandler())
		engine.GET("/empty", func(_ *gin.Context) {})

		w := commonhttp.PerformRequest(t, engine, http.MethodGet, "/empty", nil, 0)

		commonhttp.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("leaves a written response alone", func(t *testing.T) {
		engine := newEngine(middleware.ErrorHandler())
		engine.GET("/ok", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		w := commonhttp.PerformRequest(t, engine, http.MethodGet, "/ok", nil, 0)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})
}

func TestCustomRecovery(t *testing.T) {
	engine := newEngine(middleware.CustomRecovery())
	engine.GET("/panic", func(_ *gin.Context) {
		panic("unexpected")
	})

	w := commonhttp.PerformRequest(t, engine, http.MethodGet, "/panic", nil, 0)

	commonhttp.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
}
