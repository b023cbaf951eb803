package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"taskapp/internal/adapter/http/middleware"
	"taskapp/pkg/config"
)

func limitedRouter(cfg *config.AppConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.NewRateLimiter(cfg).Middleware())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	return router
}

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.RateLimitConfigs = map[string]config.RateLimitConfig{
		"GET /ping": {Requests: 2, Window: time.Minute},
	}

	router := limitedRouter(cfg)

	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ping", nil)
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	}

	rr := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))
}

func TestRateLimiterDisabled(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.RateLimitEnabled = false
	cfg.RateLimitConfigs = map[string]config.RateLimitConfig{
		"GET /ping": {Requests: 1, Window: time.Minute},
	}

	router := limitedRouter(cfg)

	for i := 0; i < 5; i++ {
		rr := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ping", nil)
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	}
}
