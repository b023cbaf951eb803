package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"taskapp/pkg/config"
)

// RateLimiter applies fixed windows per route, keyed by caller identity
// when one is present and client IP otherwise. Windows live in a go-cache
// store so stale entries expire on their own.
type RateLimiter struct {
	cache   *cache.Cache
	cfg     *config.AppConfig
	enabled bool
}

type rateLimitEntry struct {
	Count     int
	ResetTime time.Time
}

func NewRateLimiter(cfg *config.AppConfig) *RateLimiter {
	return &RateLimiter{
		cache:   cache.New(5*time.Minute, 10*time.Minute),
		cfg:     cfg,
		enabled: cfg.RateLimitEnabled,
	}
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.enabled {
			c.Next()
			return
		}

		route := c.Request.Method + " " + c.FullPath()
		limit, ok := rl.cfg.RateLimitConfigs[route]

		if !ok {
			limit, ok = rl.cfg.RateLimitConfigs["default"]

			if !ok {
				c.Next()
				return
			}
		}

		key := rl.clientKey(c, route)
		now := time.Now()

		entry := rateLimitEntry{Count: 0, ResetTime: now.Add(limit.Window)}

		if cached, found := rl.cache.Get(key); found {
			entry = cached.(rateLimitEntry)

			if now.After(entry.ResetTime) {
				entry = rateLimitEntry{Count: 0, ResetTime: now.Add(limit.Window)}
			}
		}

		if entry.Count >= limit.Requests {
			retryAfter := int(time.Until(entry.ResetTime).Seconds()) + 1

			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			c.Abort()
			return
		}

		entry.Count++
		rl.cache.Set(key, entry, time.Until(entry.ResetTime))

		c.Next()
	}
}

func (rl *RateLimiter) clientKey(c *gin.Context, route string) string {
	if callerID := CallerID(c); callerID != "" {
		return route + "|caller|" + callerID
	}

	return route + "|ip|" + c.ClientIP()
}
