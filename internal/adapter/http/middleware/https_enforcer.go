package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskapp/pkg/config"
)

// HTTPSEnforcerMiddleware redirects plain-HTTP requests when enforcement
// is on. Proxied deployments are detected via X-Forwarded-Proto.
func HTTPSEnforcerMiddleware(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.EnforceHTTPS {
			c.Next()
			return
		}

		if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
			c.Next()
			return
		}

		target := "https://" + c.Request.Host + c.Request.URL.RequestURI()
		c.Redirect(http.StatusMovedPermanently, target)
		c.Abort()
	}
}
