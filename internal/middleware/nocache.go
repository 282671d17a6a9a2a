package middleware

import (
	"github.com/gin-gonic/gin" // Gin web framework
)

// NoCacheMiddleware disables client and proxy caching on every response
func NoCacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store, no-cache, must-revalidate, post-check=0, pre-check=0, max-age=0")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "-1")
		c.Next()
	}
}
