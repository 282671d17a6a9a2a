package middleware

import (
	"net/http"                   // HTTP status codes
	"pantry_chef/internal/utils" // Session token utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// SessionCookieName is the cookie carrying the signed session token
const SessionCookieName = "session"

// SessionAuthMiddleware validates the signed session cookie and extracts user information.
// Unauthenticated requests are redirected to the login page, never served.
func SessionAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(SessionCookieName) // Get the session cookie
		// Check if the cookie is present
		if err != nil || tokenStr == "" {
			// If not, redirect to the login page
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		claims, err := utils.ParseSessionToken(tokenStr, secret) // Parse the session token
		if err != nil {
			// If parsing fails (expired or tampered token), redirect to the login page
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set("userID", claims.UserID)     // Store userID in context
		c.Set("username", claims.Username) // Store username in context
		c.Next()                           // Proceed to the next handler
	}
}
