package api

import (
	"net/http"                     // HTTP status codes
	"pantry_chef/internal/content" // Ancillary content providers

	"github.com/gin-gonic/gin" // Gin web framework
)

// NewsHandler returns three random food news headlines
func NewsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		headlines, err := content.Headlines() // Sample from the fixed pool
		if err != nil {
			// If sampling fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"headlines": headlines})
	}
}

// BackgroundHandler returns a random background image URL
func BackgroundHandler(backgroundsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"url": content.BackgroundURL(backgroundsDir)})
	}
}
