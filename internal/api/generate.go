package api

import (
	"net/http"                     // HTTP status codes
	"pantry_chef/internal/recipes" // Recipe generator

	"github.com/gin-gonic/gin" // Gin web framework
)

// GenerateRequest is the payload for recipe generation.
// Pantry may be a string or a list; Diet is accepted for API
// compatibility and currently does not alter the output.
type GenerateRequest struct {
	Pantry any    `json:"pantry"` // Free-text or list of ingredients
	Diet   string `json:"diet"`   // Optional diet filter (no-op)
}

// GenerateHandler derives recipe suggestions from the submitted pantry.
// Generator failures surface as a real 500, not an error-shaped 200 body.
func GenerateHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GenerateRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		result, err := recipes.Generate(req.Pantry, req.Diet) // Run the generator
		if err != nil {
			// Surface generator failures with their error text
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result) // Return the generated recipes
	}
}

// TTSRequest is the payload for the text-to-speech echo
type TTSRequest struct {
	Text string `json:"text"` // Text to echo back
}

// TTSHandler echoes the submitted text. No audio synthesis is implemented.
func TTSHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TTSRequest // Bind JSON request to struct
		// An absent or malformed body echoes an empty string
		_ = c.ShouldBindJSON(&req)
		c.JSON(http.StatusOK, gin.H{"text": req.Text})
	}
}
