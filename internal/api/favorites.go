package api

import (
	"net/http"                    // HTTP status codes
	"pantry_chef/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// FavoriteRequest is the payload for saving a recipe
type FavoriteRequest struct {
	Title string `json:"title" binding:"required"` // Recipe title must be provided
	Link  string `json:"link"`                     // Recipe link
	Image string `json:"image"`                    // Recipe image URL
}

// FavoriteResponse is one saved recipe returned to the client
type FavoriteResponse struct {
	ID    uint   `json:"id"`    // Favorite ID
	Title string `json:"title"` // Recipe title
	Link  string `json:"link"`  // Recipe link
	Image string `json:"image"` // Recipe image URL
}

// CreateFavoriteHandler saves a recipe for the authenticated user
func CreateFavoriteHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req FavoriteRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		fav := domain.Favorite{
			UserID: userID.(uint), // Owner
			Title:  req.Title,     // Recipe title
			Link:   req.Link,      // Recipe link
			Image:  req.Image,     // Recipe image URL
		}
		// Save the favorite
		if err := db.Create(&fav).Error; err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"title":   req.Title,   // Recipe title
				"error":   err.Error(), // Error message
			}).Error("Favorite save failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save favorite"})
			return
		}
		// Return the saved favorite
		c.JSON(http.StatusCreated, FavoriteResponse{ID: fav.ID, Title: fav.Title, Link: fav.Link, Image: fav.Image})
	}
}

// ListFavoritesHandler returns the authenticated user's saved recipes
func ListFavoritesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var rows []domain.Favorite // Fetch favorites from DB
		// Only rows owned by this user
		if err := db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
			return
		}
		// Map rows to the response format
		resp := make([]FavoriteResponse, len(rows))
		for i, r := range rows {
			resp[i] = FavoriteResponse{ID: r.ID, Title: r.Title, Link: r.Link, Image: r.Image}
		}
		c.JSON(http.StatusOK, gin.H{"favorites": resp})
	}
}
