package api

import (
	"context"                     // Context for Redis operations
	"net/http"                    // HTTP status codes
	"pantry_chef/internal/domain" // Importing domain models
	"pantry_chef/internal/utils"  // Utility functions
	"strconv"                     // String conversion
	"strings"                     // String manipulation

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library

	"github.com/sirupsen/logrus" // Logging library
)

// PantryItemResponse is one row shown on the pantry page
type PantryItemResponse struct {
	ID         uint   `json:"id"`         // Item ID, used by the frontend for deletion
	Ingredient string `json:"ingredient"` // Ingredient text
}

// PantryPageHandler renders the authenticated user's pantry items
func PantryPageHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		ctx := context.Background()                     // Context for Redis operations
		cacheKey := utils.PantryListKey(userID.(uint))  // Cache key for this user's pantry
		var items []PantryItemResponse            // Rows to render
		found, err := utils.GetCache(ctx, rdb, cacheKey, &items) // Try to get from cache
		// If found in cache, render it
		if err == nil && found {
			c.HTML(http.StatusOK, "pantry.html", gin.H{"pantry": items})
			return
		}
		var rows []domain.PantryItem // Fetch from DB on cache miss
		// Only rows owned by this user
		if err := db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pantry"})
			return
		}
		// Map rows to (id, ingredient) pairs
		items = make([]PantryItemResponse, len(rows))
		for i, r := range rows {
			items[i] = PantryItemResponse{ID: r.ID, Ingredient: r.Ingredient}
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, items, utils.PantryListTTL) // Cache for the list TTL
		c.HTML(http.StatusOK, "pantry.html", gin.H{"pantry": items})
	}
}

// PantryAddHandler inserts a pantry item from the submitted form.
// A whitespace-only ingredient is a no-op; either way the client is sent
// back to the pantry page.
func PantryAddHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		ingredient := strings.TrimSpace(c.PostForm("ingredient")) // Trim surrounding whitespace
		if ingredient != "" {
			item := domain.PantryItem{UserID: userID.(uint), Ingredient: ingredient}
			// Insert the item
			if err := db.Create(&item).Error; err != nil {
				// Log the error with context
				logrus.WithFields(logrus.Fields{
					"user_id": userID,      // User ID
					"error":   err.Error(), // Error message
				}).Error("Pantry add failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add ingredient"})
				return
			}
			// Log successful add
			logrus.WithFields(logrus.Fields{
				"user_id":    userID,     // User ID
				"item_id":    item.ID,    // New item ID
				"ingredient": ingredient, // Ingredient text
			}).Info("Pantry item added")
			// Invalidate the pantry list cache for this user
			ctx := context.Background()
			_ = utils.DeleteCache(ctx, rdb, utils.PantryListKey(userID.(uint)))
		}
		// Redirect to pantry GET so the list is refreshed
		c.Redirect(http.StatusFound, "/pantry")
	}
}

// PantryDeleteHandler removes a pantry item after verifying ownership.
// The ownership check must precede the delete: a missing row is 404, a row
// owned by someone else is 403 and is left intact.
func PantryDeleteHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		itemID, err := strconv.Atoi(c.Param("item_id")) // Parse the item id from the path
		if err != nil {
			// A non-numeric id cannot match any item
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		var item domain.PantryItem // Look up the item before deleting
		if err := db.First(&item, itemID).Error; err != nil {
			// No row with that id (including an already-deleted one)
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		// Make sure the item belongs to the current user before deleting
		if item.UserID != userID.(uint) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		// Delete the row
		if err := db.Delete(&item).Error; err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"item_id": itemID,      // Item ID
				"error":   err.Error(), // Error message
			}).Error("Pantry delete failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		// Log successful delete
		logrus.WithFields(logrus.Fields{
			"user_id": userID, // User ID
			"item_id": itemID, // Item ID
		}).Info("Pantry item deleted")
		// Invalidate the pantry list cache for this user
		ctx := context.Background()
		_ = utils.DeleteCache(ctx, rdb, utils.PantryListKey(userID.(uint)))
		// Return success response
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
