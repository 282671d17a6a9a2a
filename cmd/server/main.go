package main

import (
	"context"                         // context package is needed for Redis operations
	"log"                             // log package is needed for logging
	"pantry_chef/internal/api"        // Custom package for API handlers
	"pantry_chef/internal/config"     // Custom package for configuration
	"pantry_chef/internal/db"         // Custom package for database setup
	"pantry_chef/internal/domain"     // Custom package for domain models
	"pantry_chef/internal/middleware" // Custom package for middleware

	// For loading .env files
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Open the sqlite database
	gormDB, err := db.Open(cfg.DBPath)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Create the schema idempotently at startup
	if err := gormDB.AutoMigrate(&domain.User{}, &domain.PantryItem{}, &domain.Favorite{}); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	r.Use(middleware.NoCacheMiddleware())   // Every response disables caching
	r.LoadHTMLGlob(cfg.TemplatesGlob)       // HTML templates
	r.Static("/static", cfg.StaticDir)      // Static assets, including backgrounds

	// Anonymous routes
	r.GET("/register", api.RegisterPageHandler())        // Registration form
	r.POST("/register", api.RegisterHandler(gormDB))     // Registration endpoint
	r.GET("/login", api.LoginPageHandler())              // Login form
	r.POST("/login", api.LoginHandler(gormDB, cfg.SessionSecret)) // Login endpoint

	// Protected routes (signed session cookie required)
	authGroup := r.Group("/")
	authGroup.Use(middleware.SessionAuthMiddleware(cfg.SessionSecret))
	authGroup.GET("", api.HomeHandler())                                        // Home page
	authGroup.GET("/logout", api.LogoutHandler())                               // Logout endpoint
	authGroup.GET("/pantry", api.PantryPageHandler(gormDB, redisClient))        // Pantry page
	authGroup.POST("/pantry", api.PantryAddHandler(gormDB, redisClient))        // Add ingredient endpoint
	authGroup.POST("/pantry/delete/:item_id", api.PantryDeleteHandler(gormDB, redisClient)) // Owner-checked delete
	authGroup.POST("/generate", api.GenerateHandler())                          // Recipe generation endpoint
	authGroup.POST("/tts", api.TTSHandler())                                    // Text-to-speech echo
	authGroup.GET("/news", api.NewsHandler())                                   // Food news headlines
	authGroup.GET("/background", api.BackgroundHandler(cfg.BackgroundsDir))     // Random background image
	authGroup.GET("/favorites", api.ListFavoritesHandler(gormDB))               // Saved recipes
	authGroup.POST("/favorites", api.CreateFavoriteHandler(gormDB))             // Save a recipe

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
