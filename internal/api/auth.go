package api

import (
	"net/http"                        // HTTP status codes
	"pantry_chef/internal/domain"     // Importing domain models
	"pantry_chef/internal/middleware" // Session cookie name
	"pantry_chef/internal/utils"      // Utility functions
	"strings"                         // String manipulation

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// sessionCookieMaxAge matches the 24 hour token lifetime
const sessionCookieMaxAge = 24 * 60 * 60

// HomeHandler renders the home page for the authenticated user
func HomeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		username, _ := c.Get("username") // Set by the session middleware
		c.HTML(http.StatusOK, "index.html", gin.H{"username": username})
	}
}

// RegisterPageHandler renders the registration form
func RegisterPageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "register.html", nil)
	}
}

// RegisterHandler creates a new user from the submitted form
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := strings.TrimSpace(c.PostForm("username")) // Trim surrounding whitespace
		password := c.PostForm("password")
		// Reject an empty (post-trim) username
		if username == "" {
			c.String(http.StatusBadRequest, "Username cannot be empty")
			return
		}
		// Hash the password; the plaintext is never stored
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			// If hashing fails, return internal server error
			c.String(http.StatusInternalServerError, "Failed to hash password")
			return
		}
		user := domain.User{Username: username, Password: string(hash)}
		// Attempt to create the user; the unique constraint rejects duplicates
		if err := db.Create(&user).Error; err != nil {
			c.String(http.StatusBadRequest, "Username already exists")
			return
		}
		// Log successful registration
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,       // New user ID
			"username": user.Username, // Username
		}).Info("User registered")
		// Send the new user to the login page
		c.Redirect(http.StatusFound, "/login")
	}
}

// LoginPageHandler renders the login form
func LoginPageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{"error": nil})
	}
}

// LoginHandler authenticates a user and establishes the session cookie.
// Failure reasons are kept distinct on purpose: empty fields, unknown
// username, and wrong password each get their own message.
func LoginHandler(db *gorm.DB, sessionSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := strings.TrimSpace(c.PostForm("username")) // Trim surrounding whitespace
		password := c.PostForm("password")
		// Both fields are required
		if username == "" || password == "" {
			c.HTML(http.StatusOK, "login.html", gin.H{"error": "Please enter both username and password"})
			return
		}
		var user domain.User // Fetch user from database by exact username
		if err := db.Where("username = ?", username).First(&user).Error; err != nil {
			c.HTML(http.StatusOK, "login.html", gin.H{"error": "Username not found. Please register first."})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
			c.HTML(http.StatusOK, "login.html", gin.H{"error": "Wrong password. Please try again."})
			return
		}
		// Generate the signed session token
		token, err := utils.GenerateSessionToken(user.ID, user.Username, sessionSecret)
		if err != nil {
			// If token generation fails, return internal server error
			c.String(http.StatusInternalServerError, "Failed to establish session")
			return
		}
		// Bind the session to the browser via an HttpOnly cookie
		c.SetCookie(middleware.SessionCookieName, token, sessionCookieMaxAge, "/", "", false, true)
		// Log successful login
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,       // User ID
			"username": user.Username, // Username
		}).Info("User logged in")
		c.Redirect(http.StatusFound, "/")
	}
}

// LogoutHandler clears the session cookie and returns to the login page
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Expire the cookie immediately
		c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
		c.Redirect(http.StatusFound, "/login")
	}
}
