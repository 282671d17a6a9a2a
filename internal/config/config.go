package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv"   // For loading .env files
	"github.com/sirupsen/logrus" // Logging library
)

// DevSessionSecret signs sessions when SESSION_SECRET is unset. It is only
// acceptable for local development; production must set its own secret.
const DevSessionSecret = "dev-secret-change-me"

// Config holds the application configuration
type Config struct {
	AppPort        string // Application port
	DBPath         string // Path to the sqlite database file
	SessionSecret  string // Secret key used to sign session tokens
	StaticDir      string // Directory served under /static
	BackgroundsDir string // Directory holding background images
	TemplatesGlob  string // Glob for HTML templates
	RedisAddr      string // Redis server address
	RedisPass      string // Redis password
	RedisDB        int    // Redis database number
	IsProd         bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	cfg := &Config{
		AppPort:        os.Getenv("APP_PORT"),          // Application port
		DBPath:         os.Getenv("DB_PATH"),           // Sqlite database path
		SessionSecret:  os.Getenv("SESSION_SECRET"),    // Session signing secret
		StaticDir:      os.Getenv("STATIC_DIR"),        // Static assets directory
		TemplatesGlob:  os.Getenv("TEMPLATES_GLOB"),    // HTML templates glob
		RedisAddr:      os.Getenv("REDIS_ADDR"),        // Redis server address
		RedisPass:      os.Getenv("REDIS_PASS"),        // Redis password
		RedisDB:        redisDB,                        // Redis database number
		IsProd:         os.Getenv("IS_PROD") == "true", // Is production environment
	}
	// Defaults keep the app runnable out of the box
	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "db.sqlite"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "static"
	}
	if cfg.TemplatesGlob == "" {
		cfg.TemplatesGlob = "web/templates/*.html"
	}
	if cfg.SessionSecret == "" {
		// An empty signing key would make every session forgeable
		logrus.Warn("SESSION_SECRET is not set, using the development secret")
		cfg.SessionSecret = DevSessionSecret
	}
	cfg.BackgroundsDir = cfg.StaticDir + "/backgrounds" // Background images live under static
	return cfg
}
