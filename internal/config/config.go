package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the application configuration.
type Config struct {
	ServerPort   int
	DatabasePath string

	JWTSecret        string
	JWTExpiresIn     time.Duration
	CookieExpiryDays int

	VisionAPIURL string
	VisionAPIKey string

	AssistantAPIURL string
	AssistantAPIKey string

	CORSOrigin string
	BlogCron   string

	Env string // "development" or "production"
}

// IsProduction reports whether the app runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load loads configuration from environment variables or sets defaults.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	expiresIn, err := time.ParseDuration(getEnv("JWT_EXPIRES_IN", "24h"))
	if err != nil {
		return nil, err
	}

	cookieDays, err := strconv.Atoi(getEnv("COOKIE_EXPIRES_DAYS", "90"))
	if err != nil {
		return nil, err
	}

	// The connection string may carry a <PASSWORD> placeholder so the
	// secret itself stays in a separate variable.
	dbPath := getEnv("DATABASE_PATH", "./nutrilens.db")
	dbPath = strings.ReplaceAll(dbPath, "<PASSWORD>", os.Getenv("DATABASE_PASSWORD"))

	return &Config{
		ServerPort:       port,
		DatabasePath:     dbPath,
		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTExpiresIn:     expiresIn,
		CookieExpiryDays: cookieDays,
		VisionAPIURL:     getEnv("VISION_API_URL", "https://vision.googleapis.com/v1/images:annotate"),
		VisionAPIKey:     getEnv("VISION_API_KEY", ""),
		AssistantAPIURL:  getEnv("ASSISTANT_API_URL", ""),
		AssistantAPIKey:  getEnv("ASSISTANT_API_KEY", ""),
		CORSOrigin:       getEnv("CORS_ORIGIN", "http://localhost:3000"),
		BlogCron:         getEnv("BLOG_CRON", "0 8 * * *"),
		Env:              getEnv("APP_ENV", "development"),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
