package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	Env           string
	LogLevel      string
	AllowedOrigin string
	BaseURL       string // Public URL of the landing page, used by the sitemap
	// Session (per page view state)
	SessionSecret       string
	SessionTTL          time.Duration
	SessionCookieSecure bool
	// Cache
	CacheSearchTTL  time.Duration
	CacheSitemapTTL time.Duration
	// Rate limiting
	RateLimitRPS   float64
	RateLimitBurst int
	// Search
	SearchTimeout time.Duration
}

func LoadConfig() *Config {
	// 1. Check if a specific config file is requested via env var
	configFile := os.Getenv("CONFIG_FILE")
	if configFile != "" {
		if err := godotenv.Load(configFile); err != nil {
			log.Printf("Warning: Failed to load config file '%s': %v", configFile, err)
		} else {
			log.Printf("Loaded configuration from %s", configFile)
		}
	} else {
		// 2. Default fallback: .env for local dev, system env vars otherwise
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found or error loading it, relying on system env vars")
		}
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:8080"),
		BaseURL:       getEnv("BASE_URL", "http://localhost:8080"),

		SessionSecret:       getEnv("SESSION_SECRET", defaultSessionSecret),
		SessionTTL:          getDurationEnv("SESSION_TTL", 30*time.Minute),
		SessionCookieSecure: getBoolEnv("SESSION_COOKIE_SECURE", false),

		// Cache defaults: 10m search, 6h sitemap
		CacheSearchTTL:  getDurationEnv("CACHE_SEARCH_TTL", 10*time.Minute),
		CacheSitemapTTL: getDurationEnv("CACHE_SITEMAP_TTL", 6*time.Hour),

		RateLimitRPS:   getFloatEnv("RATE_LIMIT_RPS", 50),
		RateLimitBurst: getIntEnv("RATE_LIMIT_BURST", 100),

		SearchTimeout: getDurationEnv("SEARCH_TIMEOUT", 2*time.Second),
	}

	cfg.Validate()
	return cfg
}

const defaultSessionSecret = "default_session_secret_CHANGE_ME"

func (c *Config) Validate() {
	if c.SessionSecret == defaultSessionSecret {
		log.Println("WARNING: Using default session secret. Set SESSION_SECRET in production.")
	}
	if c.SessionTTL <= 0 {
		log.Printf("Invalid SESSION_TTL %s, using 30m", c.SessionTTL)
		c.SessionTTL = 30 * time.Minute
	}
	if c.RateLimitBurst < 1 {
		c.RateLimitBurst = 1
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "dev" || c.Env == ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid duration for %s, using fallback", key)
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
		log.Printf("Invalid int for %s, using fallback", key)
	}
	return fallback
}
