package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Providers
	SearchAPIKey      string
	RainforestAPIKey  string
	Location          string
	Language          string
	AmazonDomain      string
	SearchAPITimeout  time.Duration
	RainforestTimeout time.Duration
	MaxRetries        int

	// Ranking
	TrustedOnly bool
	PageSize    int
	CatalogFile string // optional YAML seller catalog

	// Rate limiting per provider
	RatePerSecond float64
	RateBurst     int

	// Logging
	LogLevel  string
	LogFormat string // "text", "json"

	// HTTP server
	HTTPPort     string
	AllowOrigins string
	APIKey       string // bearer token for /mcp
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Location:          "United States",
		Language:          "en",
		AmazonDomain:      "amazon.com",
		SearchAPITimeout:  20 * time.Second,
		RainforestTimeout: 30 * time.Second,
		MaxRetries:        1,
		TrustedOnly:       true,
		PageSize:          8,
		RatePerSecond:     5,
		RateBurst:         5,
		LogLevel:          "info",
		LogFormat:         "text",
		HTTPPort:          "5000",
		AllowOrigins:      "*",
	}
}

// LoadFromEnv loads .env file (if present) then overrides config from environment variables.
func (c *Config) LoadFromEnv() {
	// Auto-load .env file; silently ignored if missing
	_ = godotenv.Load()

	if v := os.Getenv("SERPAPI_KEY"); v != "" {
		c.SearchAPIKey = v
	}
	if v := os.Getenv("SEARCHAPI_KEY"); v != "" {
		c.SearchAPIKey = v
	}
	if v := os.Getenv("RAINFOREST_API_KEY"); v != "" {
		c.RainforestAPIKey = v
	}
	if v := os.Getenv("PRICEWISE_LOCATION"); v != "" {
		c.Location = v
	}
	if v := os.Getenv("PRICEWISE_LANGUAGE"); v != "" {
		c.Language = v
	}
	if v := os.Getenv("PRICEWISE_AMAZON_DOMAIN"); v != "" {
		c.AmazonDomain = v
	}
	if v := os.Getenv("PRICEWISE_SEARCHAPI_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.SearchAPITimeout = d
		}
	}
	if v := os.Getenv("PRICEWISE_RAINFOREST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.RainforestTimeout = d
		}
	}
	if v := os.Getenv("PRICEWISE_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.MaxRetries = n
		}
	}
	if v := os.Getenv("PRICEWISE_TRUSTED_ONLY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.TrustedOnly = b
		}
	}
	if v := os.Getenv("PRICEWISE_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.PageSize = n
		}
	}
	if v := os.Getenv("PRICEWISE_CATALOG"); v != "" {
		c.CatalogFile = v
	}
	if v := os.Getenv("PRICEWISE_RATE_PER_SECOND"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.RatePerSecond = f
		}
	}
	if v := os.Getenv("PRICEWISE_RATE_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RateBurst = n
		}
	}
	if v := os.Getenv("PRICEWISE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("PRICEWISE_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.HTTPPort = v
	}
	if v := os.Getenv("ALLOW_ORIGINS"); v != "" {
		c.AllowOrigins = v
	}
	if v := os.Getenv("PRICEWISE_API_KEY"); v != "" {
		c.APIKey = v
	}
}
