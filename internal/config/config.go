package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the admin console.
type Config struct {
	// APIBaseURL is the marketplace API root every call is resolved against.
	APIBaseURL     string        `env:"HIREBOARD_API_BASE_URL,required"`
	Addr           string        `env:"HIREBOARD_ADDR" envDefault:":8080"`
	SessionSecret  string        `env:"HIREBOARD_SESSION_SECRET,required"`
	CookieSecure   bool          `env:"HIREBOARD_COOKIE_SECURE" envDefault:"false"`
	SessionMaxAge  time.Duration `env:"HIREBOARD_SESSION_MAX_AGE" envDefault:"168h"`
	PageSize       int           `env:"HIREBOARD_PAGE_SIZE" envDefault:"10"`
	RequestTimeout time.Duration `env:"HIREBOARD_REQUEST_TIMEOUT" envDefault:"15s"`
	UploadDir      string        `env:"HIREBOARD_UPLOAD_DIR" envDefault:"tmp/uploads"`
	SessionIdle    time.Duration `env:"HIREBOARD_SESSION_IDLE" envDefault:"30m"`
	FeedSize       int           `env:"HIREBOARD_FEED_SIZE" envDefault:"20"`
}

// Load reads an optional .env file and parses the environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return Parse()
}

// Parse builds a Config from the current environment only.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() error {
	c.APIBaseURL = strings.TrimSpace(c.APIBaseURL)
	if c.APIBaseURL == "" {
		return fmt.Errorf("HIREBOARD_API_BASE_URL is empty")
	}
	// Endpoint paths are written without a leading slash.
	if !strings.HasSuffix(c.APIBaseURL, "/") {
		c.APIBaseURL += "/"
	}
	if c.PageSize < 1 {
		return fmt.Errorf("HIREBOARD_PAGE_SIZE must be positive, got %d", c.PageSize)
	}
	if c.FeedSize < 1 {
		c.FeedSize = 20
	}
	return nil
}
