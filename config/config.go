package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Event feed sources.
const (
	EventsSourceFile     = "file"
	EventsSourcePostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string

	// PublicDir is the public asset directory; the Luma export lives inside it.
	PublicDir string

	// EventsSource selects where the Luma export is read from: "file" or "postgres".
	EventsSource string
	DBUrl        string

	CORSAllowedOrigins []string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production .env might not exist and we rely on system environment variables.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:        env,
		Port:               getEnv("PORT", "8080"),
		PublicDir:          getEnv("PUBLIC_DIR", "public"),
		EventsSource:       strings.ToLower(getEnv("EVENTS_SOURCE", EventsSourceFile)),
		DBUrl:              os.Getenv("DATABASE_URL"),
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}

	var err error
	if cfg.ReadTimeout, err = getDuration("READ_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.WriteTimeout, err = getDuration("WRITE_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.IdleTimeout, err = getDuration("IDLE_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}

	switch cfg.EventsSource {
	case EventsSourceFile:
	case EventsSourcePostgres:
		if cfg.DBUrl == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when EVENTS_SOURCE=%s", EventsSourcePostgres)
		}
	default:
		return nil, fmt.Errorf("unsupported EVENTS_SOURCE %q", cfg.EventsSource)
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
