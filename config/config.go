package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Slot backends accepted by SLOT_BACKEND.
const (
	SlotBackendMemory   = "memory"
	SlotBackendFile     = "file"
	SlotBackendPostgres = "postgres"
	SlotBackendSQLite   = "sqlite"
	SlotBackendRedis    = "redis"
)

// devJWTSecret is used outside production when JWT_SECRET is unset.
const devJWTSecret = "eventbooking-dev-secret"

// Config holds all configuration for the application
type Config struct {
	Environment string `env:"GO_ENV" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"8080"`

	// Durable slot for the signed-in identity
	SlotBackend string `env:"SLOT_BACKEND" envDefault:"file"`
	SlotDir     string `env:"SLOT_DIR" envDefault:"./data"`
	SlotKey     string `env:"SLOT_KEY" envDefault:"user"`
	DBUrl       string `env:"DATABASE_URL"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"./data/session.db"`
	RedisURL    string `env:"REDIS_URL"`
	RedisPrefix string `env:"REDIS_PREFIX" envDefault:"eventbooking:"`

	SessionDelay time.Duration `env:"SESSION_DELAY" envDefault:"1s"`
	JWTSecret    string        `env:"JWT_SECRET"`
	JWTExpiry    time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	MailProvider       string `env:"MAIL_PROVIDER" envDefault:"noop"`
	MailFromAddress    string `env:"MAIL_FROM_ADDRESS"`
	MailFromName       string `env:"MAIL_FROM_NAME" envDefault:"EventHub"`
	AWSRegion          string `env:"AWS_REGION"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
}

// IsProduction reports whether GO_ENV is production.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// ServerAddr returns the listen address for the HTTP server.
func (c Config) ServerAddr() string {
	return ":" + c.Port
}

// AllowedOrigins returns the trimmed, non-empty CORS origins.
func (c Config) AllowedOrigins() []string {
	out := make([]string, 0, len(c.CORSAllowedOrigins))
	for _, o := range c.CORSAllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	// In production .env might not exist and we rely on system environment variables
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	return parse(env.ToMap(os.Environ()))
}

func parse(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.SlotBackend {
	case SlotBackendMemory, SlotBackendFile, SlotBackendSQLite:
	case SlotBackendPostgres:
		if c.DBUrl == "" {
			return errors.New("DATABASE_URL is required when SLOT_BACKEND=postgres")
		}
	case SlotBackendRedis:
		if c.RedisURL == "" {
			return errors.New("REDIS_URL is required when SLOT_BACKEND=redis")
		}
	default:
		return fmt.Errorf("unknown SLOT_BACKEND %q", c.SlotBackend)
	}
	if c.SlotKey == "" {
		return errors.New("SLOT_KEY must not be empty")
	}
	if c.SessionDelay < 0 {
		return errors.New("SESSION_DELAY must not be negative")
	}
	if c.JWTExpiry <= 0 {
		return errors.New("JWT_EXPIRY must be positive")
	}
	if c.JWTSecret == "" {
		if c.IsProduction() {
			return errors.New("JWT_SECRET is required in production")
		}
		log.Printf("Warning: JWT_SECRET not set, using development secret")
		c.JWTSecret = devJWTSecret
	}
	return nil
}
