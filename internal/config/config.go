package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// App holds the process configuration read from the environment
type App struct {
	// DB
	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     string `envconfig:"DB_PORT" required:"true"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" required:"true"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// Session
	SessionSecret       string `envconfig:"SESSION_SECRET" required:"true"`
	SessionTTLHours     int    `envconfig:"SESSION_TTL_HOURS" default:"168"`
	SessionCookieName   string `envconfig:"SESSION_COOKIE_NAME" default:"laundry.sid"`
	SessionCookieSecure bool   `envconfig:"SESSION_COOKIE_SECURE" default:"false"`

	// HTTP
	ServerPort string `envconfig:"SERVER_PORT" default:"8080"`
	CORSOrigin string `envconfig:"CORS_ORIGIN" default:"http://localhost:5173"`
	GinMode    string `envconfig:"GIN_MODE" default:"debug"`

	// Logging
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogDev   bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load reads the configuration from environment variables
func Load() (*App, error) {
	var c App
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if c.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET must not be empty")
	}
	if c.SessionTTLHours <= 0 {
		return nil, fmt.Errorf("SESSION_TTL_HOURS must be positive, got %d", c.SessionTTLHours)
	}
	return &c, nil
}

// DSN builds the PostgreSQL connection string
func (c *App) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// SessionTTL is the session lifetime as a duration
func (c *App) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}
