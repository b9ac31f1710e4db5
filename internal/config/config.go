package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name        string `envconfig:"APP_NAME" default:"Leasedesk"`
		Port        int    `envconfig:"PORT" default:"8080"`
		AutoMigrate bool   `envconfig:"AUTO_MIGRATE" default:"false"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"leasedesk"`
		SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
		Issuer    string        `envconfig:"JWT_ISSUER" default:"leasedesk"`
		TokenTTL  time.Duration `envconfig:"JWT_TTL" default:"12h"`
	}

	Workflow struct {
		// Upper bound on waiting for a row lock held by a concurrent request.
		LockTimeout  time.Duration `envconfig:"LOCK_TIMEOUT" default:"5s"`
		NotifyBuffer int           `envconfig:"NOTIFY_BUFFER" default:"64"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name, c.DB.SSLMode)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.Workflow.LockTimeout <= 0 {
		return nil, fmt.Errorf("LOCK_TIMEOUT must be positive, got %s", cfg.Workflow.LockTimeout)
	}

	return &cfg, nil
}
