// Package config loads per-service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config carries the settings shared by every service binary. Each main
// loads a .env file first (when present) and then fills this struct.
type Config struct {
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`
	DBURL    string `envconfig:"DB_URL"`
	RedisURL string `envconfig:"REDIS_URL"`

	// Profile lookup collaborator (notification service only).
	UserServiceURL      string        `envconfig:"USER_SERVICE_URL" default:"http://userservice:8080"`
	ProfileTimeout      time.Duration `envconfig:"PROFILE_TIMEOUT" default:"3s"`
	ProfileCacheTTL     time.Duration `envconfig:"PROFILE_CACHE_TTL" default:"10m"`
	SMTPAddr            string        `envconfig:"SMTP_ADDR"`
	SMTPFrom            string        `envconfig:"SMTP_FROM" default:"noreply@adottato.local"`
	EventbusConcurrency int           `envconfig:"EVENTBUS_CONCURRENCY" default:"10"`
}

// Load fills a Config from the environment.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return c, nil
}
