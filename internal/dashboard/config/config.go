package config

import (
	"time"

	"stock-sentiment-dashboard/pkg/common"
	"stock-sentiment-dashboard/pkg/config"
)

// Backend holds the analytics backend settings.
type Backend struct {
	BaseURL string `mapstructure:"base_url"`
	// Timeout of a single backend call; 0 keeps the transport default (no timeout).
	Timeout time.Duration `mapstructure:"timeout"`
	// MaxRequestPerMinute throttles outbound calls; 0 disables throttling.
	MaxRequestPerMinute int `mapstructure:"max_request_per_minute"`
}

// Dashboard holds view defaults.
type Dashboard struct {
	SeedKeyword string `mapstructure:"seed_keyword"`
}

// Session holds per-browser session settings.
type Session struct {
	// Store is "memory" or "redis".
	Store      string        `mapstructure:"store"`
	TTL        time.Duration `mapstructure:"ttl"`
	CookieName string        `mapstructure:"cookie_name"`
}

// Config holds the full configuration for the dashboard service.
type Config struct {
	App       config.App    `mapstructure:"app"`
	Logger    config.Logger `mapstructure:"logger"`
	API       config.API    `mapstructure:"api"`
	Redis     config.Redis  `mapstructure:"redis"`
	Backend   Backend       `mapstructure:"backend"`
	Dashboard Dashboard     `mapstructure:"dashboard"`
	Session   Session       `mapstructure:"session"`
}

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

var defaults = map[string]interface{}{
	"app.name":                       "stock-sentiment-dashboard",
	"app.env":                        "development",
	"app.version":                    "1.0.0",
	"logger.level":                   "info",
	"logger.encoding":                "json",
	"api.host":                       "",
	"api.port":                       8080,
	"redis.host":                     "localhost",
	"redis.port":                     6379,
	"redis.password":                 "",
	"redis.db":                       0,
	"redis.pool_size":                10,
	"backend.base_url":               common.DefaultBackendBaseURL,
	"backend.timeout":                "0s",
	"backend.max_request_per_minute": 0,
	"dashboard.seed_keyword":         common.DefaultSeedKeyword,
	"session.store":                  SessionStoreMemory,
	"session.ttl":                    "30m",
	"session.cookie_name":            common.SessionCookieName,
}

// Load loads the dashboard configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	err := config.Load(path, &cfg, config.Options{
		Defaults: defaults,
		EnvAliases: map[string][]string{
			"backend.base_url": {"BACKEND_BASE_URL", "API_BASE"},
		},
	})
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
