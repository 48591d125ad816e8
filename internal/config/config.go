package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

// Config holds the main configuration for the application.
type Config struct {
	Server Server         `mapstructure:"server"`
	Remote Remote         `mapstructure:"remote"`
	Sync   Sync           `mapstructure:"sync"`
	Retry  retry.Strategy `mapstructure:"retry"` // startup readiness probe only
}

// Server holds HTTP server-related configuration.
type Server struct {
	HTTPPort string `mapstructure:"http_port"` // HTTP port to listen on
}

// Remote holds the connection parameters of the notifier service this
// board mirrors.
type Remote struct {
	BaseURL  string        `mapstructure:"base_url"`  // scheme://host:port of the notifier
	BasePath string        `mapstructure:"base_path"` // path prefix, "" or "/api"; fixed at startup
	Timeout  time.Duration `mapstructure:"timeout"`   // per-request timeout
}

// Sync holds the periodic cache refresh configuration.
type Sync struct {
	Interval time.Duration `mapstructure:"interval"` // delay between full refreshes
}

// Endpoint returns the remote base URL joined with the configured base path.
func (r Remote) Endpoint() string {
	return strings.TrimRight(r.BaseURL, "/") + r.BasePath
}

// mustBindEnv binds critical environment variables to Viper keys.
//
// It panics if any environment variable cannot be bound.
func mustBindEnv() {
	bindings := map[string]string{
		"server.http_port": "HTTP_PORT",

		"remote.base_url":  "NOTIFIER_BASE_URL",
		"remote.base_path": "NOTIFIER_BASE_PATH",

		"sync.interval": "SYNC_INTERVAL",
	}

	for key, env := range bindings {
		if err := viper.BindEnv(key, env); err != nil {
			zlog.Logger.Panic().Err(err).Msgf("failed to bind env %s", env)
		}
	}
}

// Must loads and validates the configuration from file and environment variables.
//
// It panics if configuration cannot be read or unmarshalled.
func Must() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		zlog.Logger.Panic().Err(err).Msg("failed to read config")
	}

	mustBindEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		zlog.Logger.Panic().Err(err).Msgf("failed to unmarshal config: %v", err)
	}

	if cfg.Sync.Interval <= 0 {
		cfg.Sync.Interval = 30 * time.Second
	}
	if cfg.Remote.Timeout <= 0 {
		cfg.Remote.Timeout = 10 * time.Second
	}

	return &cfg
}
