package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from
// environment variables or a .env file.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	RATES_API_URL=https://api.example.com/api/ws_api.php
//	RATES_API_USERNAME=acme
//	RATES_API_PASSWORD=secret
//	RATES_API_TIMEOUT_SECONDS=15
//	CACHE_MAX_ENTRIES=1000
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Upstream UpstreamConfig // inventory provider connection settings
	Cache    CacheConfig    // in-process cache sizing
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// UpstreamConfig defines how to reach the third-party inventory API.
//
// Fields:
//   - URL: the single RPC endpoint every operation is POSTed to.
//   - Username / Password: credentials sent in each request envelope.
//   - Timeout: per-attempt HTTP timeout.
//
// Credentials intentionally have no defaults; validateConfig terminates
// the app when they are missing.
type UpstreamConfig struct {
	URL      string
	Username string
	Password string
	Timeout  time.Duration
}

// CacheConfig bounds the in-process TTL cache.
type CacheConfig struct {
	MaxEntries int64
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the
// application. All services should import this package and read from
// AppConfig instead of reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from a .env
// file or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() terminates
//     the app with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("RATES_API_TIMEOUT_SECONDS", 15)
	viper.SetDefault("CACHE_MAX_ENTRIES", 1000)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Upstream: UpstreamConfig{
			URL:      viper.GetString("RATES_API_URL"),
			Username: viper.GetString("RATES_API_USERNAME"),
			Password: viper.GetString("RATES_API_PASSWORD"),
			Timeout:  time.Duration(viper.GetInt("RATES_API_TIMEOUT_SECONDS")) * time.Second,
		},
		Cache: CacheConfig{
			MaxEntries: viper.GetInt64("CACHE_MAX_ENTRIES"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete
// configuration: a service without upstream credentials can only ever
// return errors.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Upstream.URL == "" {
		missing = append(missing, "RATES_API_URL")
	}
	if AppConfig.Upstream.Username == "" {
		missing = append(missing, "RATES_API_USERNAME")
	}
	if AppConfig.Upstream.Password == "" {
		missing = append(missing, "RATES_API_PASSWORD")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
