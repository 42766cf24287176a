// Package config loads and validates application configuration from
// environment variables, optionally layered over a YAML file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Config holds all configuration values for the API server.
// Values are populated by Load.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64

	// RedisURL enables the ride cache when set (redis://host:port/db).
	RedisURL string

	// CacheTTL is how long a cached ride stays in Redis.
	CacheTTL time.Duration

	// RabbitMQURL enables ride.created events when set (amqp://...).
	RabbitMQURL string

	// RabbitMQExchange is the topic exchange events are published to.
	RabbitMQExchange string
}

// keys maps each viper key to the environment variable it is read from.
var keys = map[string]string{
	"port":              "PORT",
	"database_url":      "DATABASE_URL",
	"log_level":         "LOG_LEVEL",
	"cors_origins":      "CORS_ORIGINS",
	"max_body_bytes":    "MAX_BODY_BYTES",
	"redis_url":         "REDIS_URL",
	"cache_ttl":         "CACHE_TTL",
	"rabbitmq_url":      "RABBITMQ_URL",
	"rabbitmq_exchange": "RABBITMQ_EXCHANGE",
}

// Load reads configuration and returns a Config.
// If CONFIG_FILE names a YAML file its values are read first; environment
// variables always win. Empty environment variables count as unset.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	v := viper.New()
	v.AllowEmptyEnv(false)
	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("cors_origins", "http://localhost:5173")
	v.SetDefault("max_body_bytes", int64(1<<20))
	v.SetDefault("cache_ttl", 10*time.Minute)
	v.SetDefault("rabbitmq_exchange", "rides")

	for key, env := range keys {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("config.Load: bind %s: %w", env, err)
		}
	}
	if err := v.BindEnv("config_file", "CONFIG_FILE"); err != nil {
		return Config{}, fmt.Errorf("config.Load: bind CONFIG_FILE: %w", err)
	}

	if path := v.GetString("config_file"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config.Load: read %s: %w", path, err)
		}
	}

	origins, err := originsOf(v.Get("cors_origins"))
	if err != nil {
		return Config{}, fmt.Errorf("config.Load: CORS_ORIGINS: %w", err)
	}
	maxBody, err := cast.ToInt64E(v.Get("max_body_bytes"))
	if err != nil || maxBody <= 0 {
		return Config{}, fmt.Errorf("config.Load: MAX_BODY_BYTES must be a positive integer, got %v", v.Get("max_body_bytes"))
	}
	ttl, err := cast.ToDurationE(v.Get("cache_ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("config.Load: CACHE_TTL: %w", err)
	}

	cfg := Config{
		Port:             v.GetString("port"),
		DatabaseURL:      v.GetString("database_url"),
		LogLevel:         v.GetString("log_level"),
		CORSOrigins:      origins,
		MaxBodyBytes:     maxBody,
		RedisURL:         v.GetString("redis_url"),
		CacheTTL:         ttl,
		RabbitMQURL:      v.GetString("rabbitmq_url"),
		RabbitMQExchange: v.GetString("rabbitmq_exchange"),
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// originsOf accepts either a comma-separated string (environment) or a
// YAML list (config file).
func originsOf(raw any) ([]string, error) {
	if s, ok := raw.(string); ok {
		return splitCSV(s), nil
	}
	list, err := cast.ToStringSliceE(raw)
	if err != nil {
		return nil, err
	}
	return splitCSV(strings.Join(list, ",")), nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
