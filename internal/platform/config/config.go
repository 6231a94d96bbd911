// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Database  DatabaseConfig  `koanf:"database"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// DatabaseConfig holds relational store settings.
type DatabaseConfig struct {
	// Driver selects the SQL dialect: "sqlite" or "postgres".
	Driver          string               `koanf:"driver"`
	DSN             string               `koanf:"dsn"`
	MaxOpenConns    int                  `koanf:"max_open_conns"`
	MaxIdleConns    int                  `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration        `koanf:"conn_max_lifetime"`
	QueryTimeout    time.Duration        `koanf:"query_timeout"`
	AutoMigrate     bool                 `koanf:"auto_migrate"`
	CircuitBreaker  CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds inbound token-bucket settings. A zero
// RequestsPerSecond disables rate limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
