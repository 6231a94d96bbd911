package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/todo-service/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver = %q, want \"sqlite\"", cfg.Database.Driver)
	}
	if !cfg.Database.AutoMigrate {
		t.Error("Database.AutoMigrate = false, want true for local")
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("Database.Driver = %q, want \"postgres\"", cfg.Database.Driver)
	}
	if cfg.Database.AutoMigrate {
		t.Error("Database.AutoMigrate = true, want false for prod")
	}
	if cfg.RateLimit.RequestsPerSecond <= 0 {
		t.Errorf("RateLimit.RequestsPerSecond = %v, want > 0 for prod", cfg.RateLimit.RequestsPerSecond)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Telemetry.Endpoint == "" {
		t.Error("Telemetry.Endpoint is empty, want non-empty for prod")
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.Database.QueryTimeout != 3*time.Second {
		t.Errorf("Database.QueryTimeout = %v, want 3s (from base)", cfg.Database.QueryTimeout)
	}
	if cfg.Database.CircuitBreaker.MaxFailures != 5 {
		t.Errorf("Database.CircuitBreaker.MaxFailures = %d, want 5 (from base)",
			cfg.Database.CircuitBreaker.MaxFailures)
	}
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "log:\n  level: warn\n")
	writeFile(t, filepath.Join(dir, "test.yaml"), "server:\n  port: 9999\n")

	cfg, err := config.Load("test", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999 (from profile)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want \"warn\" (from base)", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\" (default)", cfg.Log.Format)
	}
	if cfg.Database.MaxOpenConns != 10 {
		t.Errorf("Database.MaxOpenConns = %d, want 10 (default)", cfg.Database.MaxOpenConns)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 5s (default)", cfg.Server.ReadTimeout)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env override)", cfg.Server.Port)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")
	t.Setenv("APP_DATABASE_DSN", "file::memory:")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := 15 * time.Second
	if cfg.Server.ReadTimeout != want {
		t.Errorf("Server.ReadTimeout = %v, want %v (env override)", cfg.Server.ReadTimeout, want)
	}
	if cfg.Database.DSN != "file::memory:" {
		t.Errorf("Database.DSN = %q, want \"file::memory:\" (env override)", cfg.Database.DSN)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_DATABASE_CIRCUIT_BREAKER_MAX_FAILURES", "7")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Database.CircuitBreaker.MaxFailures != 7 {
		t.Errorf("Database.CircuitBreaker.MaxFailures = %d, want 7 (env override)",
			cfg.Database.CircuitBreaker.MaxFailures)
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestLoad_RejectsUnsafeProfile(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", `a\b`, "x/y"} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for port=0")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_Database(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.DatabaseConfig)
		wantMsg string
	}{
		{
			name:    "unknown driver",
			mutate:  func(d *config.DatabaseConfig) { d.Driver = "mysql" },
			wantMsg: "database.driver",
		},
		{
			name:    "empty dsn",
			mutate:  func(d *config.DatabaseConfig) { d.DSN = "" },
			wantMsg: "database.dsn",
		},
		{
			name:    "no connections",
			mutate:  func(d *config.DatabaseConfig) { d.MaxOpenConns = 0 },
			wantMsg: "database.max_open_conns",
		},
		{
			name:    "zero query timeout",
			mutate:  func(d *config.DatabaseConfig) { d.QueryTimeout = 0 },
			wantMsg: "database.query_timeout",
		},
		{
			name:    "breaker never trips",
			mutate:  func(d *config.DatabaseConfig) { d.CircuitBreaker.MaxFailures = 0 },
			wantMsg: "database.circuit_breaker.max_failures",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.mutate(&cfg.Database)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() returned nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Validate() error = %q, want it to mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestValidate_RateLimitRequiresBurst(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.RateLimit.RequestsPerSecond = 10
	cfg.RateLimit.Burst = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for rate limit without burst")
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Database: config.DatabaseConfig{
			Driver:          "sqlite",
			DSN:             "todo.db",
			MaxOpenConns:    10,
			MaxIdleConns:    2,
			ConnMaxLifetime: 30 * time.Minute,
			QueryTimeout:    3 * time.Second,
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
		Telemetry: config.TelemetryConfig{
			Enabled:     false,
			Exporter:    "stdout",
			ServiceName: "todo-service",
		},
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
