package config

const (
	defaultServerPort = 8080

	defaultMaxOpenConns = 10
	defaultMaxIdleConns = 2

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"database.driver":                          "sqlite",
		"database.dsn":                             "todo.db",
		"database.max_open_conns":                  defaultMaxOpenConns,
		"database.max_idle_conns":                  defaultMaxIdleConns,
		"database.conn_max_lifetime":               "30m",
		"database.query_timeout":                   "3s",
		"database.auto_migrate":                    false,
		"database.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"database.circuit_breaker.timeout":         "30s",
		"database.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"rate_limit.requests_per_second": 0,
		"rate_limit.burst":               0,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todo-service",
	}
}
