package ports

import "context"

// HealthChecker is implemented by components that can report their health,
// such as the database connection.
type HealthChecker interface {
	// Name identifies the component in readiness output (e.g. "database").
	Name() string

	// HealthCheck returns nil when healthy. Implementations must respect
	// ctx deadlines.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers and runs them for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns each checker's outcome keyed by name. Nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
