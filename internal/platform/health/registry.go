// Package health provides the registry behind the readiness endpoint.
// Components that can fail independently of the process, such as the
// database, register a checker at startup.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/todo-service/internal/platform/fanout"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

const (
	defaultCheckTimeout = 2 * time.Second
	maxParallelChecks   = 4
)

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds how long a single checker may run.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		r.timeout = d
	}
}

// Registry is a concurrency-safe [ports.HealthRegistry].
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
	timeout  time.Duration
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{timeout: defaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a checker.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every registered check in parallel, each under its own
// timeout, and returns the outcomes keyed by checker name. A nil value means
// healthy. When two checkers share a name the later registration wins.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	outcomes := fanout.Run(ctx, maxParallelChecks, checkers, func(ctx context.Context, c ports.HealthChecker) (struct{}, error) {
		ctx, cancel := context.WithTimeout(ctx, r.timeout)
		defer cancel()
		return struct{}{}, c.HealthCheck(ctx)
	})

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = outcomes[i].Err
	}
	return results
}
