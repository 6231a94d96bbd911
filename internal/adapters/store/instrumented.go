package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

var (
	_ ports.TodoStore     = (*Instrumented)(nil)
	_ ports.HealthChecker = (*Instrumented)(nil)
)

const breakerName = "todo-store"

// Instrumented decorates a [ports.TodoStore] with a circuit breaker, one
// OpenTelemetry span per operation, and operation metrics:
//
//	Circuit Breaker → Span → inner store
//
// While the breaker is open every call fails fast with [domain.ErrUnavailable]
// without reaching the database. Only infrastructure errors count as
// failures: canceled requests and domain outcomes returned from a transaction
// body (not found, validation) leave the breaker untouched.
type Instrumented struct {
	inner   ports.TodoStore
	system  string
	breaker *gobreaker.CircuitBreaker[struct{}]
	tracer  trace.Tracer
	metrics *telemetry.Metrics
}

// NewInstrumented wraps inner. system names the database ("sqlite",
// "postgres") in spans and metrics. metrics may be nil.
func NewInstrumented(
	inner ports.TodoStore,
	cfg config.CircuitBreakerConfig,
	system string,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *Instrumented {
	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || isDomainOutcome(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Instrumented{
		inner:   inner,
		system:  system,
		breaker: cb,
		tracer:  otel.Tracer(telemetry.ScopeName),
		metrics: metrics,
	}
}

// Create implements [ports.TodoStore].
func (s *Instrumented) Create(ctx context.Context, e *todo.Entry) (*todo.Entry, error) {
	var out *todo.Entry
	err := s.do(ctx, "create", func(ctx context.Context) error {
		var err error
		out, err = s.inner.Create(ctx, e)
		return err
	})
	return out, err
}

// FindByID implements [ports.TodoStore].
func (s *Instrumented) FindByID(ctx context.Context, id int64) (*todo.Entry, bool, error) {
	var (
		out   *todo.Entry
		found bool
	)
	err := s.do(ctx, "find_by_id", func(ctx context.Context) error {
		var err error
		out, found, err = s.inner.FindByID(ctx, id)
		return err
	})
	return out, found, err
}

// FindPage implements [ports.TodoStore].
func (s *Instrumented) FindPage(ctx context.Context, req todo.PageRequest) (*todo.Page, error) {
	var out *todo.Page
	err := s.do(ctx, "find_page", func(ctx context.Context) error {
		var err error
		out, err = s.inner.FindPage(ctx, req)
		return err
	})
	return out, err
}

// ExistsByID implements [ports.TodoStore].
func (s *Instrumented) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.do(ctx, "exists_by_id", func(ctx context.Context) error {
		var err error
		exists, err = s.inner.ExistsByID(ctx, id)
		return err
	})
	return exists, err
}

// Save implements [ports.TodoStore].
func (s *Instrumented) Save(ctx context.Context, e *todo.Entry) (*todo.Entry, bool, error) {
	var (
		out   *todo.Entry
		found bool
	)
	err := s.do(ctx, "save", func(ctx context.Context) error {
		var err error
		out, found, err = s.inner.Save(ctx, e)
		return err
	})
	return out, found, err
}

// DeleteByID implements [ports.TodoStore].
func (s *Instrumented) DeleteByID(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := s.do(ctx, "delete_by_id", func(ctx context.Context) error {
		var err error
		deleted, err = s.inner.DeleteByID(ctx, id)
		return err
	})
	return deleted, err
}

// DeleteAllByID implements [ports.TodoStore].
func (s *Instrumented) DeleteAllByID(ctx context.Context, ids []int64) (int64, error) {
	var n int64
	err := s.do(ctx, "delete_all_by_id", func(ctx context.Context) error {
		var err error
		n, err = s.inner.DeleteAllByID(ctx, ids)
		return err
	})
	return n, err
}

// WithinTx implements [ports.TodoStore]. The whole transaction counts as one
// operation; statements issued through the transactional store are not
// instrumented individually.
func (s *Instrumented) WithinTx(ctx context.Context, fn func(tx ports.TodoStore) error) error {
	return s.do(ctx, "transaction", func(ctx context.Context) error {
		return s.inner.WithinTx(ctx, fn)
	})
}

// Name implements [ports.HealthChecker].
func (s *Instrumented) Name() string { return breakerName }

// HealthCheck reports the breaker state without touching the database.
func (s *Instrumented) HealthCheck(_ context.Context) error {
	switch state := s.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", breakerName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", breakerName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", breakerName, state)
	}
}

func (s *Instrumented) do(ctx context.Context, op string, fn func(context.Context) error) error {
	start := time.Now()

	_, err := s.breaker.Execute(func() (struct{}, error) {
		spanCtx, span := s.tracer.Start(ctx, "todo_store."+op,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				telemetry.AttrDBSystem.String(s.system),
				telemetry.AttrDBOperation.String(op),
			),
		)
		defer span.End()

		err := fn(spanCtx)
		if err != nil && !isDomainOutcome(err) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return struct{}{}, err
	})

	if isBreakerRejection(err) {
		err = fmt.Errorf("todo store %s: %w: %w", op, domain.ErrUnavailable, err)
	}

	s.recordMetrics(ctx, op, start, err)
	return err
}

func (s *Instrumented) recordMetrics(ctx context.Context, op string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}

	result := "success"
	switch {
	case isBreakerRejection(err):
		result = "circuit_open"
	case isDomainOutcome(err):
		result = "rejected"
	case err != nil:
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String(s.system),
		telemetry.AttrDBOperation.String(op),
		telemetry.AttrResult.String(result),
	)
	s.metrics.DBOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.metrics.DBOperationTotal.Add(ctx, 1, attrs)
}

// isDomainOutcome reports whether err is a business result raised inside a
// transaction body rather than a database failure.
func isDomainOutcome(err error) bool {
	return errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation)
}

func isBreakerRejection(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// toUint32 converts v to uint32, clamping negatives to 0.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
