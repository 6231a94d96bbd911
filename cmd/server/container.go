package main

import (
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/samber/do/v2"
	"gorm.io/gorm"

	adapthttp "github.com/jsamuelsen11/todo-service/internal/adapters/http"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-service/internal/adapters/store"
	"github.com/jsamuelsen11/todo-service/internal/app"
	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/platform/database"
	"github.com/jsamuelsen11/todo-service/internal/platform/health"
	"github.com/jsamuelsen11/todo-service/internal/platform/messages"
	"github.com/jsamuelsen11/todo-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// newContainer registers the service graph. Nothing is constructed until a
// value is invoked. metrics may be nil when telemetry is disabled.
func newContainer(cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) *do.RootScope {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, metrics)

	do.Provide(injector, func(_ do.Injector) (*gorm.DB, error) {
		return database.Open(cfg.Database, logger)
	})

	do.Provide(injector, func(_ do.Injector) (ports.MessageResolver, error) {
		return messages.Default()
	})

	do.Provide(injector, func(i do.Injector) (*store.Instrumented, error) {
		db := do.MustInvoke[*gorm.DB](i)
		inner := store.NewGormStore(db, store.WithQueryTimeout(cfg.Database.QueryTimeout))
		return store.NewInstrumented(inner, cfg.Database.CircuitBreaker, cfg.Database.Driver, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoService, error) {
		todoStore := do.MustInvoke[*store.Instrumented](i)
		msgs := do.MustInvoke[ports.MessageResolver](i)
		return app.NewTodoService(todoStore, msgs, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*dto.ErrorTranslator, error) {
		msgs := do.MustInvoke[ports.MessageResolver](i)
		return dto.NewErrorTranslator(msgs, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TodoHandler, error) {
		svc := do.MustInvoke[ports.TodoService](i)
		errs := do.MustInvoke[*dto.ErrorTranslator](i)
		return handlers.NewTodoHandler(svc, errs), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		todoH := do.MustInvoke[*handlers.TodoHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		errs := do.MustInvoke[*dto.ErrorTranslator](i)

		return adapthttp.NewRouter(todoH, healthH,
			middleware.Recovery(logger, errs),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.RateLimit(cfg.RateLimit, logger),
			middleware.Timeout(handlerTimeout(cfg.Server), errs),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})

	return injector
}

// registerHealthChecks adds the readiness checks once the graph is wired.
func registerHealthChecks(injector do.Injector) error {
	registry, err := do.Invoke[ports.HealthRegistry](injector)
	if err != nil {
		return err
	}
	db, err := do.Invoke[*gorm.DB](injector)
	if err != nil {
		return err
	}
	todoStore, err := do.Invoke[*store.Instrumented](injector)
	if err != nil {
		return err
	}

	registry.Register(database.NewHealthChecker(db))
	registry.Register(todoStore)
	return nil
}

// handlerTimeout leaves part of the write timeout for sending the ApiError
// that the Timeout middleware writes when a handler overruns.
func handlerTimeout(cfg config.ServerConfig) time.Duration {
	return cfg.WriteTimeout * 9 / 10
}
