// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/handlers"
)

// Messages for requests that match no route.
const (
	msgRouteNotFound    = "No handler for the requested path"
	msgMethodNotAllowed = "Method not supported for the requested path"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	todoHandler *handlers.TodoHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		dto.WriteAPIError(w, http.StatusNotFound, dto.NewAPIError(http.StatusNotFound, msgRouteNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		dto.WriteAPIError(w, http.StatusMethodNotAllowed,
			dto.NewAPIError(http.StatusMethodNotAllowed, msgMethodNotAllowed))
	})

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route(handlers.TodoBasePath, func(r chi.Router) {
		r.Get("/", todoHandler.ListTodos)
		r.Post("/", todoHandler.CreateTodo)
		r.Delete("/", todoHandler.DeleteTodos)
		r.Get("/{id}", todoHandler.GetTodo)
		r.Put("/{id}", todoHandler.UpdateTodo)
		r.Delete("/{id}", todoHandler.DeleteTodo)
	})

	return r
}
