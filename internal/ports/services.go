package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// TodoService defines the service port for todo entry operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Inputs are assumed shape-validated by the caller.
type TodoService interface {
	// GetTodos returns one page of entries in store order. A page beyond the
	// available data yields empty Items with correct totals, never an error.
	GetTodos(ctx context.Context, req todo.PageRequest) (*todo.Page, error)

	// GetTodoByID returns a single entry.
	// Returns a *domain.NotFoundError if the entry does not exist.
	GetTodoByID(ctx context.Context, id int64) (*todo.Entry, error)

	// CreateTodo persists a new entry. ID, IsDone and the audit timestamps of
	// the argument are ignored; the store assigns them.
	CreateTodo(ctx context.Context, entry *todo.Entry) (*todo.Entry, error)

	// UpdateTodo overwrites title, description and expiry of an existing entry.
	// IsDone is left unchanged.
	// Returns a *domain.NotFoundError if the entry does not exist.
	UpdateTodo(ctx context.Context, id int64, changes *todo.Entry) (*todo.Entry, error)

	// DeleteTodo removes an entry.
	// Returns a *domain.NotFoundError if the entry does not exist.
	DeleteTodo(ctx context.Context, id int64) error

	// DeleteTodos removes every listed entry that exists. Missing ids are
	// ignored. Returns the number of removed entries.
	DeleteTodos(ctx context.Context, ids []int64) (int64, error)
}
