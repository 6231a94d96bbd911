// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService on top of a TodoStore. It turns
// store absence into *domain.NotFoundError with a localized message and keeps
// read-modify-write sequences inside one store transaction.
type TodoService struct {
	store    ports.TodoStore
	messages ports.MessageResolver
	logger   *slog.Logger
}

// NewTodoService creates a TodoService. A nil logger discards output.
func NewTodoService(store ports.TodoStore, messages ports.MessageResolver, logger *slog.Logger) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoService{
		store:    store,
		messages: messages,
		logger:   logger,
	}
}

// GetTodos returns one page of entries.
func (s *TodoService) GetTodos(ctx context.Context, req todo.PageRequest) (*todo.Page, error) {
	s.log(ctx).InfoContext(ctx, "listing todo entries",
		slog.Int("page", req.Page),
		slog.Int("size", req.Size),
		slog.String("sort", string(req.SortField)),
		slog.String("direction", string(req.Direction)),
	)

	page, err := s.store.FindPage(ctx, req)
	if err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to list todo entries",
			slog.String("operation", "GetTodos"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return page, nil
}

// GetTodoByID returns the entry with id.
func (s *TodoService) GetTodoByID(ctx context.Context, id int64) (*todo.Entry, error) {
	entry, found, err := s.store.FindByID(ctx, id)
	if err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to fetch todo entry",
			slog.String("operation", "GetTodoByID"),
			slog.Int64("todo_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	if !found {
		return nil, s.notFound(ctx, "GetTodoByID", id)
	}
	return entry, nil
}

// CreateTodo stores a new entry built from the client-editable fields of
// entry. New entries always start not done.
func (s *TodoService) CreateTodo(ctx context.Context, entry *todo.Entry) (*todo.Entry, error) {
	fresh := &todo.Entry{}
	fresh.Overwrite(entry)

	created, err := s.store.Create(ctx, fresh)
	if err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to create todo entry",
			slog.String("operation", "CreateTodo"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.log(ctx).InfoContext(ctx, "todo entry created", slog.Int64("todo_id", created.ID))
	return created, nil
}

// UpdateTodo overwrites title, description and expiry of the entry with id.
// The read and the write share one transaction, so a concurrent delete makes
// the update fail with NotFound instead of recreating the row.
func (s *TodoService) UpdateTodo(ctx context.Context, id int64, changes *todo.Entry) (*todo.Entry, error) {
	var updated *todo.Entry

	err := s.store.WithinTx(ctx, func(tx ports.TodoStore) error {
		existing, found, err := tx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return s.notFound(ctx, "UpdateTodo", id)
		}

		existing.Overwrite(changes)

		saved, found, err := tx.Save(ctx, existing)
		if err != nil {
			return err
		}
		if !found {
			return s.notFound(ctx, "UpdateTodo", id)
		}
		updated = saved
		return nil
	})
	if err != nil {
		if !isNotFound(err) {
			s.log(ctx).ErrorContext(ctx, "failed to update todo entry",
				slog.String("operation", "UpdateTodo"),
				slog.Int64("todo_id", id),
				slog.Any("error", err),
			)
		}
		return nil, err
	}

	s.log(ctx).InfoContext(ctx, "todo entry updated", slog.Int64("todo_id", id))
	return updated, nil
}

// DeleteTodo removes the entry with id with a single conditional delete.
func (s *TodoService) DeleteTodo(ctx context.Context, id int64) error {
	deleted, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to delete todo entry",
			slog.String("operation", "DeleteTodo"),
			slog.Int64("todo_id", id),
			slog.Any("error", err),
		)
		return err
	}
	if !deleted {
		return s.notFound(ctx, "DeleteTodo", id)
	}

	s.log(ctx).InfoContext(ctx, "todo entry deleted", slog.Int64("todo_id", id))
	return nil
}

// DeleteTodos removes every listed entry that exists and returns how many
// were removed. Duplicate ids are collapsed.
func (s *TodoService) DeleteTodos(ctx context.Context, ids []int64) (int64, error) {
	unique := dedupe(ids)
	if len(unique) == 0 {
		return 0, nil
	}

	n, err := s.store.DeleteAllByID(ctx, unique)
	if err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to delete todo entries",
			slog.String("operation", "DeleteTodos"),
			slog.Int("requested", len(unique)),
			slog.Any("error", err),
		)
		return 0, err
	}

	s.log(ctx).InfoContext(ctx, "todo entries deleted",
		slog.Int("requested", len(unique)),
		slog.Int64("deleted", n),
	)
	return n, nil
}

func (s *TodoService) notFound(ctx context.Context, op string, id int64) error {
	s.log(ctx).WarnContext(ctx, "todo entry not found",
		slog.String("operation", op),
		slog.Int64("todo_id", id),
	)
	return &domain.NotFoundError{ID: id, Message: s.messages.Message(ports.MsgNotFound, id)}
}

// log prefers the request-scoped logger carrying request and correlation ids.
func (s *TodoService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
