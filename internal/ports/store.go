package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// TodoStore is the persistence port for todo entries. It carries no business
// logic and never produces domain.ErrNotFound itself: absence is reported
// through the found/deleted booleans. The store stamps CreatedAt and
// UpdatedAt on every write.
type TodoStore interface {
	// Create inserts entry and returns it with ID, CreatedAt and UpdatedAt set.
	Create(ctx context.Context, entry *todo.Entry) (*todo.Entry, error)

	// FindByID returns the entry with the given ID, or found=false.
	// Inside WithinTx the row is locked until the transaction ends.
	FindByID(ctx context.Context, id int64) (entry *todo.Entry, found bool, err error)

	// FindPage returns the requested page plus total counts.
	FindPage(ctx context.Context, req todo.PageRequest) (*todo.Page, error)

	// ExistsByID reports whether an entry with the given ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// Save persists the mutable fields of an existing entry and refreshes
	// UpdatedAt. It never inserts: found=false means the row is gone.
	Save(ctx context.Context, entry *todo.Entry) (saved *todo.Entry, found bool, err error)

	// DeleteByID removes the entry and reports whether a row was deleted.
	DeleteByID(ctx context.Context, id int64) (deleted bool, err error)

	// DeleteAllByID removes every listed entry that exists and returns the
	// number of deleted rows.
	DeleteAllByID(ctx context.Context, ids []int64) (int64, error)

	// WithinTx runs fn in a single transaction. The TodoStore passed to fn is
	// bound to that transaction; returning an error rolls it back.
	WithinTx(ctx context.Context, fn func(tx TodoStore) error) error
}
