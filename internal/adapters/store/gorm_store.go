// Package store implements [ports.TodoStore] on a relational database via
// GORM, plus a decorator that adds tracing, metrics and a circuit breaker.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

var _ ports.TodoStore = (*GormStore)(nil)

const defaultQueryTimeout = 3 * time.Second

// updatableColumns are the columns Save writes. created_at is never rewritten.
var updatableColumns = []string{"title", "description", "is_done", "expires_at", "updated_at"}

// Option configures a GormStore.
type Option func(*GormStore)

// WithQueryTimeout bounds every statement the store issues.
func WithQueryTimeout(d time.Duration) Option {
	return func(s *GormStore) {
		if d > 0 {
			s.queryTimeout = d
		}
	}
}

// WithClock replaces the time source used for audit timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *GormStore) {
		s.now = now
	}
}

// GormStore persists todo entries in the todo_entries table.
type GormStore struct {
	db           *gorm.DB
	queryTimeout time.Duration
	now          func() time.Time
	inTx         bool
}

// NewGormStore creates a store on db. The schema must already be migrated.
func NewGormStore(db *gorm.DB, opts ...Option) *GormStore {
	s := &GormStore{
		db:           db,
		queryTimeout: defaultQueryTimeout,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create inserts e and returns the stored entry with its assigned id and
// identical createdAt and updatedAt stamps. Any id on e is ignored.
func (s *GormStore) Create(ctx context.Context, e *todo.Entry) (*todo.Entry, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	now := s.timestamp()
	row := fromEntry(e)
	row.ID = 0
	row.CreatedAt = now
	row.UpdatedAt = now

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, translateError("creating todo entry", err)
	}
	return row.toEntry(), nil
}

// FindByID returns the entry with id. found is false when no row exists.
// Inside WithinTx the row is locked for update on databases that support it.
func (s *GormStore) FindByID(ctx context.Context, id int64) (*todo.Entry, bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	q := s.db.WithContext(ctx)
	if s.inTx {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var row todoRow
	err := q.Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, translateError(fmt.Sprintf("finding todo entry %d", id), err)
	}
	return row.toEntry(), true, nil
}

// FindPage returns one page of entries ordered by req.SortField and
// req.Direction, with id as a tiebreaker so paging is stable. The count and
// the slice are read in one transaction.
func (s *GormStore) FindPage(ctx context.Context, req todo.PageRequest) (*todo.Page, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	column, ok := sortColumns[req.SortField]
	if !ok {
		column = sortColumns[todo.DefaultSortField]
	}
	desc := req.Direction != todo.Ascending

	var (
		total int64
		rows  []todoRow
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&todoRow{}).Count(&total).Error; err != nil {
			return err
		}
		return tx.
			Order(clause.OrderBy{Columns: []clause.OrderByColumn{
				{Column: clause.Column{Name: column}, Desc: desc},
				{Column: clause.Column{Name: "id"}, Desc: desc},
			}}).
			Limit(req.Size).
			Offset(req.Offset()).
			Find(&rows).Error
	})
	if err != nil {
		return nil, translateError("listing todo entries", err)
	}

	items := make([]todo.Entry, 0, len(rows))
	for i := range rows {
		items = append(items, *rows[i].toEntry())
	}
	return todo.NewPage(items, req, total), nil
}

// ExistsByID reports whether an entry with id exists.
func (s *GormStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var n int64
	if err := s.db.WithContext(ctx).Model(&todoRow{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, translateError(fmt.Sprintf("checking todo entry %d", id), err)
	}
	return n > 0, nil
}

// Save writes the mutable fields of an existing entry and refreshes its
// updatedAt. It never inserts: found is false when the row is gone.
func (s *GormStore) Save(ctx context.Context, e *todo.Entry) (*todo.Entry, bool, error) {
	// Ids are assigned from 1, and a zero key would drop the WHERE clause.
	if e.ID <= 0 {
		return nil, false, nil
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	row := fromEntry(e)
	row.UpdatedAt = s.timestamp()

	res := s.db.WithContext(ctx).Model(&row).Select(updatableColumns).Updates(&row)
	if res.Error != nil {
		return nil, false, translateError(fmt.Sprintf("saving todo entry %d", e.ID), res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, false, nil
	}

	var saved todoRow
	if err := s.db.WithContext(ctx).Where("id = ?", e.ID).Take(&saved).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, translateError(fmt.Sprintf("reloading todo entry %d", e.ID), err)
	}
	return saved.toEntry(), true, nil
}

// DeleteByID removes the entry with id and reports whether a row was deleted.
func (s *GormStore) DeleteByID(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&todoRow{})
	if res.Error != nil {
		return false, translateError(fmt.Sprintf("deleting todo entry %d", id), res.Error)
	}
	return res.RowsAffected > 0, nil
}

// DeleteAllByID removes every listed entry that exists and returns how many
// rows were deleted. Unknown ids are ignored.
func (s *GormStore) DeleteAllByID(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res := s.db.WithContext(ctx).Where("id IN ?", ids).Delete(&todoRow{})
	if res.Error != nil {
		return 0, translateError("deleting todo entries", res.Error)
	}
	return res.RowsAffected, nil
}

// WithinTx runs fn against a store bound to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (s *GormStore) WithinTx(ctx context.Context, fn func(tx ports.TodoStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{
			db:           tx,
			queryTimeout: s.queryTimeout,
			now:          s.now,
			inTx:         true,
		})
	})
}

func (s *GormStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.queryTimeout)
}

func (s *GormStore) timestamp() time.Time {
	return normalizeTime(s.now())
}

// translateError wraps a database error with op. Timeouts are also marked
// as [domain.ErrUnavailable].
func translateError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
