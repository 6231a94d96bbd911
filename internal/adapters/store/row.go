package store

import (
	"time"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// todoRow is the persisted shape of a todo entry. Timestamps are written by
// the store itself, so GORM's automatic time tracking is disabled.
type todoRow struct {
	ID          int64      `gorm:"column:id;primaryKey;autoIncrement"`
	Title       string     `gorm:"column:title;size:100;not null"`
	Description *string    `gorm:"column:description;size:500"`
	IsDone      bool       `gorm:"column:is_done;not null"`
	ExpiresAt   *time.Time `gorm:"column:expires_at"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null;autoCreateTime:false"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;not null;autoUpdateTime:false"`
}

// TableName implements gorm's tabler interface.
func (todoRow) TableName() string { return "todo_entries" }

// sortColumns maps listing sort fields to their columns.
var sortColumns = map[todo.SortField]string{
	todo.SortID:          "id",
	todo.SortTitle:       "title",
	todo.SortDescription: "description",
	todo.SortIsDone:      "is_done",
	todo.SortExpiresAt:   "expires_at",
	todo.SortCreatedAt:   "created_at",
	todo.SortUpdatedAt:   "updated_at",
}

func fromEntry(e *todo.Entry) todoRow {
	return todoRow{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		IsDone:      e.IsDone,
		ExpiresAt:   normalizeTimePtr(e.ExpiresAt),
		CreatedAt:   normalizeTime(e.CreatedAt),
		UpdatedAt:   normalizeTime(e.UpdatedAt),
	}
}

func (r *todoRow) toEntry() *todo.Entry {
	return &todo.Entry{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		IsDone:      r.IsDone,
		ExpiresAt:   normalizeTimePtr(r.ExpiresAt),
		CreatedAt:   normalizeTime(r.CreatedAt),
		UpdatedAt:   normalizeTime(r.UpdatedAt),
	}
}

// normalizeTime converts t to UTC at microsecond precision, the finest
// resolution every supported database keeps.
func normalizeTime(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC().Truncate(time.Microsecond)
}

func normalizeTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	n := normalizeTime(*t)
	return &n
}
