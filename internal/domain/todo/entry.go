// Package todo holds the todo entry entity and the pagination types used to
// list entries.
package todo

import "time"

// Entry is a single todo record as stored.
type Entry struct {
	ID          int64
	Title       string
	Description *string
	IsDone      bool
	ExpiresAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Overwrite copies the client-editable fields (title, description, expiry)
// from src. ID, IsDone and the audit timestamps are left untouched.
func (e *Entry) Overwrite(src *Entry) {
	e.Title = src.Title
	e.Description = src.Description
	e.ExpiresAt = src.ExpiresAt
}
