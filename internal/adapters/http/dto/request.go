package dto

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// Field limits for TodoRequest.
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
)

// TodoRequest is the JSON body for creating or replacing a todo entry.
type TodoRequest struct {
	Title       string  `json:"title" validate:"notblank,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	ExpiresAt   *string `json:"expiresAt" validate:"omitempty,isodatetime"`
}

// Validate checks the request against its field rules.
// Returns a *domain.ValidationError listing every failing field.
func (r *TodoRequest) Validate() error {
	return validateStruct(r)
}

// ToEntry maps a validated request to a todo entry. ID, IsDone and the audit
// timestamps are left at their zero values.
func ToEntry(r *TodoRequest) *todo.Entry {
	e := &todo.Entry{
		Title:       r.Title,
		Description: r.Description,
	}
	if r.ExpiresAt != nil {
		if t, ok := ParseDateTime(*r.ExpiresAt); ok {
			e.ExpiresAt = &t
		}
	}
	return e
}

// dateTimeLayouts are tried in order. Layouts without an offset are read as UTC.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseDateTime parses an ISO-8601 date-time, with or without a UTC offset.
func ParseDateTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
