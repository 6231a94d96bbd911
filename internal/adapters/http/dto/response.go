// Package dto holds the JSON shapes of the HTTP API, the mapping between
// them and domain entries, and the translation of errors into ApiError
// payloads.
package dto

import (
	"time"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// TodoResponse is a single todo entry as returned to clients. Every key is
// always present; absent optional values render as null.
type TodoResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	IsDone      bool    `json:"isDone"`
	ExpiresAt   *string `json:"expiresAt"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// PageResponse is one page of todo entries.
type PageResponse struct {
	Content []TodoResponse `json:"content"`
	Page    PageMetadata   `json:"page"`
}

// PageMetadata describes the position of a page in the full listing.
type PageMetadata struct {
	Size          int   `json:"size"`
	Number        int   `json:"number"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// ToTodoResponse converts an entry to its response form.
func ToTodoResponse(e *todo.Entry) TodoResponse {
	resp := TodoResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		IsDone:      e.IsDone,
		CreatedAt:   formatTime(e.CreatedAt),
		UpdatedAt:   formatTime(e.UpdatedAt),
	}
	if e.ExpiresAt != nil {
		s := formatTime(*e.ExpiresAt)
		resp.ExpiresAt = &s
	}
	return resp
}

// ToPageResponse converts a page of entries, preserving item order.
func ToPageResponse(p *todo.Page) PageResponse {
	content := make([]TodoResponse, len(p.Items))
	for i := range p.Items {
		content[i] = ToTodoResponse(&p.Items[i])
	}
	return PageResponse{
		Content: content,
		Page: PageMetadata{
			Size:          p.Size,
			Number:        p.Number,
			TotalElements: p.TotalElements,
			TotalPages:    p.TotalPages,
		},
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
