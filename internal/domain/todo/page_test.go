package todo_test

import (
	"testing"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

func TestNewPage_TotalPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		total     int64
		size      int
		wantPages int
	}{
		{name: "empty store", total: 0, size: 20, wantPages: 0},
		{name: "exactly one page", total: 20, size: 20, wantPages: 1},
		{name: "partial last page", total: 21, size: 20, wantPages: 2},
		{name: "two entries default size", total: 2, size: 20, wantPages: 1},
		{name: "page size one", total: 3, size: 1, wantPages: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := todo.PageRequest{Page: 0, Size: tt.size}
			got := todo.NewPage(nil, req, tt.total)

			if got.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", got.TotalPages, tt.wantPages)
			}
			if got.TotalElements != tt.total {
				t.Errorf("TotalElements = %d, want %d", got.TotalElements, tt.total)
			}
		})
	}
}

func TestNewPage_NilItemsBecomeEmpty(t *testing.T) {
	t.Parallel()

	got := todo.NewPage(nil, todo.DefaultPageRequest(), 5)
	if got.Items == nil {
		t.Fatal("Items = nil, want empty slice")
	}
	if len(got.Items) != 0 {
		t.Errorf("len(Items) = %d, want 0", len(got.Items))
	}
}

func TestNewPage_CopiesRequestPosition(t *testing.T) {
	t.Parallel()

	req := todo.PageRequest{Page: 3, Size: 7}
	got := todo.NewPage([]todo.Entry{{ID: 1}}, req, 22)

	if got.Number != 3 {
		t.Errorf("Number = %d, want 3", got.Number)
	}
	if got.Size != 7 {
		t.Errorf("Size = %d, want 7", got.Size)
	}
}

func TestPageRequest_Offset(t *testing.T) {
	t.Parallel()

	req := todo.PageRequest{Page: 2, Size: 20}
	if got := req.Offset(); got != 40 {
		t.Errorf("Offset() = %d, want 40", got)
	}
}

func TestDefaultPageRequest(t *testing.T) {
	t.Parallel()

	got := todo.DefaultPageRequest()
	want := todo.PageRequest{Page: 0, Size: 20, SortField: todo.SortUpdatedAt, Direction: todo.Descending}
	if got != want {
		t.Errorf("DefaultPageRequest() = %+v, want %+v", got, want)
	}
}

func TestParseSortDirection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   todo.SortDirection
		wantOK bool
	}{
		{in: "ASC", want: todo.Ascending, wantOK: true},
		{in: "asc", want: todo.Ascending, wantOK: true},
		{in: "Desc", want: todo.Descending, wantOK: true},
		{in: " DESC ", want: todo.Descending, wantOK: true},
		{in: "up", wantOK: false},
		{in: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, ok := todo.ParseSortDirection(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ParseSortDirection(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseSortDirection(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSortField_IsValid(t *testing.T) {
	t.Parallel()

	valid := []todo.SortField{
		todo.SortID, todo.SortTitle, todo.SortDescription, todo.SortIsDone,
		todo.SortExpiresAt, todo.SortCreatedAt, todo.SortUpdatedAt,
	}
	for _, f := range valid {
		if !f.IsValid() {
			t.Errorf("SortField(%q).IsValid() = false, want true", f)
		}
	}

	for _, f := range []todo.SortField{"", "updated_at", "password"} {
		if f.IsValid() {
			t.Errorf("SortField(%q).IsValid() = true, want false", f)
		}
	}
}
