package todo

import "strings"

// Pagination defaults applied by the HTTP layer when query parameters are absent.
const (
	DefaultPageSize  = 20
	MaxPageSize      = 1000
	DefaultSortField = SortUpdatedAt
	DefaultDirection = Descending
)

// SortField names an Entry attribute that listings can be ordered by.
// Values use the wire (JSON) names.
type SortField string

const (
	SortID          SortField = "id"
	SortTitle       SortField = "title"
	SortDescription SortField = "description"
	SortIsDone      SortField = "isDone"
	SortExpiresAt   SortField = "expiresAt"
	SortCreatedAt   SortField = "createdAt"
	SortUpdatedAt   SortField = "updatedAt"
)

// IsValid returns true if the field is one of the defined constants.
func (f SortField) IsValid() bool {
	switch f {
	case SortID, SortTitle, SortDescription, SortIsDone, SortExpiresAt, SortCreatedAt, SortUpdatedAt:
		return true
	default:
		return false
	}
}

// SortDirection is the ordering direction of a listing.
type SortDirection string

const (
	Ascending  SortDirection = "ASC"
	Descending SortDirection = "DESC"
)

// ParseSortDirection parses "asc"/"desc" case-insensitively.
func ParseSortDirection(s string) (SortDirection, bool) {
	switch SortDirection(strings.ToUpper(strings.TrimSpace(s))) {
	case Ascending:
		return Ascending, true
	case Descending:
		return Descending, true
	default:
		return "", false
	}
}

// PageRequest selects one page of entries. Page is zero-based.
type PageRequest struct {
	Page      int
	Size      int
	SortField SortField
	Direction SortDirection
}

// DefaultPageRequest returns the first page with default size and ordering.
func DefaultPageRequest() PageRequest {
	return PageRequest{
		Page:      0,
		Size:      DefaultPageSize,
		SortField: DefaultSortField,
		Direction: DefaultDirection,
	}
}

// Offset returns the number of rows preceding the requested page.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is a bounded slice of entries plus total-count metadata.
type Page struct {
	Items         []Entry
	Number        int
	Size          int
	TotalElements int64
	TotalPages    int
}

// NewPage builds a Page for req, deriving TotalPages from total.
func NewPage(items []Entry, req PageRequest, total int64) *Page {
	if items == nil {
		items = []Entry{}
	}
	totalPages := 0
	if req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return &Page{
		Items:         items,
		Number:        req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}
