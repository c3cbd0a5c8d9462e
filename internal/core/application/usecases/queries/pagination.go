// Package queries implements the read side: handlers that run directly against
// the database and return response structs, bypassing the aggregates.
package queries

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// Pagination holds a normalized page request. Page floors at 1; limit falls
// back to the default when unset and is capped at the maximum.
type Pagination struct {
	page  int
	limit int
}

// NewPagination normalizes raw page and limit input.
func NewPagination(page int, limit int) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return Pagination{page: page, limit: limit}
}

// Page returns the 1-based page number.
func (p Pagination) Page() int {
	return p.page
}

// Limit returns the page size.
func (p Pagination) Limit() int {
	return p.limit
}

// Offset returns the number of rows to skip.
func (p Pagination) Offset() int {
	return (p.page - 1) * p.limit
}

// TotalPages returns the page count for a result set of the given size.
func (p Pagination) TotalPages(total int64) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(p.limit) - 1) / int64(p.limit))
}
