// Package pagination holds the offset/limit page request shared by list endpoints.
package pagination

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Page is a 1-based page request. Bounds are enforced by request validation.
type Page struct {
	Page  int
	Limit int
}

// New returns a Page, substituting defaults for non-positive values.
func New(page, limit int) Page {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return Page{Page: page, Limit: limit}
}

// Offset is the number of records to skip.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}
