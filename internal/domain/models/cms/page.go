package cms

import "encoding/json"

// Page is a bounded, offset-computed slice of a larger filtered result set,
// plus the metadata a client needs to build navigation links.
type Page[T any] struct {
	// PageNum is 1-based. Callers must pass PageNum >= 1.
	PageNum int

	// Rows is the page size
	Rows int

	// Count is the total number of matching items (regardless of offset/limit)
	Count int

	// URL is a prefix the client appends page-number query parameters to
	URL string

	Items []T
}

// NewPage creates a Page for the given page number and size.
// Items start as an empty slice so JSON encodes [] rather than null.
func NewPage[T any](pageNum, rows int) *Page[T] {
	return &Page[T]{
		PageNum: pageNum,
		Rows:    rows,
		Items:   []T{},
	}
}

// Offset is the number of rows skipped before this page
func (p *Page[T]) Offset() int {
	return (p.PageNum - 1) * p.Rows
}

// TotalPages is ceil(Count / Rows); zero when Rows is not positive
func (p *Page[T]) TotalPages() int {
	if p.Rows <= 0 {
		return 0
	}
	return (p.Count + p.Rows - 1) / p.Rows
}

// HasMore indicates if there are more results beyond this page
func (p *Page[T]) HasMore() bool {
	return p.Offset()+len(p.Items) < p.Count
}

// MarshalJSON emits the derived fields alongside the stored ones
func (p *Page[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"page":        p.PageNum,
		"rows":        p.Rows,
		"count":       p.Count,
		"offset":      p.Offset(),
		"total_pages": p.TotalPages(),
		"has_more":    p.HasMore(),
		"url":         p.URL,
		"items":       p.Items,
	})
}
