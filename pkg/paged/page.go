package paged

// Page is one slice of a collection plus its position metadata. PageNumber
// and PageSize are the normalized values, not the raw request. A Page is
// constructed once per call and never mutated afterwards.
type Page[T any] struct {
	// Items holds exactly the elements of the normalized window, in
	// source order.
	Items []T `json:"items"`

	PageNumber int `json:"page_number"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`

	HasPreviousPage bool `json:"has_previous_page"`
	HasNextPage     bool `json:"has_next_page"`

	// FirstItemOnPage and LastItemOnPage are 1-based ordinals of the
	// window within the whole collection; both are 0 on an empty page.
	FirstItemOnPage int `json:"first_item_on_page"`
	LastItemOnPage  int `json:"last_item_on_page"`
}

// newPage derives the read-only metadata. It trusts its arguments: only
// the slicing entry points construct pages, and they normalize first.
func newPage[T any](items []T, pageNumber, pageSize, totalCount int) *Page[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}

	p := &Page[T]{
		Items:           items,
		PageNumber:      pageNumber,
		PageSize:        pageSize,
		TotalCount:      totalCount,
		TotalPages:      totalPages,
		HasPreviousPage: pageNumber > 1,
		HasNextPage:     pageNumber < totalPages,
	}
	if len(items) > 0 {
		p.FirstItemOnPage = (pageNumber-1)*pageSize + 1
		p.LastItemOnPage = p.FirstItemOnPage + len(items) - 1
	}
	return p
}
