// Package pagination provides a fixed-size window over an ordered sequence
// with next/previous navigation metadata. Paging never errors: out-of-range
// pages degrade to an empty window.
package pagination

// Page is one window of an ordered sequence.
type Page[T any] struct {
	Items   []T  `json:"items"`
	Page    int  `json:"page"`
	PerPage int  `json:"per_page"`
	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
	NextNum int  `json:"next_num,omitempty"`
	PrevNum int  `json:"prev_num,omitempty"`
}

// Normalize clamps page and perPage to sane values: page >= 1, perPage > 0.
func Normalize(page, perPage, defaultPerPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	return page, perPage
}

// New builds a Page from items fetched with a perPage+1 limit: the extra
// element, when present, only signals that another page exists.
func New[T any](items []T, page, perPage int) Page[T] {
	hasNext := len(items) > perPage
	if hasNext {
		items = items[:perPage]
	}
	if items == nil {
		items = []T{}
	}

	p := Page[T]{
		Items:   items,
		Page:    page,
		PerPage: perPage,
		HasNext: hasNext,
		HasPrev: page > 1,
	}
	if p.HasNext {
		p.NextNum = page + 1
	}
	if p.HasPrev {
		p.PrevNum = page - 1
	}
	return p
}

// Slice windows an in-memory sequence.
func Slice[T any](items []T, page, perPage int) Page[T] {
	page, perPage = Normalize(page, perPage, perPage)

	start := (page - 1) * perPage
	if start >= len(items) {
		return New([]T{}, page, perPage)
	}
	end := start + perPage + 1
	if end > len(items) {
		end = len(items)
	}
	return New(items[start:end], page, perPage)
}

// Offset returns the row offset for a page.
func Offset(page, perPage int) int {
	return (page - 1) * perPage
}
