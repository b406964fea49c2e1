// Package pagination implements the page-object helper used by every
// listing page on the web surface.
package pagination

// Page is a bounded window over an ordered listing plus total-count
// metadata. Pages are 1-indexed; an out-of-range request clamps to the
// nearest valid page instead of failing.
type Page[T any] struct {
	Items      []T
	Number     int
	PageSize   int
	TotalItems int
	TotalPages int
}

// ClampPage normalizes a requested 1-indexed page number against the total
// item count. Requests below 1 clamp to 1 and requests past the end clamp
// to the last page, so the result is always renderable.
func ClampPage(page, totalItems, pageSize int) int {
	if page < 1 {
		return 1
	}
	last := totalPages(totalItems, pageSize)
	if page > last {
		return last
	}
	return page
}

// Window converts a clamped page number into the limit/offset pair the
// repositories consume.
func Window(page, pageSize int) (limit, offset int) {
	return pageSize, (page - 1) * pageSize
}

// NewPage assembles a Page from an already-fetched item window. The items
// must have been fetched with the limit/offset returned by Window for the
// same page number, under the entity's default ordering.
func NewPage[T any](items []T, page, pageSize, totalItems int) Page[T] {
	return Page[T]{
		Items:      items,
		Number:     page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages(totalItems, pageSize),
	}
}

// HasNext reports whether a later page exists.
func (p Page[T]) HasNext() bool {
	return p.Number < p.TotalPages
}

// HasPrev reports whether an earlier page exists.
func (p Page[T]) HasPrev() bool {
	return p.Number > 1
}

// NextPage returns the following page number (valid only when HasNext).
func (p Page[T]) NextPage() int {
	return p.Number + 1
}

// PrevPage returns the preceding page number (valid only when HasPrev).
func (p Page[T]) PrevPage() int {
	return p.Number - 1
}

func totalPages(totalItems, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	n := (totalItems + pageSize - 1) / pageSize
	if n < 1 {
		n = 1
	}
	return n
}
