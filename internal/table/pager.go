// Package table slices, sorts and renders rows as paginated HTML tables.
package table

// Pager holds the pagination state of one view.
type Pager struct {
	Page       int
	PageSize   int
	TotalItems int
}

// TotalPages is never less than 1, so an empty table still has page 1.
func (p Pager) TotalPages() int {
	if p.TotalItems <= 0 || p.PageSize <= 0 {
		return 1
	}
	return (p.TotalItems + p.PageSize - 1) / p.PageSize
}

// Clamp bounds a requested page to [1, TotalPages].
func (p Pager) Clamp(page int) int {
	if page < 1 {
		return 1
	}
	if last := p.TotalPages(); page > last {
		return last
	}
	return page
}

// Reconcile is applied after the data changed underneath the pager: a page
// that no longer exists falls back to page 1.
func (p Pager) Reconcile() Pager {
	if p.Page < 1 || p.Page > p.TotalPages() {
		p.Page = 1
	}
	return p
}

// Offset is the zero-based index of the first row on the current page.
func (p Pager) Offset() int {
	if p.Page < 1 || p.PageSize <= 0 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Bounds returns the half-open range [start, end) of the current page within
// n in-memory rows.
func (p Pager) Bounds(n int) (start, end int) {
	start = p.Offset()
	if start > n {
		start = n
	}
	end = start + p.PageSize
	if p.PageSize <= 0 || end > n {
		end = n
	}
	return start, end
}

func (p Pager) HasPrev() bool { return p.Page > 1 }
func (p Pager) HasNext() bool { return p.Page < p.TotalPages() }

// Slice returns the rows visible on the pager's current page.
func Slice[R any](rows []R, p Pager) []R {
	start, end := p.Bounds(len(rows))
	return rows[start:end]
}
