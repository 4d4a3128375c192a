package domain

// PageSize is the fixed number of results per page.
const PageSize = 20

// PageResetPolicy decides whether a filter change moves the view back to page 1.
type PageResetPolicy string

const (
	// PageKeep refetches the current page with the new filter.
	PageKeep PageResetPolicy = "keep"
	// PageReset jumps back to page 1 on every filter change.
	PageReset PageResetPolicy = "reset"
)

// Offset returns the "from" offset of a 1-based page. Pages below 1 are treated as 1.
func Offset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * PageSize
}

// TotalPages is ceil(total / PageSize). It is 0 when there are no results.
func TotalPages(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + PageSize - 1) / PageSize
}

// Pagination tracks the current page and the derived page count.
type Pagination struct {
	Current int
	Total   int
}

// NewPagination starts on page 1. The page count starts at 1 until the first fetch lands.
func NewPagination() Pagination {
	return Pagination{Current: 1, Total: 1}
}

// last is the highest reachable page. Page 1 stays reachable with no results.
func (p Pagination) last() int {
	if p.Total < 1 {
		return 1
	}
	return p.Total
}

// CanGoTo reports whether page is a valid target: 1-based and within the known page count.
func (p Pagination) CanGoTo(page int) bool {
	return page >= 1 && page <= p.last() && page != p.Current
}

// Clamp moves page into [1, Total]. A current page left past Total by a
// filter change steps back to the last real page.
func (p Pagination) Clamp(page int) int {
	if page < 1 {
		return 1
	}
	if last := p.last(); page > last {
		return last
	}
	return page
}
