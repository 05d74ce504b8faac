// Package page exposes a filtered record list one "load more" step at a time.
package page

import "math"

// DefaultPageSize is the number of items each page adds.
const DefaultPageSize = 20

// Visible returns the first page*size items of filtered, or all of them if
// fewer exist. A page below 1 is treated as 1; a size below 1 as
// DefaultPageSize.
func Visible[T any](filtered []T, page, size int) []T {
	n := limit(page, size)
	if n >= len(filtered) {
		return filtered
	}
	return filtered[:n]
}

// HasMore reports whether items remain beyond the visible ones.
func HasMore[T any](filtered []T, page, size int) bool {
	return len(filtered) > limit(page, size)
}

// Window returns only the items of the given page, for callers that show
// one page at a time instead of a growing list.
func Window[T any](filtered []T, page, size int) []T {
	page, size = normalize(page, size)
	if page > Pages(len(filtered), size) {
		return filtered[len(filtered):]
	}
	start := (page - 1) * size
	return filtered[start : start+min(size, len(filtered)-start)]
}

// Pages returns how many pages total items span.
func Pages(total, size int) int {
	_, size = normalize(1, size)
	if total <= 0 {
		return 0
	}
	return (total-1)/size + 1
}

// limit is page*size, saturating at math.MaxInt.
func limit(page, size int) int {
	page, size = normalize(page, size)
	if page > math.MaxInt/size {
		return math.MaxInt
	}
	return page * size
}

func normalize(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	return page, size
}

// Pager is the "load more" counter: a 1-based page and a fixed size.
type Pager struct {
	Page int
	Size int
}

// NewPager returns a pager on page 1.
func NewPager(size int) Pager {
	_, size = normalize(1, size)
	return Pager{Page: 1, Size: size}
}

// Next advances one page. It never re-filters.
func (p *Pager) Next() {
	p.Page++
}

// Reset returns to page 1.
func (p *Pager) Reset() {
	p.Page = 1
}

// Limit is the number of items visible on the current page.
func (p Pager) Limit() int {
	return limit(p.Page, p.Size)
}
