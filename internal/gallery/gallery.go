// Package gallery owns the browsing state: the record set, the active filter
// and the "load more" page counter.
package gallery

import (
	"github.com/user/daylily/internal/filter"
	"github.com/user/daylily/internal/model"
	"github.com/user/daylily/internal/page"
)

// Gallery keeps the filtered list in step with its records and spec. Any
// change to either re-filters and returns to page 1.
//
// A Gallery is not safe for concurrent use; the terminal UI drives it from
// its single update loop.
type Gallery struct {
	records  []*model.Daylily
	spec     filter.Spec
	filtered []*model.Daylily
	pager    page.Pager
}

// New returns an empty gallery. A pageSize below 1 uses page.DefaultPageSize.
func New(pageSize int) *Gallery {
	g := &Gallery{
		spec:  filter.Default(),
		pager: page.NewPager(pageSize),
	}
	g.refilter()
	return g
}

// SetRecords replaces the record set.
func (g *Gallery) SetRecords(records []*model.Daylily) {
	g.records = records
	g.refilter()
}

// Records returns the full record set.
func (g *Gallery) Records() []*model.Daylily {
	return g.records
}

// Spec returns a copy of the active filter.
func (g *Gallery) Spec() filter.Spec {
	return g.spec.Clone()
}

// SetSpec replaces the active filter.
func (g *Gallery) SetSpec(spec filter.Spec) {
	g.spec = spec.Clone()
	g.refilter()
}

// Update edits the active filter in place and re-filters.
func (g *Gallery) Update(edit func(*filter.Spec)) {
	spec := g.spec.Clone()
	edit(&spec)
	g.SetSpec(spec)
}

// Reset clears every criterion.
func (g *Gallery) Reset() {
	g.SetSpec(filter.Default())
}

// LoadMore reveals the next page. It is a no-op when nothing more remains.
func (g *Gallery) LoadMore() {
	if g.HasMore() {
		g.pager.Next()
	}
}

// Visible returns the records shown on the current page.
func (g *Gallery) Visible() []*model.Daylily {
	return page.Visible(g.filtered, g.pager.Page, g.pager.Size)
}

// HasMore reports whether LoadMore would reveal more records.
func (g *Gallery) HasMore() bool {
	return page.HasMore(g.filtered, g.pager.Page, g.pager.Size)
}

// Filtered returns every record matching the active filter.
func (g *Gallery) Filtered() []*model.Daylily {
	return g.filtered
}

// Total is the size of the unfiltered record set.
func (g *Gallery) Total() int {
	return len(g.records)
}

// Page returns the current 1-based page.
func (g *Gallery) Page() int {
	return g.pager.Page
}

// PageSize returns the number of records each page adds.
func (g *Gallery) PageSize() int {
	return g.pager.Size
}

// Facets summarizes the filtered records.
func (g *Gallery) Facets() filter.Facets {
	return filter.Summarize(g.filtered)
}

func (g *Gallery) refilter() {
	g.filtered = filter.Apply(g.records, g.spec)
	g.pager.Reset()
}
