package pet

import "github.com/vovakirdan/kemono/internal/core"

// Browser pages through the active creatures, a fixed number per page.
// Paging works whether or not the view is visible.
type Browser struct {
	pageSize int
	count    int
	page     int
	visible  bool
}

// NewBrowser creates a hidden browser on page 0. A non-positive page size
// falls back to the default.
func NewBrowser(pageSize, count int) *Browser {
	if pageSize <= 0 {
		pageSize = DefaultRules().PageSize
	}
	return &Browser{pageSize: pageSize, count: max(count, 0)}
}

func (b *Browser) Toggle()       { b.visible = !b.visible }
func (b *Browser) Visible() bool { return b.visible }
func (b *Browser) Page() int     { return b.page }
func (b *Browser) PageSize() int { return b.pageSize }

// PageCount is the number of pages, never less than one.
func (b *Browser) PageCount() int {
	return max(1, core.CeilDiv(b.count, b.pageSize))
}

// PageForward moves to the next page if there is one.
func (b *Browser) PageForward() {
	if b.page < b.PageCount()-1 {
		b.page++
	}
}

// PageBackward moves to the previous page if there is one.
func (b *Browser) PageBackward() {
	if b.page > 0 {
		b.page--
	}
}

// Sync records a new creature count. The current page is clamped but
// never advanced.
func (b *Browser) Sync(count int) {
	b.count = max(count, 0)
	b.page = core.Clamp(b.page, 0, b.PageCount()-1)
}

// Window returns the [start, end) indices of the current page.
func (b *Browser) Window() (start, end int) {
	start = b.page * b.pageSize
	end = min(start+b.pageSize, b.count)
	return min(start, end), end
}

// Slice returns the creatures of the current page.
func (b *Browser) Slice(active []*Creature) []*Creature {
	start, end := b.Window()
	end = min(end, len(active))
	if start >= end {
		return nil
	}
	return active[start:end]
}
