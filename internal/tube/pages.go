package tube

import (
	"github.com/stlalpha/ansitube/internal/pagination"
)

// Pages moves through a data set one page at a time. Moves return the
// pages to show next and whether anything changed.
type Pages interface {
	pagination.Source
	Next() (Pages, bool)
	Prev() (Pages, bool)
	First() (Pages, bool)
	// Resize changes the page size, keeping the first row of the current
	// page visible.
	Resize(limit int) Pages
}

// FromPager pages through a seekable data set.
func FromPager(p *pagination.Pager) Pages { return pagerPages{p} }

// FromForward pages through a stream. It cannot go back.
func FromForward(f *pagination.Forward) Pages { return forwardPages{f} }

type pagerPages struct{ *pagination.Pager }

func (p pagerPages) Next() (Pages, bool) {
	next := p.NextPage()
	return pagerPages{next}, next != p.Pager
}

func (p pagerPages) Prev() (Pages, bool) {
	prev := p.PrevPage()
	return pagerPages{prev}, prev != p.Pager
}

func (p pagerPages) First() (Pages, bool) {
	if p.Offset() == 0 {
		return p, false
	}
	return pagerPages{p.FirstPage()}, true
}

func (p pagerPages) Resize(limit int) Pages {
	limit = max(1, limit)
	if limit == p.Limit() {
		return p
	}
	return pagerPages{p.WithLimit(limit).WithOffset(p.Offset() / limit * limit)}
}

// reload replaces the rows, staying on the same page when it still exists.
func (p pagerPages) reload(rows []pagination.Row) (pagerPages, error) {
	next, err := pagination.NewPager(rows, p.Limit())
	if err != nil {
		return p, err
	}
	offset := p.Offset()
	if count := next.Count(); offset >= count {
		offset = max(0, (count-1)/p.Limit()*p.Limit())
	}
	return pagerPages{next.WithOffset(offset)}, nil
}

type forwardPages struct{ *pagination.Forward }

func (f forwardPages) Next() (Pages, bool) { return f, f.NextPage() }
func (f forwardPages) Prev() (Pages, bool) { return f, false }
func (f forwardPages) First() (Pages, bool) { return f, false }

func (f forwardPages) Resize(limit int) Pages {
	f.SetLimit(limit)
	return f
}
