package pagination

import (
	"errors"
	"fmt"
	"iter"
)

// ErrUnsupportedSource is returned when a pager is built from a value that is
// neither a row slice nor a Seeker.
var ErrUnsupportedSource = errors.New("unsupported source value")

// Seeker is a cursor over rows that can jump to an absolute position.
type Seeker interface {
	Seek(pos int) error
	Current() Row
	Next()
	Valid() bool
}

// Counter is implemented by seekers that know their total length.
type Counter interface {
	Len() int
}

// Pager is an OffsetSource that materialises one page of at most Limit rows
// starting at Offset. Pagers are values: WithOffset, WithLimit, NextPage and
// PrevPage return new pagers and leave the receiver untouched.
type Pager struct {
	data    Seeker
	count   int
	counted bool
	offset  int
	limit   int

	buffer []Row
	loaded bool
	more   bool
	err    error
}

// NewPager builds a pager over a []Row or a Seeker. The total count is
// captured once here when the data can report it.
func NewPager(data any, limit int) (*Pager, error) {
	var seeker Seeker
	switch v := data.(type) {
	case []Row:
		seeker = &sliceSeeker{rows: v}
	case Static:
		seeker = &sliceSeeker{rows: v}
	case Seeker:
		seeker = v
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedSource, data)
	}

	p := &Pager{data: seeker, limit: max(1, limit)}
	if c, ok := seeker.(Counter); ok {
		p.count = c.Len()
		p.counted = true
	}
	return p, nil
}

// Rows implements Source. The page is read from the seeker on first use and
// buffered afterwards.
func (p *Pager) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for _, row := range p.page() {
			if !yield(row) {
				return
			}
		}
	}
}

func (p *Pager) page() []Row {
	if p.loaded {
		return p.buffer
	}
	p.loaded = true

	if err := p.data.Seek(p.offset); err != nil {
		p.err = fmt.Errorf("seek to %d: %w", p.offset, err)
		return nil
	}
	for i := 0; i < p.limit && p.data.Valid(); i++ {
		p.buffer = append(p.buffer, p.data.Current())
		p.data.Next()
	}
	p.more = p.data.Valid()
	return p.buffer
}

// Count returns the number of rows in the whole data set. When the seeker
// cannot report its length, the count covers the rows seen so far plus one
// when more rows follow the current page.
func (p *Pager) Count() int {
	if p.counted {
		return p.count
	}
	n := p.offset + len(p.page())
	if p.more {
		n++
	}
	return n
}

// Offset returns the number of rows skipped before this page.
func (p *Pager) Offset() int { return p.offset }

// Limit returns the page size.
func (p *Pager) Limit() int { return p.limit }

// Err returns the error hit while reading the page, if any.
func (p *Pager) Err() error {
	p.page()
	return p.err
}

// Page returns the 1-based page number.
func (p *Pager) Page() int {
	return p.offset/p.limit + 1
}

// HasNext reports whether rows exist after this page.
func (p *Pager) HasNext() bool {
	return p.offset+p.limit < p.Count()
}

// WithOffset returns a pager over the same data starting at offset.
func (p *Pager) WithOffset(offset int) *Pager {
	next := p.reset()
	next.offset = max(0, offset)
	return next
}

// WithLimit returns a pager over the same data with a new page size.
func (p *Pager) WithLimit(limit int) *Pager {
	next := p.reset()
	next.limit = max(1, limit)
	return next
}

// NextPage returns the pager for the following page, or p itself on the last page.
func (p *Pager) NextPage() *Pager {
	if !p.HasNext() {
		return p
	}
	return p.WithOffset(p.offset + p.limit)
}

// PrevPage returns the pager for the preceding page, or p itself on the first page.
func (p *Pager) PrevPage() *Pager {
	if p.offset == 0 {
		return p
	}
	return p.WithOffset(p.offset - p.limit)
}

// FirstPage returns the pager for the first page.
func (p *Pager) FirstPage() *Pager {
	return p.WithOffset(0)
}

func (p *Pager) reset() *Pager {
	next := *p
	next.buffer = nil
	next.loaded = false
	next.more = false
	next.err = nil
	return &next
}

// sliceSeeker is a Seeker over an in-memory row slice.
type sliceSeeker struct {
	rows []Row
	pos  int
}

func (s *sliceSeeker) Seek(pos int) error {
	if pos < 0 || pos > len(s.rows) {
		return fmt.Errorf("position %d out of range [0, %d]", pos, len(s.rows))
	}
	s.pos = pos
	return nil
}

func (s *sliceSeeker) Current() Row { return s.rows[s.pos] }
func (s *sliceSeeker) Next()        { s.pos++ }
func (s *sliceSeeker) Valid() bool  { return s.pos < len(s.rows) }
func (s *sliceSeeker) Len() int     { return len(s.rows) }
