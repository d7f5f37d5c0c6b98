package pagination

import "iter"

// Forward pages through a row sequence that can only be read once, front to
// back. It has no count and cannot move backwards, so it is a plain Source.
type Forward struct {
	next  func() (Row, bool)
	stop  func()
	limit int

	page    []Row
	pending *Row
	number  int
}

// NewForward reads the first page of seq.
func NewForward(seq iter.Seq[Row], limit int) *Forward {
	next, stop := iter.Pull(seq)
	f := &Forward{next: next, stop: stop, limit: max(1, limit)}
	f.fill()
	return f
}

// Rows implements Source.
func (f *Forward) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for _, row := range f.page {
			if !yield(row) {
				return
			}
		}
	}
}

// HasNext reports whether another page can be read.
func (f *Forward) HasNext() bool {
	return f.peek()
}

// NextPage replaces the current page with the next one. It returns false and
// keeps the current page when the sequence is exhausted.
func (f *Forward) NextPage() bool {
	if !f.peek() {
		return false
	}
	f.fill()
	return true
}

// SetLimit changes the size of pages read from now on.
func (f *Forward) SetLimit(limit int) {
	f.limit = max(1, limit)
}

// PageNumber returns the 1-based number of the current page.
func (f *Forward) PageNumber() int {
	return f.number
}

// Close releases the underlying sequence.
func (f *Forward) Close() {
	f.stop()
}

func (f *Forward) peek() bool {
	if f.pending != nil {
		return true
	}
	row, ok := f.next()
	if !ok {
		return false
	}
	f.pending = &row
	return true
}

func (f *Forward) fill() {
	f.page = nil
	for len(f.page) < f.limit && f.peek() {
		f.page = append(f.page, *f.pending)
		f.pending = nil
	}
	f.number++
}
