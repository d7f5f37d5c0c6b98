package pagination

import (
	"errors"
	"slices"
	"testing"
)

func makeRows(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{{Name: "id", Value: i + 1}, {Name: "name", Value: "row"}}
	}
	return rows
}

func ids(src Source) []int {
	var out []int
	for row := range src.Rows() {
		v, _ := row.Get("id")
		out = append(out, v.(int))
	}
	return out
}

func TestNewPagerUnsupported(t *testing.T) {
	for _, data := range []any{nil, "rows", 42, map[string]any{}} {
		_, err := NewPager(data, 10)
		if !errors.Is(err, ErrUnsupportedSource) {
			t.Errorf("NewPager(%T) error = %v, want ErrUnsupportedSource", data, err)
		}
	}
}

func TestPagerSlicePages(t *testing.T) {
	p, err := NewPager(makeRows(7), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := p.Count(); got != 7 {
		t.Errorf("Count() = %d, want 7", got)
	}
	if got, want := ids(p), []int{1, 2, 3}; !slices.Equal(got, want) {
		t.Errorf("page 1 ids = %v, want %v", got, want)
	}

	p2 := p.NextPage()
	if got, want := ids(p2), []int{4, 5, 6}; !slices.Equal(got, want) {
		t.Errorf("page 2 ids = %v, want %v", got, want)
	}
	if p2.Page() != 2 || p2.Offset() != 3 || p2.Limit() != 3 {
		t.Errorf("page 2 = (page %d, offset %d, limit %d)", p2.Page(), p2.Offset(), p2.Limit())
	}

	p3 := p2.NextPage()
	if got, want := ids(p3), []int{7}; !slices.Equal(got, want) {
		t.Errorf("page 3 ids = %v, want %v", got, want)
	}
	if p3.HasNext() {
		t.Error("last page reports HasNext")
	}
	if p3.NextPage() != p3 {
		t.Error("NextPage on last page should return the same pager")
	}

	// The original pager is untouched.
	if got, want := ids(p), []int{1, 2, 3}; !slices.Equal(got, want) {
		t.Errorf("page 1 ids after paging = %v, want %v", got, want)
	}
	if got, want := ids(p3.PrevPage()), []int{4, 5, 6}; !slices.Equal(got, want) {
		t.Errorf("PrevPage ids = %v, want %v", got, want)
	}
	if p.PrevPage() != p {
		t.Error("PrevPage on first page should return the same pager")
	}
}

func TestPagerWithLimitAndOffset(t *testing.T) {
	p, _ := NewPager(Static(makeRows(10)), 4)

	if got, want := ids(p.WithLimit(2).WithOffset(5)), []int{6, 7}; !slices.Equal(got, want) {
		t.Errorf("ids = %v, want %v", got, want)
	}
	if got := p.WithLimit(0).Limit(); got != 1 {
		t.Errorf("WithLimit(0).Limit() = %d, want 1", got)
	}
	if got := p.WithOffset(-3).Offset(); got != 0 {
		t.Errorf("WithOffset(-3).Offset() = %d, want 0", got)
	}
	if got := p.WithOffset(9).FirstPage().Offset(); got != 0 {
		t.Errorf("FirstPage().Offset() = %d, want 0", got)
	}
}

func TestPagerOffsetOutOfRange(t *testing.T) {
	p, _ := NewPager(makeRows(3), 2)
	p = p.WithOffset(10)
	if got := ids(p); len(got) != 0 {
		t.Errorf("ids = %v, want none", got)
	}
	if p.Err() == nil {
		t.Error("expected a seek error")
	}
}

// uncountedSeeker hides the length of its rows.
type uncountedSeeker struct {
	rows []Row
	pos  int
}

func (s *uncountedSeeker) Seek(pos int) error { s.pos = pos; return nil }
func (s *uncountedSeeker) Current() Row       { return s.rows[s.pos] }
func (s *uncountedSeeker) Next()              { s.pos++ }
func (s *uncountedSeeker) Valid() bool        { return s.pos < len(s.rows) }

func TestPagerUncountedSeeker(t *testing.T) {
	p, err := NewPager(&uncountedSeeker{rows: makeRows(5)}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := p.Count(); got != 3 {
		t.Errorf("first page Count() = %d, want 3 (2 seen + 1 pending)", got)
	}
	last := p.NextPage().NextPage()
	if got, want := ids(last), []int{5}; !slices.Equal(got, want) {
		t.Errorf("last page ids = %v, want %v", got, want)
	}
	if got := last.Count(); got != 5 {
		t.Errorf("last page Count() = %d, want 5", got)
	}
	if last.HasNext() {
		t.Error("last page reports HasNext")
	}
}

func TestForward(t *testing.T) {
	f := NewForward(Static(makeRows(5)).Rows(), 2)
	defer f.Close()

	if got, want := ids(f), []int{1, 2}; !slices.Equal(got, want) {
		t.Errorf("page 1 ids = %v, want %v", got, want)
	}
	if !f.NextPage() {
		t.Fatal("NextPage() = false on page 1")
	}
	f.SetLimit(5)
	if !f.NextPage() {
		t.Fatal("NextPage() = false on page 2")
	}
	if got, want := ids(f), []int{5}; !slices.Equal(got, want) {
		t.Errorf("page 3 ids = %v, want %v", got, want)
	}
	if f.PageNumber() != 3 {
		t.Errorf("PageNumber() = %d, want 3", f.PageNumber())
	}
	if f.HasNext() || f.NextPage() {
		t.Error("exhausted sequence still reports another page")
	}
	if got, want := ids(f), []int{5}; !slices.Equal(got, want) {
		t.Errorf("page after exhaustion ids = %v, want %v", got, want)
	}
}

func TestRowAccessors(t *testing.T) {
	row := Row{{Name: "b", Value: 1}, {Name: "a", Value: nil}}
	if got, want := row.Names(), []string{"b", "a"}; !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if v, ok := row.Get("a"); !ok || v != nil {
		t.Errorf("Get(a) = %v, %v", v, ok)
	}
	if _, ok := row.Get("c"); ok {
		t.Error("Get(c) found a missing field")
	}
}
