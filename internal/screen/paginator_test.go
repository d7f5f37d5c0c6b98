package screen

import (
	"iter"
	"strconv"
	"strings"
	"testing"

	"github.com/stlalpha/ansitube/internal/ansi"
	"github.com/stlalpha/ansitube/internal/pagination"
	"github.com/stlalpha/ansitube/internal/table"
)

type fixedViewport struct{ w, h int }

func (v *fixedViewport) Width() int  { return v.w }
func (v *fixedViewport) Height() int { return v.h }

// linesFormatter ignores the rows and returns canned table lines.
type linesFormatter struct {
	lines []string
	calls int
}

func (f *linesFormatter) Render(iter.Seq[pagination.Row]) string {
	f.calls++
	return strings.Join(f.lines, "\n") + "\n"
}

func makeRows(n int) []pagination.Row {
	rows := make([]pagination.Row, n)
	for i := range rows {
		rows[i] = pagination.Row{{Name: "id", Value: i + 1}, {Name: "name", Value: "row " + strconv.Itoa(i+1)}}
	}
	return rows
}

func TestBodySize(t *testing.T) {
	tests := []struct {
		height int
		want   int
	}{
		{24, 18},
		{10, 4},
		{7, 1},
		{6, 1},
		{0, 1},
	}
	for _, tt := range tests {
		p := NewPaginator(&fixedViewport{80, tt.height}, &linesFormatter{})
		if got := p.BodySize(); got != tt.want {
			t.Errorf("BodySize() at height %d = %d, want %d", tt.height, got, tt.want)
		}
	}
}

func TestScrollStep(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{100, 30},
		{80, 24},
		{10, 3},
		{7, 3},
		{1, 1},
		{0, 0},
	}
	for _, tt := range tests {
		if got := scrollStep(tt.width); got != tt.want {
			t.Errorf("scrollStep(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestShowNextCyclesThroughWideTable(t *testing.T) {
	f := &linesFormatter{lines: []string{strings.Repeat("x", 250), "short"}}
	p := NewPaginator(&fixedViewport{100, 24}, f)
	p.SetDataSource(pagination.Static(makeRows(1)))

	for _, want := range []int{30, 60, 90, 120, 150, 0, 30} {
		p.ShowNext()
		if got := p.Offset(); got != want {
			t.Fatalf("Offset() = %d, want %d", got, want)
		}
		frame := p.PrepareFrame()
		if got := ansi.VisibleLength(frame.Rows[0]); got != 100 {
			t.Errorf("offset %d: first row visible length = %d, want 100", want, got)
		}
	}
}

func TestShowNextWithNarrowTableStaysAtZero(t *testing.T) {
	p := NewPaginator(&fixedViewport{40, 10}, &linesFormatter{lines: []string{"abc", "defgh"}})
	p.SetDataSource(pagination.Static(nil))
	p.ShowNext()
	p.ShowNext()
	if got := p.Offset(); got != 0 {
		t.Errorf("Offset() = %d, want 0", got)
	}
}

func TestShowNextCropsStyledLines(t *testing.T) {
	line := ansi.Wrap(strings.Repeat("a", 10), ansi.FgRed) + strings.Repeat("b", 10)
	p := NewPaginator(&fixedViewport{10, 5}, &linesFormatter{lines: []string{line}})
	p.SetDataSource(pagination.Static(nil))

	p.ShowNext()
	want := "\x1b[31maaaaaaa\x1b[0mbbb"
	if got := p.PrepareFrame().Rows[0]; got != want {
		t.Errorf("row after ShowNext = %q, want %q", got, want)
	}
}

func TestPrepareFramePadsBody(t *testing.T) {
	f := &linesFormatter{lines: []string{"one", "", "two"}}
	p := NewPaginator(&fixedViewport{20, 10}, f)
	p.SetDataSource(pagination.Static(nil))

	frame := p.PrepareFrame()
	if len(frame.Rows) != 8 {
		t.Fatalf("len(Rows) = %d, want 8", len(frame.Rows))
	}
	if frame.Rows[0] != "one" || frame.Rows[1] != "two" {
		t.Errorf("Rows[:2] = %q, want [one two]", frame.Rows[:2])
	}
	for i, row := range frame.Rows[2:] {
		if row != "" {
			t.Errorf("padding row %d = %q, want empty", i+2, row)
		}
	}
	if got := len(frame.Lines()); got != 10 {
		t.Errorf("len(Lines()) = %d, want 10", got)
	}
}

func TestPrepareFrameKeepsLongBody(t *testing.T) {
	lines := make([]string, 12)
	for i := range lines {
		lines[i] = "line " + strconv.Itoa(i)
	}
	p := NewPaginator(&fixedViewport{20, 6}, &linesFormatter{lines: lines})
	p.SetDataSource(pagination.Static(nil))
	if got := len(p.PrepareFrame().Rows); got != 12 {
		t.Errorf("len(Rows) = %d, want 12", got)
	}
}

func TestPrepareFrameStatusAndInput(t *testing.T) {
	p := NewPaginator(&fixedViewport{12, 6}, &linesFormatter{lines: []string{"row"}})
	p.SetPageStatus(func(p *Paginator) string {
		return "w=" + strconv.Itoa(p.Width())
	})
	p.SetDataSource(pagination.Static(nil))

	frame := p.PrepareFrame()
	if frame.Status != "w=12" {
		t.Errorf("Status = %q, want %q", frame.Status, "w=12")
	}
	want := p.RenderPaginationBar() + "  "
	if frame.Input != want {
		t.Errorf("Input = %q, want %q", frame.Input, want)
	}

	narrow := NewPaginator(&fixedViewport{4, 6}, &linesFormatter{})
	narrow.SetDataSource(pagination.Static(nil))
	if got := ansi.VisibleLength(narrow.PrepareFrame().Input); got != 4 {
		t.Errorf("narrow Input visible length = %d, want 4", got)
	}
}

func TestPrepareFrameStatusIsLeftAligned(t *testing.T) {
	p := NewPaginator(&fixedViewport{10, 6}, &linesFormatter{})
	p.SetPageStatus(func(*Paginator) string { return "ab" })
	p.SetDataSource(pagination.Static(nil))
	if got := p.PrepareFrame().Status; got != "ab" {
		t.Errorf("left-aligned status = %q, want %q", got, "ab")
	}
}

func TestPrepareFrameIsCached(t *testing.T) {
	calls := 0
	f := &linesFormatter{lines: []string{strings.Repeat("z", 50)}}
	p := NewPaginator(&fixedViewport{20, 6}, f)
	p.SetPageStatus(func(*Paginator) string {
		calls++
		return ""
	})

	p.SetDataSource(pagination.Static(nil))
	p.PrepareFrame()
	p.PrepareFrame()
	if calls != 1 {
		t.Errorf("status producer calls after repeated PrepareFrame = %d, want 1", calls)
	}

	p.ShowNext()
	if calls != 2 {
		t.Errorf("status producer calls after ShowNext = %d, want 2", calls)
	}

	p.Refresh()
	if calls != 3 {
		t.Errorf("status producer calls after Refresh = %d, want 3", calls)
	}
	if f.calls != 1 {
		t.Errorf("formatter calls = %d, want 1", f.calls)
	}
}

func TestPaginationBarUnbounded(t *testing.T) {
	p := NewPaginator(&fixedViewport{80, 24}, &linesFormatter{})
	p.SetDataSource(pagination.Static(makeRows(3)))

	want := "\x1b[93m<\x1b[0m \x1b[32m-\x1b[0m \x1b[93m>\x1b[0m"
	if got := p.RenderPaginationBar(); got != want {
		t.Errorf("RenderPaginationBar() = %q, want %q", got, want)
	}
}

func TestPaginationBarWindows(t *testing.T) {
	n := func(i int) string { return ansi.Wrap(strconv.Itoa(i), ansi.FgGreen) }
	cur := func(i int) string { return ansi.Wrap(strconv.Itoa(i), ansi.BgGreen) }
	dots := ansi.Wrap("..", ansi.FgCyan)

	tests := []struct {
		name          string
		count, offset int
		back, forward ansi.Foreground
		pages         []string
	}{
		{"empty", 0, 0, ansi.FgYellow, ansi.FgYellow, []string{cur(1)}},
		{"first of ten", 100, 0, ansi.FgYellow, ansi.FgGreen, []string{cur(1), n(2), dots, n(10)}},
		{"fourth of ten", 100, 30, ansi.FgGreen, ansi.FgGreen, []string{n(1), n(2), n(3), cur(4), n(5), dots, n(10)}},
		{"middle", 100, 50, ansi.FgGreen, ansi.FgGreen, []string{n(1), dots, n(5), cur(6), n(7), dots, n(10)}},
		{"near end", 100, 60, ansi.FgGreen, ansi.FgGreen, []string{n(1), dots, n(6), cur(7), n(8), n(9), n(10)}},
		{"last full page", 100, 90, ansi.FgGreen, ansi.FgGreen, []string{n(1), dots, n(9), cur(10)}},
		{"last partial page", 95, 90, ansi.FgGreen, ansi.FgYellow, []string{n(1), dots, n(9), cur(10)}},
		{"past the end", 25, 40, ansi.FgGreen, ansi.FgYellow, []string{n(1), dots, n(4), cur(5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pager, err := pagination.NewPager(makeRows(tt.count), 10)
			if err != nil {
				t.Fatalf("NewPager: %v", err)
			}
			p := NewPaginator(&fixedViewport{80, 24}, &linesFormatter{})
			p.SetDataSource(pager.WithOffset(tt.offset))

			want := ansi.Wrap("<< <", tt.back) + " " +
				strings.Join(tt.pages, " ") + " " +
				ansi.Wrap("> >>", tt.forward) + "  Total " +
				ansi.Wrap(strconv.Itoa(tt.count), ansi.FgCyan)
			if got := p.RenderPaginationBar(); got != want {
				t.Errorf("RenderPaginationBar()\n got %q\nwant %q", got, want)
			}
		})
	}
}

func TestFullPageFillsBody(t *testing.T) {
	vp := &fixedViewport{80, 12}
	p := NewPaginator(vp, table.NewFormatter(nil))
	pager, err := pagination.NewPager(makeRows(20), p.BodySize())
	if err != nil {
		t.Fatalf("NewPager: %v", err)
	}
	p.SetDataSource(pager)

	if got, want := len(p.PrepareFrame().Rows), vp.h-2; got != want {
		t.Errorf("len(Rows) for a full page = %d, want %d", got, want)
	}
}
