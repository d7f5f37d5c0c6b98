// Package screen builds the frames shown by the interactive viewer: a
// paginated table that scrolls horizontally, and a leaflet of plain text
// read page by page.
package screen

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/stlalpha/ansitube/internal/ansi"
	"github.com/stlalpha/ansitube/internal/layout"
	"github.com/stlalpha/ansitube/internal/logging"
	"github.com/stlalpha/ansitube/internal/pagination"
)

// TableFormatter turns rows into bordered table text, one line per row plus
// border and header lines.
type TableFormatter interface {
	Render(rows iter.Seq[pagination.Row]) string
}

// Rows reserved around the table body:
// 1 header, 3 table borders, 1 status line, 1 input line.
const reservedRows = 6

// Paginator shows one page of a data source as a table. Lines wider than the
// viewport are cropped at a horizontal offset that ShowNext advances.
//
// A Paginator is driven by a single event loop and is not safe for
// concurrent use. Its frame is cached until the data source changes, the
// offset moves or Refresh is called.
type Paginator struct {
	viewport   Viewport
	formatter  TableFormatter
	source     pagination.Source
	tableLines []string
	lineOffset int
	frame      *Frame
	pageStatus func(*Paginator) string
}

// NewPaginator creates a Paginator drawing into viewport.
func NewPaginator(viewport Viewport, formatter TableFormatter) *Paginator {
	return &Paginator{viewport: viewport, formatter: formatter}
}

// BodySize returns how many data rows fit on one page. Use it as the page
// limit of the data source.
func (p *Paginator) BodySize() int {
	return max(1, p.viewport.Height()-reservedRows)
}

// Width returns the current viewport width.
func (p *Paginator) Width() int { return p.viewport.Width() }

// Height returns the current viewport height.
func (p *Paginator) Height() int { return p.viewport.Height() }

// Offset returns the horizontal scroll offset in characters.
func (p *Paginator) Offset() int { return p.lineOffset }

// DataSource returns the source currently shown.
func (p *Paginator) DataSource() pagination.Source { return p.source }

// SetDataSource renders src as a table and rebuilds the frame. The
// horizontal offset is kept.
func (p *Paginator) SetDataSource(src pagination.Source) {
	p.source = src
	p.tableLines = p.renderTable()
	logging.Debug("paginator: data source %T rendered to %d lines", src, len(p.tableLines))
	p.frame = nil
	p.PrepareFrame()
}

func (p *Paginator) renderTable() []string {
	if p.source == nil {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(p.formatter.Render(p.source.Rows()), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// SetPageStatus installs the producer of the status row. It is called once
// per frame with the paginator itself and must not call PrepareFrame.
func (p *Paginator) SetPageStatus(fn func(*Paginator) string) {
	p.pageStatus = fn
	p.frame = nil
}

// ShowNext scrolls right by 30% of the viewport width, stopping at the end
// of the longest line. Once the end is reached the next call returns to the
// left edge.
func (p *Paginator) ShowNext() {
	width := p.viewport.Width()
	longest := width
	for _, line := range p.tableLines {
		longest = max(longest, ansi.VisibleLength(line))
	}
	maxOffset := longest - width
	if maxOffset < 0 {
		panic(fmt.Sprintf("screen: negative scroll range %d (longest %d, width %d)", maxOffset, longest, width))
	}

	if p.lineOffset >= maxOffset {
		p.lineOffset = 0
	} else {
		p.lineOffset = min(maxOffset, p.lineOffset+scrollStep(width))
	}
	logging.Debug("paginator: horizontal offset %d of %d", p.lineOffset, maxOffset)

	p.frame = nil
	p.PrepareFrame()
}

// scrollStep is ceil(width * 0.3) in integer arithmetic.
func scrollStep(width int) int {
	return (width*3 + 9) / 10
}

// Refresh drops the cached frame and builds a new one, e.g. after the
// viewport was resized.
func (p *Paginator) Refresh() {
	p.frame = nil
	p.PrepareFrame()
}

// PrepareFrame returns the frame for the current state. The result is cached
// until the next state change.
func (p *Paginator) PrepareFrame() Frame {
	if p.frame != nil {
		return *p.frame
	}

	width := p.viewport.Width()
	height := max(1, p.viewport.Height()-2)

	rows := make([]string, 0, max(len(p.tableLines), height))
	for _, line := range p.tableLines {
		rows = append(rows, ansi.Slice(line, p.lineOffset, width, true))
	}
	for len(rows) < height {
		rows = append(rows, "")
	}

	var status string
	if p.pageStatus != nil {
		status = p.pageStatus(p)
	}

	p.frame = &Frame{
		Rows:   rows,
		Status: layout.NewLine(status).Render(width),
		Input:  ansi.TruncateVisible(p.RenderPaginationBar()+"  ", width),
	}
	return *p.frame
}

var pageEllipsis = ansi.Wrap("..", ansi.FgCyan)

// RenderPaginationBar draws the page navigator. Sources without offset
// information get an open-ended "< - >" indicator.
func (p *Paginator) RenderPaginationBar() string {
	src, ok := p.source.(pagination.OffsetSource)
	if !ok {
		return fmt.Sprintf("%s %s %s",
			ansi.Wrap("<", ansi.FgBrightYellow),
			ansi.Wrap("-", ansi.FgGreen),
			ansi.Wrap(">", ansi.FgBrightYellow),
		)
	}

	count, offset, limit := src.Count(), src.Offset(), max(1, src.Limit())
	page := offset/limit + 1
	maxPage := max(1, (count+limit-1)/limit)

	number := func(n int) string { return ansi.Wrap(strconv.Itoa(n), ansi.FgGreen) }

	var pages []string
	if page <= 4 {
		for n := 1; n < page; n++ {
			pages = append(pages, number(n))
		}
	} else {
		pages = append(pages, number(1), pageEllipsis, number(page-1))
	}
	pages = append(pages, ansi.Wrap(strconv.Itoa(page), ansi.BgGreen))
	if page > maxPage-4 {
		for n := page + 1; n <= maxPage; n++ {
			pages = append(pages, number(n))
		}
	} else {
		pages = append(pages, number(page+1), pageEllipsis, number(maxPage))
	}

	back, forward := ansi.FgYellow, ansi.FgYellow
	if page > 1 {
		back = ansi.FgGreen
	}
	if page*limit <= count {
		forward = ansi.FgGreen
	}

	return fmt.Sprintf("%s %s %s  Total %s",
		ansi.Wrap("<< <", back),
		strings.Join(pages, " "),
		ansi.Wrap("> >>", forward),
		ansi.Wrap(strconv.Itoa(count), ansi.FgCyan),
	)
}
