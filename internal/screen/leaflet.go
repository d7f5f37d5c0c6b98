package screen

import (
	"strings"

	"github.com/stlalpha/ansitube/internal/ansi"
	"github.com/stlalpha/ansitube/internal/layout"
)

// Leaflet shows a growing body of text one screen at a time. Text is wrapped
// to the viewport width, so markup is carried across wrapped rows.
type Leaflet struct {
	// Overwrite keeps the leaflet open after the last page. When false the
	// session closes as soon as the end has been shown.
	Overwrite bool

	viewport   Viewport
	text       strings.Builder
	rows       []string
	rowsWidth  int
	position   int
	frame      *Frame
	pageStatus func(*Leaflet) string
}

// NewLeaflet creates an empty leaflet drawing into viewport.
func NewLeaflet(viewport Viewport) *Leaflet {
	return &Leaflet{viewport: viewport, Overwrite: true}
}

// Width returns the current viewport width.
func (l *Leaflet) Width() int { return l.viewport.Width() }

// Height returns the current viewport height.
func (l *Leaflet) Height() int { return l.viewport.Height() }

// Position returns the index of the first row on screen.
func (l *Leaflet) Position() int { return l.position }

// Write appends s to the text.
func (l *Leaflet) Write(s string) {
	l.text.WriteString(s)
	l.invalidate()
}

// Writeln appends s and a line break.
func (l *Leaflet) Writeln(s string) {
	l.text.WriteString(s)
	l.text.WriteByte('\n')
	l.invalidate()
}

func (l *Leaflet) invalidate() {
	l.rows = nil
	l.frame = nil
}

// SetPageStatus installs the producer of the status row.
func (l *Leaflet) SetPageStatus(fn func(*Leaflet) string) {
	l.pageStatus = fn
	l.frame = nil
}

func (l *Leaflet) bodyHeight() int {
	return max(1, l.viewport.Height()-2)
}

// layoutRows wraps the text at the current width. The result is reused until
// the text or the width changes.
func (l *Leaflet) layoutRows() []string {
	width := l.viewport.Width()
	if l.rows != nil && l.rowsWidth == width {
		return l.rows
	}
	text := strings.TrimSuffix(l.text.String(), "\n")
	l.rows = strings.Split(layout.NewBlock(text).Render(width), "\n")
	l.rowsWidth = width
	return l.rows
}

// IsEnd reports whether the last row is on screen.
func (l *Leaflet) IsEnd() bool {
	return l.position+l.bodyHeight() >= len(l.layoutRows())
}

// GoToNext moves forward one screen. It does nothing at the end.
func (l *Leaflet) GoToNext() {
	if l.IsEnd() {
		return
	}
	l.position += l.bodyHeight()
	l.frame = nil
}

// Refresh drops the cached frame, e.g. after the viewport was resized. The
// position is clamped so the screen never starts past the last row.
func (l *Leaflet) Refresh() {
	l.frame = nil
	l.position = min(l.position, max(0, len(l.layoutRows())-1))
}

// PrepareFrame returns the frame for the current position. The result is
// cached until the next state change.
func (l *Leaflet) PrepareFrame() Frame {
	if l.frame != nil && l.rowsWidth == l.viewport.Width() {
		return *l.frame
	}

	height := l.bodyHeight()
	all := l.layoutRows()
	start := min(l.position, len(all))
	rows := make([]string, 0, height)
	rows = append(rows, all[start:min(start+height, len(all))]...)
	for len(rows) < height {
		rows = append(rows, "")
	}

	var status string
	if l.pageStatus != nil {
		status = l.pageStatus(l)
	}

	l.frame = &Frame{
		Rows:   rows,
		Status: layout.NewLine(status).Render(l.viewport.Width()),
	}
	return *l.frame
}

// ScrollStatus is the usual status producer for a leaflet: a centred prompt
// to continue, or an end marker on the last page.
func ScrollStatus(l *Leaflet) string {
	color := ansi.FgMagenta.String()
	text := "-- End --"
	if !l.IsEnd() {
		text = "-- Press " + ansi.Bold.String() + "Enter" + ansi.Reset.String() + color + " to continue --"
	}
	centred := layout.NewLine(text, layout.WithAlign(layout.AlignCenter)).Render(l.Width())
	return color + centred + ansi.Reset.String()
}
