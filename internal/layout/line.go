package layout

import (
	"math"
	"strings"

	"github.com/stlalpha/ansitube/internal/ansi"
)

// Alignment places a line's text within the target width.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// ParseAlignment converts "L", "C" or "R" to an Alignment. Anything else is left.
func ParseAlignment(s string) Alignment {
	switch s {
	case "C":
		return AlignCenter
	case "R":
		return AlignRight
	default:
		return AlignLeft
	}
}

// Line is a single row of styled text. Newlines become spaces and carriage
// returns are dropped, so a Line never spans more than one row.
type Line struct {
	text  string
	align Alignment
	trim  bool
	width int
}

// LineOption configures a Line.
type LineOption func(*Line)

// WithAlign sets the alignment (default AlignLeft).
func WithAlign(a Alignment) LineOption {
	return func(l *Line) { l.align = a }
}

// WithTrim controls whether text wider than the render width is cut (default true).
func WithTrim(trim bool) LineOption {
	return func(l *Line) { l.trim = trim }
}

// WithWidth sets the width used by String (default DefaultWidth).
func WithWidth(width int) LineOption {
	return func(l *Line) { l.width = width }
}

var lineBreaks = strings.NewReplacer("\n", " ", "\r", "")

// NewLine creates a Line from text.
func NewLine(text string, opts ...LineOption) Line {
	l := Line{
		text:  lineBreaks.Replace(text),
		align: AlignLeft,
		trim:  true,
		width: DefaultWidth,
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// Render aligns the text within width. Short text is indented but not
// right-padded. Long text is cut to width when trimming is on, starting at
// the alignment offset, and returned unchanged otherwise.
func (l Line) Render(width int) string {
	length := ansi.VisibleLength(l.text)
	left := l.leftPadding(width, length)

	if length <= width {
		return strings.Repeat(" ", left) + l.text
	}
	if !l.trim {
		return l.text
	}
	return ansi.Slice(l.text, left, width, true)
}

func (l Line) leftPadding(width, length int) int {
	var pad float64
	switch l.align {
	case AlignRight:
		pad = math.Floor(float64(width - length))
	case AlignCenter:
		pad = math.Floor(float64(width-length) / 2)
	}
	return int(math.Abs(pad))
}

// String renders the line at its configured width.
func (l Line) String() string {
	return l.Render(l.width)
}
