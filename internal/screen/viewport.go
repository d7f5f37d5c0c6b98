package screen

import (
	"slices"
	"strings"
)

// Viewport reports the current size of the visible area in character cells.
// Screens query it on every render and never cache the answer.
type Viewport interface {
	Width() int
	Height() int
}

// Frame is everything a screen shows for one render cycle: the body rows,
// a status row and an input row underneath.
type Frame struct {
	Rows   []string
	Status string
	Input  string
}

// Lines returns the body rows followed by the status and input rows.
func (f Frame) Lines() []string {
	return append(slices.Clip(f.Rows), f.Status, f.Input)
}

// String joins Lines with newlines.
func (f Frame) String() string {
	return strings.Join(f.Lines(), "\n")
}
