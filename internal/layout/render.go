// Package layout provides width-bounded text primitives that are aware of
// ANSI style directives. Every primitive implements Renderer, so blocks can
// nest lines and other blocks.
package layout

// Renderer produces styled text no wider than the given number of visible
// characters per row.
type Renderer interface {
	Render(width int) string
}

// DefaultWidth is the width used when a primitive is converted to a string.
const DefaultWidth = 80
