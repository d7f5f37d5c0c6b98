package terminal

import (
	"log"
	"sync"

	"golang.org/x/term"
)

// Size used when the terminal cannot report one.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Size is a viewport whose dimensions can change while a screen reads them,
// e.g. from an SSH window-change request. It is safe for concurrent use.
type Size struct {
	mu     sync.RWMutex
	width  int
	height int
}

// NewSize creates a Size. Non-positive dimensions fall back to the defaults.
func NewSize(width, height int) *Size {
	s := &Size{}
	s.Resize(width, height)
	return s
}

// Width returns the number of columns.
func (s *Size) Width() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width
}

// Height returns the number of rows.
func (s *Size) Height() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.height
}

// Resize updates both dimensions.
func (s *Size) Resize(width, height int) {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	s.mu.Lock()
	s.width, s.height = width, height
	s.mu.Unlock()
}

var getSize = term.GetSize

// FromFD reads the size of the terminal open on fd, falling back to the
// default size when fd is not a terminal.
func FromFD(fd int) *Size {
	width, height, err := getSize(fd)
	if err != nil {
		log.Printf("WARN: Cannot read terminal size: %v; using %dx%d", err, DefaultWidth, DefaultHeight)
		return NewSize(DefaultWidth, DefaultHeight)
	}
	return NewSize(width, height)
}

// IsTerminal reports whether fd is a terminal.
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}
