package tube

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/stlalpha/ansitube/internal/screen"
	"github.com/stlalpha/ansitube/internal/terminal"
)

// Scroll is the bubbletea model of the text viewer. Unless Overwrite is
// set it closes by itself once the last page is on screen, leaving that
// page in the terminal.
type Scroll struct {
	size     *terminal.Size
	leaflet  *screen.Leaflet
	keys     scrollKeys
	opts     Options
	quitting bool
}

// NewScroll creates a text viewer over text.
func NewScroll(text string, size *terminal.Size, opts Options) Scroll {
	l := screen.NewLeaflet(size)
	l.Overwrite = opts.Overwrite
	l.SetPageStatus(screen.ScrollStatus)
	l.Write(text)
	return Scroll{size: size, leaflet: l, keys: newScrollKeys(), opts: opts}
}

// Init implements tea.Model. A text that fits on one screen ends the
// session right away unless Overwrite is set.
func (m Scroll) Init() tea.Cmd {
	if m.done() {
		return tea.Quit
	}
	if m.opts.Title != "" {
		return tea.SetWindowTitle(m.opts.Title)
	}
	return nil
}

// Update implements tea.Model.
func (m Scroll) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.size.Resize(msg.Width, msg.Height)
		m.leaflet.Refresh()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.leaflet.GoToNext()
			if m.done() {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m Scroll) done() bool {
	return !m.leaflet.Overwrite && m.leaflet.IsEnd()
}

// Leaflet returns the underlying text screen.
func (m Scroll) Leaflet() *screen.Leaflet { return m.leaflet }

// View implements tea.Model.
func (m Scroll) View() string {
	if m.quitting {
		return ""
	}
	view := m.leaflet.PrepareFrame().String()
	if m.opts.NoColor {
		return xansi.Strip(view)
	}
	return view
}
