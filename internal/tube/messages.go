// Package tube runs the interactive viewers on a bubbletea event loop: a
// paginated table and a page-by-page text reader.
package tube

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stlalpha/ansitube/internal/pagination"
	"github.com/stlalpha/ansitube/internal/reload"
)

// ReloadRequestMsg asks the table viewer to read its data again.
// Send it with tea.Program.Send from a file watcher or a schedule.
type ReloadRequestMsg struct {
	Reason reload.Reason
}

// reloadedMsg carries the result of a reload.
type reloadedMsg struct {
	rows []pagination.Row
	err  error
}

// Loader reads the full data set.
type Loader func() ([]pagination.Row, error)

func loadCmd(load Loader, reason reload.Reason) tea.Cmd {
	return func() tea.Msg {
		rows, err := load()
		if err != nil {
			err = &ReloadError{Reason: reason, Err: err}
		}
		return reloadedMsg{rows: rows, err: err}
	}
}

// ReloadError reports a failed reload. The previous rows stay on screen.
type ReloadError struct {
	Reason reload.Reason
	Err    error
}

func (e *ReloadError) Error() string { return "reload (" + e.Reason.String() + "): " + e.Err.Error() }
func (e *ReloadError) Unwrap() error { return e.Err }

// Options configure a viewer.
type Options struct {
	// Renderer styles the help line. Nil uses lipgloss's default renderer;
	// SSH sessions pass a renderer bound to the session.
	Renderer *lipgloss.Renderer
	// NoColor strips all styling from frames.
	NoColor bool
	// Reload reads the data again on a ReloadRequestMsg. Nil ignores
	// reload requests.
	Reload Loader
	// Overwrite keeps the text viewer open after the last page.
	Overwrite bool
	// Title is set as the terminal window title.
	Title string
}

func newHelp(r *lipgloss.Renderer) help.Model {
	h := help.New()
	if r == nil {
		return h
	}
	keyStyle := r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})
	descStyle := r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B2B2B2", Dark: "#4A4A4A"})
	sepStyle := r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DDDADA", Dark: "#3C3C3C"})
	h.Styles.ShortKey = keyStyle
	h.Styles.ShortDesc = descStyle
	h.Styles.ShortSeparator = sepStyle
	h.Styles.Ellipsis = sepStyle
	h.Styles.FullKey = keyStyle
	h.Styles.FullDesc = descStyle
	h.Styles.FullSeparator = sepStyle
	return h
}
