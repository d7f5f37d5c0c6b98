package tube

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/stlalpha/ansitube/internal/logging"
	"github.com/stlalpha/ansitube/internal/pagination"
	"github.com/stlalpha/ansitube/internal/screen"
	"github.com/stlalpha/ansitube/internal/terminal"
)

// Table is the bubbletea model of the paginated table viewer.
type Table struct {
	size     *terminal.Size
	screen   *screen.Paginator
	pages    Pages
	keys     tableKeys
	help     help.Model
	opts     Options
	err      error
	quitting bool
}

// NewTable creates a table viewer showing pages in a viewport of the given
// size. The page size follows the viewport height.
func NewTable(pages Pages, size *terminal.Size, formatter screen.TableFormatter, opts Options) Table {
	m := Table{
		size:   size,
		screen: screen.NewPaginator(size, formatter),
		keys:   newTableKeys(),
		help:   newHelp(opts.Renderer),
		opts:   opts,
	}
	m.help.Width = size.Width()
	m.screen.SetPageStatus(tableStatus(m.help.View(m.keys)))
	m.pages = pages.Resize(m.screen.BodySize())
	m.screen.SetDataSource(m.pages)
	return m
}

// Init implements tea.Model.
func (m Table) Init() tea.Cmd {
	if m.opts.Title == "" {
		return nil
	}
	return tea.SetWindowTitle(m.opts.Title)
}

// Update implements tea.Model.
func (m Table) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)

	case ReloadRequestMsg:
		if m.opts.Reload == nil {
			return m, nil
		}
		if _, ok := m.pages.(pagerPages); !ok {
			log.Printf("WARN: Ignoring reload (%s): streamed data cannot be re-read in place", msg.Reason)
			return m, nil
		}
		return m, loadCmd(m.opts.Reload, msg.Reason)

	case reloadedMsg:
		m.applyReload(msg)
		return m, nil
	}
	return m, nil
}

func (m *Table) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var (
		next    Pages
		changed bool
	)
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return *m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		next, changed = m.pages.Next()
	case key.Matches(msg, m.keys.Prev):
		next, changed = m.pages.Prev()
	case key.Matches(msg, m.keys.First):
		next, changed = m.pages.First()
	case key.Matches(msg, m.keys.Scroll):
		m.screen.ShowNext()
		return *m, nil
	default:
		return *m, nil
	}

	if changed {
		m.pages = next
		m.screen.SetDataSource(m.pages)
		logging.Debug("tube: showing %T page", m.pages)
	}
	return *m, nil
}

func (m *Table) resize(width, height int) {
	m.size.Resize(width, height)
	m.help.Width = m.size.Width()
	m.screen.SetPageStatus(tableStatus(m.help.View(m.keys)))

	resized := m.pages.Resize(m.screen.BodySize())
	if resized == m.pages {
		m.screen.Refresh()
		return
	}
	m.pages = resized
	m.screen.SetDataSource(m.pages)
}

func (m *Table) applyReload(msg reloadedMsg) {
	if msg.err != nil {
		log.Printf("ERROR: %v", msg.err)
		m.err = msg.err
		return
	}
	current, ok := m.pages.(pagerPages)
	if !ok {
		return
	}
	next, err := current.reload(msg.rows)
	if err != nil {
		log.Printf("ERROR: Reload failed: %v", err)
		m.err = err
		return
	}
	m.err = nil
	m.pages = next
	m.screen.SetDataSource(m.pages)
	log.Printf("INFO: Reloaded %d rows", len(msg.rows))
}

// Pages returns the pages currently shown.
func (m Table) Pages() Pages { return m.pages }

// Err returns the error of the last failed reload, or nil.
func (m Table) Err() error { return m.err }

// Screen returns the underlying paginated screen.
func (m Table) Screen() *screen.Paginator { return m.screen }

// View implements tea.Model.
func (m Table) View() string {
	if m.quitting {
		return ""
	}
	view := m.screen.PrepareFrame().String()
	if m.opts.NoColor {
		return xansi.Strip(view)
	}
	return view
}

// tableStatus builds the status producer: the position in the data set
// followed by the key help.
func tableStatus(helpView string) func(*screen.Paginator) string {
	return func(p *screen.Paginator) string {
		var info string
		switch src := p.DataSource().(type) {
		case pagination.OffsetSource:
			count, offset := src.Count(), src.Offset()
			if count == 0 {
				info = "no rows"
			} else {
				info = fmt.Sprintf("rows %d-%d of %d", offset+1, min(offset+src.Limit(), count), count)
			}
		case forwardPages:
			info = fmt.Sprintf("page %d", src.PageNumber())
		}
		if p.Offset() > 0 {
			info += fmt.Sprintf("  col +%d", p.Offset())
		}
		return info + "  " + helpView
	}
}
