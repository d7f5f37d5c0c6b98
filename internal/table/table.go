// Package table renders rows into a bordered text table whose cells carry
// ANSI styling.
package table

import (
	"iter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/stlalpha/ansitube/internal/pagination"
)

// EmptyText is the single cell shown for a source without rows.
const EmptyText = "Empty table"

// Formatter draws rows as a bordered table, one output line per row plus the
// border and header lines.
type Formatter struct {
	renderer *lipgloss.Renderer
}

// NewFormatter creates a Formatter. A nil renderer uses lipgloss's default,
// which detects the colour profile of stdout; SSH sessions pass their own.
func NewFormatter(renderer *lipgloss.Renderer) *Formatter {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	return &Formatter{renderer: renderer}
}

// Render formats every row yielded by rows. Column order comes from the
// first row; later rows are matched by field name.
func (f *Formatter) Render(rows iter.Seq[pagination.Row]) string {
	var headers []string
	var data [][]string
	for row := range rows {
		if headers == nil {
			headers = row.Names()
		}
		cells := make([]string, len(headers))
		for i, name := range headers {
			if v, ok := row.Get(name); ok {
				cells[i] = FormatCell(v)
			}
		}
		data = append(data, cells)
	}

	cellStyle := f.renderer.NewStyle().Padding(0, 1)
	headerStyle := cellStyle.Foreground(lipgloss.Color("2"))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(f.renderer.NewStyle()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	if len(data) == 0 {
		t.Row(EmptyText)
	} else {
		t.Headers(headers...).Rows(data...)
	}
	return t.String()
}
