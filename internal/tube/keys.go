package tube

import "github.com/charmbracelet/bubbles/key"

// tableKeys are the bindings of the table viewer.
type tableKeys struct {
	Next   key.Binding
	Prev   key.Binding
	Scroll key.Binding
	First  key.Binding
	Quit   key.Binding
}

func newTableKeys() tableKeys {
	return tableKeys{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n", "pgdown"),
			key.WithHelp("→/n", "next page"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "p", "pgup"),
			key.WithHelp("←/p", "prev page"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("tab", "enter"),
			key.WithHelp("tab", "scroll"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k tableKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Scroll, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k tableKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev, k.First}, {k.Scroll, k.Quit}}
}

// scrollKeys are the bindings of the text viewer.
type scrollKeys struct {
	Next key.Binding
	Quit key.Binding
}

func newScrollKeys() scrollKeys {
	return scrollKeys{
		Next: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", "continue"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
