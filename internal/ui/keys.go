package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Success key.Binding
	Failure key.Binding
	Unknown key.Binding
	Reset   key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Success: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "simulate success"),
		),
		Failure: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "simulate failure"),
		),
		Unknown: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "simulate unknown error"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Success, k.Failure, k.Unknown, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Success, k.Failure, k.Unknown}, {k.Reset, k.Quit}}
}
