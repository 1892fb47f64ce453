package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds key bindings for the search screen. Letter keys are query
// input, so navigation uses arrows only.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Submit key.Binding
	Erase  key.Binding
	Quit   key.Binding
}

// ShortHelp returns the bindings for the help bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Submit, k.Quit}
}

// FullHelp returns the bindings grouped for expanded help.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Submit, k.Quit},
	}
}

// SearchKeyMap returns the key bindings for the search screen.
func SearchKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit (\"exit\" quits)"),
		),
		// Erase is matched only to swallow the key; input never shrinks.
		Erase: key.NewBinding(
			key.WithKeys("backspace", "delete", "ctrl+h", "ctrl+w", "ctrl+u"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}
