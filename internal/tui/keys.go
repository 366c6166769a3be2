package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the non-typing key bindings.
type KeyMap struct {
	Submit  key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultKeyMap provides the default key bindings.
var DefaultKeyMap = KeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Restart: key.NewBinding(
		key.WithKeys("tab", "ctrl+r"),
		key.WithHelp("tab", "restart"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
