package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the combobox bindings. Next and Prev only navigate while the
// listbox is expanded; otherwise they reach the text input untouched.
type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Select key.Binding
	Expand key.Binding
	Close  key.Binding
}

// DefaultKeyMap returns the ARIA combobox bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next option"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous option"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Expand: key.NewBinding(
			key.WithKeys("alt+enter"),
			key.WithHelp("alt+enter", "open list"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close list"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Select, k.Expand, k.Close}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// AppKeyMap holds the demo host's own bindings.
type AppKeyMap struct {
	Copy  key.Binding
	Theme key.Binding
	Quit  key.Binding
}

// DefaultAppKeyMap returns the demo host bindings.
func DefaultAppKeyMap() AppKeyMap {
	return AppKeyMap{
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy selection"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "next theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
