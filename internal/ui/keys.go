package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the picker-level shortcuts. Tree navigation keys live in
// keynav and are handled by the selector.
type KeyMap struct {
	Confirm key.Binding
	Submit  key.Binding
	Cancel  key.Binding
	Copy    key.Binding
	Theme   key.Binding
	Toggle  key.Binding
}

// DefaultKeyMap returns the default picker bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "done"),
		),
		// Submit confirms only while the dropdown is closed.
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "toggle / done"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "cancel"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy values"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "theme"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "show/hide list"),
		),
	}
}

func (km KeyMap) hints() []key.Binding {
	return []key.Binding{km.Submit, km.Toggle, km.Copy, km.Theme, km.Confirm, km.Cancel}
}
