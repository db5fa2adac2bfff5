package keynav

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the navigation keys understood by Resolve.
// Related bindings share help text since they render as one help row.
type KeyMap struct {
	// Movement
	Up       key.Binding
	Down     key.Binding
	Home     key.Binding
	End      key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Tree
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding

	// Dropdown
	Close     key.Binding
	Backspace key.Binding
}

// DefaultKeyMap returns the default navigation bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/↓", "Move up/down"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↑/↓", "Move up/down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("Home", "Jump to top"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("End", "Jump to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+b"),
			key.WithHelp("PgUp  Ctrl+B", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+f"),
			key.WithHelp("PgDn  Ctrl+F", "Page down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←/→", "Collapse/Expand"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("←/→", "Collapse/Expand"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("⏎/Space", "Check/uncheck"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "tab"),
			key.WithHelp("Esc/⇥", "Close"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "Remove last tag"),
		),
	}
}

// IsValidKey reports whether msg is handled by navigation. While the
// dropdown is closed only the movement keys count; they open it.
func (km KeyMap) IsValidKey(msg tea.KeyMsg, open bool) bool {
	if key.Matches(msg, km.Up, km.Down, km.Home, km.End, km.PageUp, km.PageDown) {
		return true
	}
	return open && key.Matches(msg, km.Left, km.Right, km.Toggle)
}

// IsValidKey is DefaultKeyMap().IsValidKey.
func IsValidKey(msg tea.KeyMsg, open bool) bool {
	return DefaultKeyMap().IsValidKey(msg, open)
}
