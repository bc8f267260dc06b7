package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// editKeyMap defines key bindings while the sheet is being edited
type editKeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Toggle   key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k editKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Toggle, k.Activate, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k editKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Activate},
		{k.Toggle, k.Quit},
	}
}

// viewKeyMap defines key bindings for the read-only guest view
type viewKeyMap struct {
	Scroll key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k viewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Toggle, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k viewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Scroll, k.Toggle, k.Quit},
	}
}

func newEditKeyMap() editKeyMap {
	return editKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "prev"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "press button"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "view as guest"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func newViewKeyMap() viewKeyMap {
	return viewKeyMap{
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "pgup", "pgdown", "k", "j"),
			key.WithHelp("↑/↓", "scroll"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", "e", "ctrl+t"),
			key.WithHelp("enter/e", "edit information"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
