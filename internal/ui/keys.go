package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings of the picker outside filter mode.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Home     key.Binding
	End      key.Binding
	Previous key.Binding
	Next     key.Binding
	Toggle   key.Binding
	Filter   key.Binding
	Submit   key.Binding
	Copy     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "K"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "J"),
			key.WithHelp("↓/j", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		Previous: key.NewBinding(
			key.WithKeys("left", "h", "H"),
			key.WithHelp("←/h", "previous tab"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "L"),
			key.WithHelp("→/l", "next tab"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "select/deselect package"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit (only on last tab)"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy install command"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// Legend groups the bindings into the footer rows.
func (k KeyMap) Legend() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Home, k.End},
		{k.Previous, k.Next},
		{k.Toggle, k.Filter},
		{k.Submit, k.Copy},
		{k.Quit},
	}
}
