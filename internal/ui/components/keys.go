package components

import "charm.land/bubbles/v2/key"

// KeyMap holds the bindings shared by list-style components and screens.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Previous key.Binding
	Filter   key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "subir"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "descer"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "selecionar"),
		),
		Previous: key.NewBinding(
			key.WithKeys("left", "b"),
			key.WithHelp("←/b", "anterior"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filtrar"),
		),
	}
}
