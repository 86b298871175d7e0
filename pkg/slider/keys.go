package slider

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings a focused slider responds to.
type KeyMap struct {
	Increment key.Binding
	Decrement key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Home      key.Binding
	End       key.Binding
}

// DefaultKeyMap mirrors the usual range-input bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Increment: key.NewBinding(
			key.WithKeys("right", "up", "l", "k"),
			key.WithHelp("→/↑", "increase"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("left", "down", "h", "j"),
			key.WithHelp("←/↓", "decrease"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "big increase"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "big decrease"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "minimum"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "maximum"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Decrement, k.Increment, k.Home, k.End}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Decrement, k.Increment},
		{k.PageDown, k.PageUp},
		{k.Home, k.End},
	}
}
