package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the pager's own bindings. Scrolling keys belong to the
// viewport.
type keyMap struct {
	Quit       key.Binding
	CycleTheme key.Binding
	Top        key.Binding
	Bottom     key.Binding
}

// defaultKeyMap returns the default key bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Theme"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Bottom"),
		),
	}
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Top, k.Bottom, k.CycleTheme, k.Quit}
}
