package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the viewer.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Canvas
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	ResetPan key.Binding
	Snapshot key.Binding

	// Panes
	ToggleRecent key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "Pan left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "Pan right"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "Pan up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "Pan down"),
		),
		ResetPan: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Reset pan"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Save BMP snapshot"),
		),

		ToggleRecent: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Recent commands"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Snapshot, k.ToggleRecent, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Canvas
		{k.Left, k.Right, k.Up, k.Down, k.ResetPan},
		// Output
		{k.Snapshot, k.ToggleRecent},
		// General
		{k.CycleTheme, k.Help, k.Quit},
	}
}
