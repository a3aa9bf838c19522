package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings available while no note is being edited.
type KeyMap struct {
	Toggle     key.Binding
	Stop       key.Binding
	NoteActive key.Binding
	NoteEntry  key.Binding
	Delete     key.Binding
	Up         key.Binding
	Down       key.Binding
	PrevDay    key.Binding
	NextDay    key.Binding
	Today      key.Binding
	Clear      key.Binding
	Quit       key.Binding
}

// DefaultKeyMap mirrors the on-screen footer.
var DefaultKeyMap = KeyMap{
	Toggle: key.NewBinding(
		key.WithKeys(" ", "space"),
		key.WithHelp("spc", "work/break"),
	),
	Stop: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stop"),
	),
	NoteActive: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "note"),
	),
	NoteEntry: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "edit entry"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	PrevDay: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "prev day"),
	),
	NextDay: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next day"),
	),
	Today: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "today"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Stop, k.NoteActive, k.Delete, k.Up, k.PrevDay, k.NoteEntry, k.Clear, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Stop, k.NoteActive, k.Quit},
		{k.Up, k.Down, k.NoteEntry, k.Delete, k.Clear},
		{k.PrevDay, k.NextDay, k.Today},
	}
}
