package viewer

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left       key.Binding
	Right      key.Binding
	Previous   key.Binding
	Next       key.Binding
	Mark       key.Binding
	Click      key.Binding
	Clear      key.Binding
	ChartType  key.Binding
	Scale      key.Binding
	ToggleHelp key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "cursor back"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "cursor forward"),
	),
	Previous: key.NewBinding(
		key.WithKeys("[", "pgup"),
		key.WithHelp("[/pgup", "previous period"),
	),
	Next: key.NewBinding(
		key.WithKeys("]", "pgdown"),
		key.WithHelp("]/pgdown", "next period"),
	),
	Mark: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "start or finish a selection"),
	),
	Click: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "show events in bucket"),
	),
	Clear: key.NewBinding(
		key.WithKeys("x", "esc"),
		key.WithHelp("x/esc", "clear selection"),
	),
	ChartType: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "cycle chart type"),
	),
	Scale: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "cycle scale"),
	),
	ToggleHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q/ctrl+c", "quit"),
	),
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{
		k.Left, k.Right, k.Previous, k.Next, k.Mark, k.Click,
		k.Clear, k.ChartType, k.Scale, k.ToggleHelp, k.Quit,
	}
}
