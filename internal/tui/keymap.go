package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the workspace TUI.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	ToggleFold   key.Binding
	Open         key.Binding
	SplitVert    key.Binding
	SplitHoriz   key.Binding
	CloseTab     key.Binding
	ClosePane    key.Binding
	NextTab      key.Binding
	PrevTab      key.Binding
	MoveTabLeft  key.Binding
	MoveTabRight key.Binding
	NextPane     key.Binding
	Grow         key.Binding
	Shrink       key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.ToggleFold, k.Open},
		{k.SplitVert, k.SplitHoriz, k.ClosePane, k.NextPane},
		{k.NextTab, k.PrevTab, k.CloseTab, k.MoveTabLeft, k.MoveTabRight},
		{k.Grow, k.Shrink, k.Help, k.Quit},
	}
}

var keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	ToggleFold: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "fold/unfold"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open page"),
	),
	SplitVert: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "split vertically"),
	),
	SplitHoriz: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "split horizontally"),
	),
	CloseTab: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "close tab"),
	),
	ClosePane: key.NewBinding(
		key.WithKeys("X"),
		key.WithHelp("X", "close pane"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous tab"),
	),
	MoveTabLeft: key.NewBinding(
		key.WithKeys("{"),
		key.WithHelp("{", "move tab left"),
	),
	MoveTabRight: key.NewBinding(
		key.WithKeys("}"),
		key.WithHelp("}", "move tab right"),
	),
	NextPane: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "next pane"),
	),
	Grow: key.NewBinding(
		key.WithKeys(">"),
		key.WithHelp(">", "grow pane"),
	),
	Shrink: key.NewBinding(
		key.WithKeys("<"),
		key.WithHelp("<", "shrink pane"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
