package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left  key.Binding
	Right key.Binding
	Pick  key.Binding
	Undo  key.Binding
	Reset key.Binding
	Solve key.Binding
	Hint  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev bottle")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next bottle")),
		Pick:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select/pour")),
		Undo:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Solve: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "solve")),
		Hint:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hint")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.Undo, k.Solve, k.Hint, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Pick},
		{k.Undo, k.Reset},
		{k.Solve, k.Hint},
		{k.Help, k.Quit},
	}
}
