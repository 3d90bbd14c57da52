package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the global key bindings
type keyMap struct {
	Quit    key.Binding
	Help    key.Binding
	Refresh key.Binding
	NextTab key.Binding
	PrevTab key.Binding

	Up     key.Binding
	Down   key.Binding
	Filter key.Binding
	Search key.Binding

	Add     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Approve key.Binding
	Toggle  key.Binding
}

var keys = keyMap{
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	NextTab: key.NewBinding(key.WithKeys("tab", "]"), key.WithHelp("tab", "next screen")),
	PrevTab: key.NewBinding(key.WithKeys("shift+tab", "["), key.WithHelp("shift+tab", "prev screen")),

	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	Search: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "search titles")),

	Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	Delete:  key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
	Approve: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "approve")),
	Toggle:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle view")),
}
