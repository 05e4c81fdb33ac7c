package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up             key.Binding
	Down           key.Binding
	Toggle         key.Binding
	Delete         key.Binding
	FilterAll      key.Binding
	FilterActive   key.Binding
	FilterComplete key.Binding
	NextFilter     key.Binding
	PrevFilter     key.Binding
	Find           key.Binding
	FocusInput     key.Binding
	Submit         key.Binding
	Leave          key.Binding
	Help           key.Binding
	Quit           key.Binding
	ForceQuit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:             key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:           key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:         key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Delete:         key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		FilterAll:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		FilterActive:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
		FilterComplete: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
		NextFilter:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next filter")),
		PrevFilter:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev filter")),
		Find:           key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "find")),
		FocusInput:     key.NewBinding(key.WithKeys("tab", "a", "i"), key.WithHelp("a", "new task")),
		Submit:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Leave:          key.NewBinding(key.WithKeys("tab", "esc"), key.WithHelp("esc", "to list")),
		Help:           key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:           key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:      key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// listKeys is the help view while the task list has focus.
type listKeys struct{ keyMap }

func (k listKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Delete, k.FocusInput, k.NextFilter, k.Help, k.Quit}
}

func (k listKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Delete},
		{k.FilterAll, k.FilterActive, k.FilterComplete, k.NextFilter, k.PrevFilter},
		{k.FocusInput, k.Find, k.Help, k.Quit},
	}
}

// inputKeys is the help view while the entry field has focus.
type inputKeys struct{ keyMap }

func (k inputKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Leave}
}

func (k inputKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
