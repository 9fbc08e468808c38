package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Start     key.Binding
	Enter     key.Binding
	Next      key.Binding
	Prev      key.Binding
	Left      key.Binding
	Right     key.Binding
	Backspace key.Binding
	Submit    key.Binding
	Toggle    key.Binding
	Theme     key.Binding
	Settings  key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Start:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "type key")),
		Next:      key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next key")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev key")),
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "back")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "forward")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "erase")),
		Submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
		Toggle:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "toggle view")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Settings:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// phaseKeys feeds help.Model the bindings the current phase accepts.
type phaseKeys struct {
	bindings []key.Binding
}

func (p phaseKeys) ShortHelp() []key.Binding { return p.bindings }

func (p phaseKeys) FullHelp() [][]key.Binding { return [][]key.Binding{p.bindings} }
