package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	toggle  key.Binding
	copy    key.Binding
	newItem key.Binding
	edit    key.Binding
	delete  key.Binding
	refresh key.Binding
	unlock  key.Binding
	lock    key.Binding
	secret  key.Binding
	about   key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	toggle:  key.NewBinding(key.WithKeys(" ", "v")),
	copy:    key.NewBinding(key.WithKeys("c")),
	newItem: key.NewBinding(key.WithKeys("n")),
	edit:    key.NewBinding(key.WithKeys("e")),
	delete:  key.NewBinding(key.WithKeys("d")),
	refresh: key.NewBinding(key.WithKeys("r")),
	unlock:  key.NewBinding(key.WithKeys("u")),
	lock:    key.NewBinding(key.WithKeys("L")),
	secret:  key.NewBinding(key.WithKeys("p")),
	about:   key.NewBinding(key.WithKeys("i")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),
}
