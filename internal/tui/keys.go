package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	enter       key.Binding
	esc         key.Binding
	tab         key.Binding
	backtab     key.Binding
	quit        key.Binding
	forceQuit   key.Binding
	newNote     key.Binding
	newNotebook key.Binding
	search      key.Binding
	settings    key.Binding
	home        key.Binding
	signOut     key.Binding
	buildInfo   key.Binding
	login       key.Binding
	save        key.Binding
	retry       key.Binding
	discard     key.Binding
	copy        key.Binding
	preview     key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	enter:       key.NewBinding(key.WithKeys("enter")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	tab:         key.NewBinding(key.WithKeys("tab")),
	backtab:     key.NewBinding(key.WithKeys("shift+tab")),
	quit:        key.NewBinding(key.WithKeys("q")),
	forceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
	newNote:     key.NewBinding(key.WithKeys("n", "w")),
	newNotebook: key.NewBinding(key.WithKeys("b")),
	search:      key.NewBinding(key.WithKeys("/")),
	settings:    key.NewBinding(key.WithKeys("s")),
	home:        key.NewBinding(key.WithKeys("h")),
	signOut:     key.NewBinding(key.WithKeys("o")),
	buildInfo:   key.NewBinding(key.WithKeys("v")),
	login:       key.NewBinding(key.WithKeys("l")),
	save:        key.NewBinding(key.WithKeys("ctrl+s")),
	retry:       key.NewBinding(key.WithKeys("ctrl+r")),
	discard:     key.NewBinding(key.WithKeys("ctrl+d")),
	copy:        key.NewBinding(key.WithKeys("ctrl+y")),
	preview:     key.NewBinding(key.WithKeys("ctrl+p")),
}
