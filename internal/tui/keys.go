// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	forceQuit key.Binding
	watch     key.Binding
	unwatch   key.Binding
	buy       key.Binding
	alert     key.Binding
	save      key.Binding
	backup    key.Binding
	rotate    key.Binding
	analyze   key.Binding
	importCSV key.Binding
	exportCSV key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	watch:     key.NewBinding(key.WithKeys("w")),
	unwatch:   key.NewBinding(key.WithKeys("d")),
	buy:       key.NewBinding(key.WithKeys("b")),
	alert:     key.NewBinding(key.WithKeys("a")),
	save:      key.NewBinding(key.WithKeys("s")),
	backup:    key.NewBinding(key.WithKeys("u")),
	rotate:    key.NewBinding(key.WithKeys("r")),
	analyze:   key.NewBinding(key.WithKeys("g")),
	importCSV: key.NewBinding(key.WithKeys("i")),
	exportCSV: key.NewBinding(key.WithKeys("x")),
}
