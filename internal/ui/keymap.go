package ui

import "github.com/charmbracelet/bubbles/key"

// main
type keyMap struct {
	quit      key.Binding
	forceQuit key.Binding
	showKbar  key.Binding
	tabView   key.Binding
	copyJSON  key.Binding
	clearAll  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
		showKbar: key.NewBinding(
			key.WithKeys("ctrl+k", "alt+k"),
			key.WithHelp("ctrl+k", "jump"),
		),
		tabView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch schema/preview"),
		),
		copyJSON: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy JSON"),
		),
		clearAll: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "clear all"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.tabView,
		k.showKbar,
		k.copyJSON,
		k.clearAll,
		k.quit,
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{}, // only render short help
	}
}
