package nav

import "github.com/charmbracelet/bubbles/key"

// Keymaps
type keyMap struct {
	up             key.Binding
	down           key.Binding
	fold           key.Binding
	add            key.Binding
	addChild       key.Binding
	remove         key.Binding
	rename         key.Binding
	cycleType      key.Binding
	cycleArrayType key.Binding
	moveUp         key.Binding
	moveDown       key.Binding

	// while renaming
	confirm key.Binding
	cancel  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:   key.NewBinding(key.WithKeys("up", "k")),
		down: key.NewBinding(key.WithKeys("down", "j")),
		fold: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fold"),
		),
		add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add field"),
		),
		addChild: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "add child"),
		),
		remove: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		rename: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter", "edit key"),
		),
		cycleType: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "type"),
		),
		cycleArrayType: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "item type"),
		),
		moveUp: key.NewBinding(
			key.WithKeys("shift+up", "K"),
			key.WithHelp("K", "move up"),
		),
		moveDown: key.NewBinding(
			key.WithKeys("shift+down", "J"),
			key.WithHelp("J", "move down"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.add,
		k.addChild,
		k.rename,
		k.cycleType,
		k.remove,
		k.moveUp,
		k.moveDown,
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{}, // only render short help
	}
}

type editKeyMap struct {
	keyMap
}

func (k editKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.confirm, k.cancel}
}
