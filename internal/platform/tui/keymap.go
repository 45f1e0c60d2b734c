package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/magequest/internal/core"
)

// KeyMap defines the terminal key bindings.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Fire    key.Binding
	Confirm key.Binding
	Select1 key.Binding
	Select2 key.Binding
	Select3 key.Binding
	Select4 key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to show in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Confirm, k.Select1, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Fire, k.Confirm},
		{k.Select1, k.Select2, k.Select3, k.Select4},
		{k.Quit},
	}
}

// DefaultKeyMap returns the default bindings. Space both confirms and
// fires, so it starts the game and shoots in the boss fight.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Confirm: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("enter", "confirm"),
		),
		Select1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1-4", "choose"),
		),
		Select2: key.NewBinding(key.WithKeys("2")),
		Select3: key.NewBinding(key.WithKeys("3")),
		Select4: key.NewBinding(key.WithKeys("4")),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Actions returns every game action bound to the key.
func (k KeyMap) Actions(msg tea.KeyMsg) []core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Fire, core.ActionFire},
		{k.Confirm, core.ActionConfirm},
		{k.Select1, core.ActionSelect1},
		{k.Select2, core.ActionSelect2},
		{k.Select3, core.ActionSelect3},
		{k.Select4, core.ActionSelect4},
	}

	var actions []core.Action
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			actions = append(actions, b.action)
		}
	}
	return actions
}
