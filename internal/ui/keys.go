package ui

import (
	"github.com/atomicstack/cheatmenu/internal/ui/command"
	"github.com/atomicstack/cheatmenu/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Quit     key.Binding
	Next     key.Binding
	Previous key.Binding
	Enter    key.Binding
	Back     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "tab", "j"),
			key.WithHelp("↓/j", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

// messageFor translates a key press into a navigation message.
func (k keyMap) messageFor(msg tea.KeyMsg) command.Message {
	switch {
	case key.Matches(msg, k.Quit):
		return command.Quit
	case key.Matches(msg, k.Next):
		return command.NextEntry
	case key.Matches(msg, k.Previous):
		return command.PreviousEntry
	case key.Matches(msg, k.Enter):
		return command.Enter
	case key.Matches(msg, k.Back):
		return command.Back
	}
	return command.None
}

// screenHelp implements help.KeyMap for the bindings active on one screen.
type screenHelp struct {
	keys   keyMap
	screen state.Screen
}

func (h screenHelp) ShortHelp() []key.Binding {
	if h.screen == state.ScreenSecondary {
		return []key.Binding{h.keys.Quit, h.keys.Back, h.keys.Next, h.keys.Previous, h.keys.Enter}
	}
	return []key.Binding{h.keys.Quit, h.keys.Next, h.keys.Previous, h.keys.Enter}
}

func (h screenHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
