package ui

import (
	"errors"
	"fmt"

	"github.com/atomicstack/cheatmenu/internal/logging"
	"github.com/atomicstack/cheatmenu/internal/ui/command"
	"github.com/atomicstack/cheatmenu/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	next := m.keys.messageFor(keyMsg)
	if next == command.None {
		return nil
	}
	return m.dispatch(next)
}

func (m *Model) handleDispatchMsg(msg tea.Msg) tea.Cmd {
	d, ok := msg.(dispatchMsg)
	if !ok {
		return nil
	}
	return m.dispatch(d.msg)
}

// dispatch folds msg into the navigation state and quits the program once the
// state reaches Done or a fatal error occurs.
func (m *Model) dispatch(msg command.Message) tea.Cmd {
	wasEmpty := m.nav.RunningState() == state.Empty
	m.infoMsg = ""
	if err := command.Process(m.nav, msg); err != nil {
		logging.Error(err)
		m.err = err
		m.errMsg = err.Error()
		return tea.Quit
	}
	m.errMsg = ""
	if wasEmpty && m.nav.RunningState() == state.Loaded {
		m.applyFocus()
	}
	if m.nav.RunningState() == state.Done {
		return tea.Quit
	}
	return nil
}

func (m *Model) applyFocus() {
	query := m.focus
	m.focus = ""
	if query == "" {
		return
	}
	switch err := m.nav.Focus(query); {
	case errors.Is(err, state.ErrEmptyGroup):
		m.infoMsg = fmt.Sprintf("Group matching %q has no entries", query)
	case err != nil:
		m.infoMsg = fmt.Sprintf("No group matches %q", query)
	}
}
