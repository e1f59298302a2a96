package command

import (
	"github.com/atomicstack/cheatmenu/internal/logging/events"
	"github.com/atomicstack/cheatmenu/internal/ui/state"
)

// Bootstrap returns the message that must run before any input is read.
func Bootstrap(m *state.Model) Message {
	if m.RunningState() == state.Empty {
		return Init
	}
	return None
}

// Update folds msg into the model and returns the follow-up message, which is
// None for every transition except the bootstrap. An Init that arrives after
// the model left Empty is ignored.
func Update(m *state.Model, msg Message) (Message, error) {
	events.Command.Dispatch(msg.String())
	switch msg {
	case None:
		return None, nil
	case Init:
		if m.RunningState() != state.Empty {
			return None, nil
		}
		if err := m.Load(); err != nil {
			events.Command.Error(msg.String(), err)
			return None, err
		}
		return None, nil
	case Quit:
		return None, finish(m, msg)
	}

	if m.RunningState() != state.Loaded {
		return None, nil
	}
	switch msg {
	case NextEntry:
		m.Advance()
	case PreviousEntry:
		m.Retreat()
	case Enter:
		if _, ok := m.Enter(); ok {
			return None, finish(m, msg)
		}
	case Back:
		m.Back()
	}
	return None, nil
}

// Process applies msg and every follow-up it produces.
func Process(m *state.Model, msg Message) error {
	for msg != None {
		next, err := Update(m, msg)
		if err != nil {
			return err
		}
		msg = next
	}
	return nil
}

// Start runs the bootstrap chain for a fresh model.
func Start(m *state.Model) error {
	return Process(m, Bootstrap(m))
}

func finish(m *state.Model, msg Message) error {
	if m.RunningState() == state.Done {
		return nil
	}
	if err := m.Save(); err != nil {
		events.Command.Error(msg.String(), err)
		return err
	}
	return nil
}
