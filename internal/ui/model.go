package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/cheatmenu/internal/theme"
	"github.com/atomicstack/cheatmenu/internal/ui/command"
	"github.com/atomicstack/cheatmenu/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	menuHeaderSeparator = "→"
	defaultRootTitle    = "entries"
	// DefaultTickInterval bounds how long the view goes without a redraw.
	DefaultTickInterval = 250 * time.Millisecond
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// dispatchMsg carries a navigation message produced outside of key handling.
type dispatchMsg struct {
	msg command.Message
}

type tickMsg time.Time

// Options configures the presentation model.
type Options struct {
	Width        int
	Height       int
	ShowFooter   bool
	Focus        string
	TickInterval time.Duration
}

// Model implements the Bubble Tea model on top of the navigation state.
type Model struct {
	nav          *state.Model
	keys         keyMap
	help         help.Model
	width        int
	height       int
	fixedWidth   bool
	fixedHeight  bool
	showFooter   bool
	focus        string
	tickInterval time.Duration
	errMsg       string
	infoMsg      string
	err          error
	listOffset   map[state.Screen]int

	handlers map[reflect.Type]msgHandler
}

// NewModel wraps nav for display. nav is owned by the returned model from
// here on.
func NewModel(nav *state.Model, opts Options) *Model {
	m := &Model{
		nav:          nav,
		keys:         defaultKeyMap(),
		help:         help.New(),
		showFooter:   opts.ShowFooter,
		focus:        opts.Focus,
		tickInterval: opts.TickInterval,
		listOffset:   map[state.Screen]int{},
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if first := command.Bootstrap(m.nav); first != command.None {
		cmds = append(cmds, func() tea.Msg { return dispatchMsg{msg: first} })
	}
	if cmd := m.tick(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

// Nav exposes the navigation state for read-only inspection.
func (m *Model) Nav() *state.Model {
	return m.nav
}

// Err returns the error that terminated the program, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(dispatchMsg{}):       m.handleDispatchMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) tick() tea.Cmd {
	if m.tickInterval <= 0 {
		return nil
	}
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) handleTickMsg(tea.Msg) tea.Cmd {
	if m.nav.RunningState() == state.Done {
		return nil
	}
	return m.tick()
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.help.Width = m.width
	return nil
}
