package state

import (
	"errors"
	"fmt"

	"github.com/atomicstack/cheatmenu/internal/catalog"
	"github.com/atomicstack/cheatmenu/internal/logging/events"
	"github.com/atomicstack/cheatmenu/internal/store"
)

// ErrAlreadyLoaded is returned when Load is called on a model that already
// left the Empty state.
var ErrAlreadyLoaded = errors.New("entries already loaded")

// Screen identifies the active navigation level.
type Screen int

const (
	ScreenMain Screen = iota
	ScreenSecondary
)

func (s Screen) String() string {
	switch s {
	case ScreenMain:
		return "main"
	case ScreenSecondary:
		return "secondary"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

// RunningState only moves forward: Empty, Loaded, Done.
type RunningState int

const (
	Empty RunningState = iota
	Loaded
	Done
)

func (r RunningState) String() string {
	switch r {
	case Empty:
		return "empty"
	case Loaded:
		return "loaded"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("running(%d)", int(r))
	}
}

// Codec reads and writes the persisted entry groups.
type Codec interface {
	Load(path string) ([]catalog.Group, error)
	Save(path string, groups []catalog.Group) error
}

type fileCodec struct{}

func (fileCodec) Load(path string) ([]catalog.Group, error) { return store.Load(path) }

func (fileCodec) Save(path string, groups []catalog.Group) error { return store.Save(path, groups) }

// FileCodec persists groups through the store package.
var FileCodec Codec = fileCodec{}

// Model is the navigation state machine: loaded groups, the active screen and
// one cursor per screen.
type Model struct {
	sourcePath  string
	codec       Codec
	groups      []catalog.Group
	running     RunningState
	screen      Screen
	groupCursor int
	entryCursor int
	selection   string
	selected    bool
}

// New returns an Empty model bound to sourcePath.
func New(sourcePath string) *Model {
	return NewWithCodec(sourcePath, FileCodec)
}

// NewWithCodec is New with a custom persistence backend.
func NewWithCodec(sourcePath string, codec Codec) *Model {
	if codec == nil {
		codec = FileCodec
	}
	return &Model{
		sourcePath: sourcePath,
		codec:      codec,
		running:    Empty,
		screen:     ScreenMain,
	}
}

// Load reads the entry file and appends its groups. A missing file is an
// empty start. Load is only valid once, from the Empty state.
func (m *Model) Load() error {
	if m.sourcePath == "" {
		panic("state: load requested without an entry file path")
	}
	if m.running != Empty {
		return ErrAlreadyLoaded
	}
	groups, err := m.codec.Load(m.sourcePath)
	if err != nil {
		return fmt.Errorf("load entries: %w", err)
	}
	m.groups = append(m.groups, groups...)
	m.running = Loaded
	m.clampCursors()
	return nil
}

// Save writes the groups back and moves the model to Done. A model that never
// loaded has nothing to persist, so the file is left untouched.
func (m *Model) Save() error {
	if m.sourcePath == "" {
		panic("state: save requested without an entry file path")
	}
	if m.running == Empty {
		m.running = Done
		return nil
	}
	if err := m.codec.Save(m.sourcePath, m.groups); err != nil {
		return fmt.Errorf("save entries: %w", err)
	}
	m.running = Done
	return nil
}

// Advance moves the active cursor to the next item, wrapping at the end.
func (m *Model) Advance() {
	switch m.screen {
	case ScreenMain:
		n := len(m.groups)
		if n == 0 {
			return
		}
		m.groupCursor = wrapNext(m.groupCursor, n)
		m.clampEntryCursor()
		events.UI.Cursor(m.screen.String(), m.groupCursor)
	case ScreenSecondary:
		n := m.currentEntryCount()
		if n == 0 {
			return
		}
		m.entryCursor = wrapNext(m.entryCursor, n)
		events.UI.Cursor(m.screen.String(), m.entryCursor)
	}
}

// Retreat moves the active cursor to the previous item, wrapping at zero.
func (m *Model) Retreat() {
	switch m.screen {
	case ScreenMain:
		n := len(m.groups)
		if n == 0 {
			return
		}
		m.groupCursor = wrapPrev(m.groupCursor, n)
		m.clampEntryCursor()
		events.UI.Cursor(m.screen.String(), m.groupCursor)
	case ScreenSecondary:
		n := m.currentEntryCount()
		if n == 0 {
			return
		}
		m.entryCursor = wrapPrev(m.entryCursor, n)
		events.UI.Cursor(m.screen.String(), m.entryCursor)
	}
}

// Enter opens the highlighted group on the main screen. On the secondary
// screen it confirms the highlighted entry and returns its command.
// Groups without entries are not opened.
func (m *Model) Enter() (string, bool) {
	switch m.screen {
	case ScreenMain:
		if m.currentEntryCount() == 0 {
			return "", false
		}
		m.screen = ScreenSecondary
		m.clampEntryCursor()
		events.UI.Screen(m.screen.String(), m.groupCursor)
		return "", false
	case ScreenSecondary:
		entry, ok := m.CurrentEntry()
		if !ok {
			return "", false
		}
		m.selection = entry.Command
		m.selected = true
		return entry.Command, true
	}
	return "", false
}

// Back returns from the secondary screen to the main screen.
func (m *Model) Back() {
	if m.screen != ScreenSecondary {
		return
	}
	m.screen = ScreenMain
	events.UI.Screen(m.screen.String(), m.groupCursor)
}

// SourcePath returns the entry file location.
func (m *Model) SourcePath() string { return m.sourcePath }

// Groups returns a copy of the loaded groups.
func (m *Model) Groups() []catalog.Group { return catalog.CloneGroups(m.groups) }

// GroupCount returns the number of loaded groups.
func (m *Model) GroupCount() int { return len(m.groups) }

// Group returns the group at idx.
func (m *Model) Group(idx int) (catalog.Group, bool) {
	if idx < 0 || idx >= len(m.groups) {
		return catalog.Group{}, false
	}
	return m.groups[idx], true
}

func (m *Model) RunningState() RunningState { return m.running }

func (m *Model) Screen() Screen { return m.screen }

func (m *Model) GroupCursor() int { return m.groupCursor }

func (m *Model) EntryCursor() int { return m.entryCursor }

// CurrentGroup returns the group under the group cursor.
func (m *Model) CurrentGroup() (catalog.Group, bool) {
	return m.Group(m.groupCursor)
}

// CurrentEntry returns the entry under both cursors.
func (m *Model) CurrentEntry() (catalog.Entry, bool) {
	g, ok := m.CurrentGroup()
	if !ok {
		return catalog.Entry{}, false
	}
	return g.Entry(m.entryCursor)
}

// Selection returns the confirmed command, if any.
func (m *Model) Selection() (string, bool) {
	return m.selection, m.selected
}

func (m *Model) currentEntryCount() int {
	g, ok := m.CurrentGroup()
	if !ok {
		return 0
	}
	return g.Len()
}
