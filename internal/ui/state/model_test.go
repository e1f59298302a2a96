package state

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/atomicstack/cheatmenu/internal/catalog"
	"github.com/atomicstack/cheatmenu/internal/store"
	"pgregory.net/rapid"
)

type memCodec struct {
	stored  []catalog.Group
	loadErr error
	saveErr error
	loads   int
	saves   int
}

func (c *memCodec) Load(string) ([]catalog.Group, error) {
	c.loads++
	if c.loadErr != nil {
		return nil, c.loadErr
	}
	return catalog.CloneGroups(c.stored), nil
}

func (c *memCodec) Save(_ string, groups []catalog.Group) error {
	c.saves++
	if c.saveErr != nil {
		return c.saveErr
	}
	c.stored = catalog.CloneGroups(groups)
	return nil
}

func makeTestGroup() catalog.Group {
	return catalog.NewGroup("description", []catalog.Entry{
		{Command: "command1", ShortInfo: "Short description 1", LongInfo: "Long description 1"},
		{Command: "command2", ShortInfo: "Short description 2", LongInfo: "Long description 2"},
	})
}

func blankGroups(groups, entries int) []catalog.Group {
	out := make([]catalog.Group, groups)
	for i := range out {
		out[i] = catalog.NewGroup("", make([]catalog.Entry, entries))
	}
	return out
}

func loadedModel(t *testing.T, groups []catalog.Group) *Model {
	t.Helper()
	m := NewWithCodec("test.cache", &memCodec{stored: groups})
	if err := m.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	return m
}

func TestNewModelDefaults(t *testing.T) {
	m := New("test.cache")
	if m.SourcePath() != "test.cache" {
		t.Fatalf("expected source path test.cache, got %q", m.SourcePath())
	}
	if m.GroupCount() != 0 {
		t.Fatalf("expected no groups, got %d", m.GroupCount())
	}
	if m.RunningState() != Empty {
		t.Fatalf("expected Empty, got %s", m.RunningState())
	}
	if m.Screen() != ScreenMain {
		t.Fatalf("expected main screen, got %s", m.Screen())
	}
	if m.GroupCursor() != 0 || m.EntryCursor() != 0 {
		t.Fatalf("expected cursors at 0, got %d/%d", m.GroupCursor(), m.EntryCursor())
	}
	if _, ok := m.Selection(); ok {
		t.Fatalf("expected no selection")
	}
}

func TestLoadAppendsAndMarksLoaded(t *testing.T) {
	m := loadedModel(t, []catalog.Group{makeTestGroup()})
	if m.RunningState() != Loaded {
		t.Fatalf("expected Loaded, got %s", m.RunningState())
	}
	if m.GroupCount() != 1 {
		t.Fatalf("expected 1 group, got %d", m.GroupCount())
	}
	entry, ok := m.CurrentEntry()
	if !ok || entry.Command != "command1" {
		t.Fatalf("expected command1, got %#v", entry)
	}
}

func TestLoadMissingFileStartsEmpty(t *testing.T) {
	m := New(filepath.Join(t.TempDir(), "nope", "entries.json"))
	if err := m.Load(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if m.RunningState() != Loaded {
		t.Fatalf("expected Loaded, got %s", m.RunningState())
	}
	if m.GroupCount() != 0 {
		t.Fatalf("expected no groups, got %d", m.GroupCount())
	}
}

func TestLoadTwiceIsRejected(t *testing.T) {
	codec := &memCodec{stored: []catalog.Group{makeTestGroup()}}
	m := NewWithCodec("test.cache", codec)
	if err := m.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := m.Load(); !errors.Is(err, ErrAlreadyLoaded) {
		t.Fatalf("expected ErrAlreadyLoaded, got %v", err)
	}
	if m.GroupCount() != 1 {
		t.Fatalf("expected groups untouched, got %d", m.GroupCount())
	}
	if codec.loads != 1 {
		t.Fatalf("expected a single codec load, got %d", codec.loads)
	}
}

func TestLoadErrorKeepsEmpty(t *testing.T) {
	m := NewWithCodec("test.cache", &memCodec{loadErr: store.ErrMalformed})
	err := m.Load()
	if !errors.Is(err, store.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
	if m.RunningState() != Empty {
		t.Fatalf("expected Empty after failed load, got %s", m.RunningState())
	}
}

func TestEmptyPathPanics(t *testing.T) {
	for name, op := range map[string]func(*Model) error{
		"load": (*Model).Load,
		"save": (*Model).Save,
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic for empty path")
				}
			}()
			_ = op(New(""))
		})
	}
}

func TestSaveWritesAndMarksDone(t *testing.T) {
	codec := &memCodec{stored: []catalog.Group{makeTestGroup()}}
	m := NewWithCodec("test.cache", codec)
	if err := m.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	codec.stored = nil
	if err := m.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	if m.RunningState() != Done {
		t.Fatalf("expected Done, got %s", m.RunningState())
	}
	if !reflect.DeepEqual(codec.stored, []catalog.Group{makeTestGroup()}) {
		t.Fatalf("unexpected stored groups %#v", codec.stored)
	}
}

func TestSaveFailureKeepsRunning(t *testing.T) {
	codec := &memCodec{stored: []catalog.Group{makeTestGroup()}, saveErr: errors.New("disk full")}
	m := NewWithCodec("test.cache", codec)
	if err := m.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := m.Save(); err == nil {
		t.Fatalf("expected save error")
	}
	if m.RunningState() != Loaded {
		t.Fatalf("expected Loaded after failed save, got %s", m.RunningState())
	}
}

func TestSaveBeforeLoadDoesNotTouchFile(t *testing.T) {
	codec := &memCodec{stored: []catalog.Group{makeTestGroup()}}
	m := NewWithCodec("test.cache", codec)
	if err := m.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	if codec.saves != 0 {
		t.Fatalf("expected no codec writes, got %d", codec.saves)
	}
	if m.RunningState() != Done {
		t.Fatalf("expected Done, got %s", m.RunningState())
	}
}

func TestSaveLoadThroughFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "path", "to", "test", "test.cache")
	first := New(path)
	if err := first.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	first.groups = []catalog.Group{makeTestGroup()}
	if err := first.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	second := New(path)
	if err := second.Load(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if second.GroupCount() != 1 {
		t.Fatalf("expected 1 group, got %d", second.GroupCount())
	}
	g, _ := second.Group(0)
	if g.Len() != 2 || g.Entries[0].Command != "command1" {
		t.Fatalf("unexpected reloaded group %#v", g)
	}
}

func TestIncreaseGroupCursorWraps(t *testing.T) {
	m := loadedModel(t, blankGroups(10, 1))
	m.Advance()
	if m.GroupCursor() != 1 {
		t.Fatalf("expected 1, got %d", m.GroupCursor())
	}
	m.Advance()
	if m.GroupCursor() != 2 {
		t.Fatalf("expected 2, got %d", m.GroupCursor())
	}
	for i := 0; i < 7; i++ {
		m.Advance()
	}
	if m.GroupCursor() != 9 {
		t.Fatalf("expected 9, got %d", m.GroupCursor())
	}
	m.Advance()
	if m.GroupCursor() != 0 {
		t.Fatalf("expected wrap to 0, got %d", m.GroupCursor())
	}
}

func TestDecreaseGroupCursorWraps(t *testing.T) {
	m := loadedModel(t, blankGroups(10, 1))
	m.Retreat()
	if m.GroupCursor() != 9 {
		t.Fatalf("expected wrap to 9, got %d", m.GroupCursor())
	}
	m.Retreat()
	if m.GroupCursor() != 8 {
		t.Fatalf("expected 8, got %d", m.GroupCursor())
	}
	for i := 0; i < 7; i++ {
		m.Retreat()
	}
	if m.GroupCursor() != 1 {
		t.Fatalf("expected 1, got %d", m.GroupCursor())
	}
	m.Retreat()
	if m.GroupCursor() != 0 {
		t.Fatalf("expected 0, got %d", m.GroupCursor())
	}
}

func TestEntryCursorWrapsOnSecondary(t *testing.T) {
	m := loadedModel(t, blankGroups(1, 10))
	m.Enter()
	if m.Screen() != ScreenSecondary {
		t.Fatalf("expected secondary screen")
	}
	m.Retreat()
	if m.EntryCursor() != 9 || m.GroupCursor() != 0 {
		t.Fatalf("expected entry 9 group 0, got %d/%d", m.EntryCursor(), m.GroupCursor())
	}
	m.Advance()
	if m.EntryCursor() != 0 {
		t.Fatalf("expected wrap to 0, got %d", m.EntryCursor())
	}
	m.Advance()
	m.Advance()
	if m.EntryCursor() != 2 || m.GroupCursor() != 0 {
		t.Fatalf("expected entry 2 group 0, got %d/%d", m.EntryCursor(), m.GroupCursor())
	}
}

func TestTwoGroupScenario(t *testing.T) {
	groups := []catalog.Group{
		catalog.NewGroup("build", []catalog.Entry{{Command: "make"}, {Command: "make install"}}),
		catalog.NewGroup("test", []catalog.Entry{{Command: "make test"}}),
	}
	m := loadedModel(t, groups)
	m.Advance()
	if m.GroupCursor() != 1 {
		t.Fatalf("expected group 1, got %d", m.GroupCursor())
	}
	m.Advance()
	if m.GroupCursor() != 0 {
		t.Fatalf("expected wrap to group 0, got %d", m.GroupCursor())
	}
}

func TestEnterAndBackPreserveCursors(t *testing.T) {
	groups := []catalog.Group{
		makeTestGroup(),
		catalog.NewGroup("other", []catalog.Entry{{Command: "a"}, {Command: "b"}, {Command: "c"}}),
	}
	m := loadedModel(t, groups)
	m.Advance()
	if _, ok := m.Enter(); ok {
		t.Fatalf("expected no selection when entering a group")
	}
	if m.Screen() != ScreenSecondary || m.GroupCursor() != 1 {
		t.Fatalf("expected secondary on group 1, got %s/%d", m.Screen(), m.GroupCursor())
	}
	m.Advance()
	m.Advance()
	m.Back()
	if m.Screen() != ScreenMain {
		t.Fatalf("expected main screen after back")
	}
	if m.EntryCursor() != 2 {
		t.Fatalf("expected entry cursor kept at 2, got %d", m.EntryCursor())
	}
	m.Enter()
	if m.EntryCursor() != 2 {
		t.Fatalf("expected resume at entry 2, got %d", m.EntryCursor())
	}
}

func TestBackOnMainIsNoop(t *testing.T) {
	m := loadedModel(t, []catalog.Group{makeTestGroup()})
	m.Back()
	if m.Screen() != ScreenMain || m.GroupCursor() != 0 || m.EntryCursor() != 0 {
		t.Fatalf("expected unchanged model, got %s %d/%d", m.Screen(), m.GroupCursor(), m.EntryCursor())
	}
}

func TestEnterOnSecondarySelectsCommand(t *testing.T) {
	groups := []catalog.Group{
		catalog.NewGroup("files", []catalog.Entry{
			{Command: "pwd"},
			{Command: "ls -la", ShortInfo: "list all"},
		}),
	}
	m := loadedModel(t, groups)
	m.Enter()
	m.Advance()
	cmd, ok := m.Enter()
	if !ok || cmd != "ls -la" {
		t.Fatalf("expected selection ls -la, got %q (ok=%v)", cmd, ok)
	}
	if sel, ok := m.Selection(); !ok || sel != "ls -la" {
		t.Fatalf("expected stored selection, got %q (ok=%v)", sel, ok)
	}
}

func TestEmptyGroupIsNotEntered(t *testing.T) {
	m := loadedModel(t, []catalog.Group{catalog.NewGroup("empty", nil), makeTestGroup()})
	m.Enter()
	if m.Screen() != ScreenMain {
		t.Fatalf("expected to stay on main for an empty group")
	}
	m.Advance()
	m.Enter()
	if m.Screen() != ScreenSecondary {
		t.Fatalf("expected secondary for populated group")
	}
}

func TestEntryCursorClampedWhenGroupShrinks(t *testing.T) {
	groups := []catalog.Group{
		catalog.NewGroup("long", make([]catalog.Entry, 5)),
		catalog.NewGroup("short", make([]catalog.Entry, 1)),
	}
	m := loadedModel(t, groups)
	m.Enter()
	m.Retreat()
	if m.EntryCursor() != 4 {
		t.Fatalf("expected entry 4, got %d", m.EntryCursor())
	}
	m.Back()
	m.Advance()
	if m.EntryCursor() != 0 {
		t.Fatalf("expected entry cursor clamped to 0, got %d", m.EntryCursor())
	}
}

func TestCursorOpsOnEmptyModelAreSafe(t *testing.T) {
	m := loadedModel(t, nil)
	m.Advance()
	m.Retreat()
	if _, ok := m.Enter(); ok {
		t.Fatalf("expected no selection")
	}
	m.Back()
	if m.GroupCursor() != 0 || m.EntryCursor() != 0 || m.Screen() != ScreenMain {
		t.Fatalf("expected untouched empty model")
	}
}

func TestGroupsReturnsCopy(t *testing.T) {
	m := loadedModel(t, []catalog.Group{makeTestGroup()})
	groups := m.Groups()
	groups[0].Entries[0].Command = "mutated"
	if e, _ := m.CurrentEntry(); e.Command != "command1" {
		t.Fatalf("expected model untouched, got %q", e.Command)
	}
}

func groupsGen() *rapid.Generator[[]catalog.Group] {
	return rapid.Custom(func(t *rapid.T) []catalog.Group {
		n := rapid.IntRange(1, 12).Draw(t, "groups")
		groups := make([]catalog.Group, n)
		for i := range groups {
			entries := rapid.IntRange(1, 12).Draw(t, "entries")
			groups[i] = catalog.NewGroup("", make([]catalog.Entry, entries))
		}
		return groups
	})
}

func TestGroupCursorCycleProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		groups := groupsGen().Draw(rt, "groups")
		m := NewWithCodec("p", &memCodec{stored: groups})
		if err := m.Load(); err != nil {
			rt.Fatalf("load: %v", err)
		}
		start := rapid.IntRange(0, len(groups)-1).Draw(rt, "start")
		for i := 0; i < start; i++ {
			m.Advance()
		}
		for i := 0; i < len(groups); i++ {
			m.Advance()
			if m.GroupCursor() < 0 || m.GroupCursor() >= len(groups) {
				rt.Fatalf("group cursor %d out of range", m.GroupCursor())
			}
		}
		if m.GroupCursor() != start {
			rt.Fatalf("advance cycle: expected %d, got %d", start, m.GroupCursor())
		}
		for i := 0; i < len(groups); i++ {
			m.Retreat()
		}
		if m.GroupCursor() != start {
			rt.Fatalf("retreat cycle: expected %d, got %d", start, m.GroupCursor())
		}
	})
}

func TestEntryCursorCycleProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		groups := groupsGen().Draw(rt, "groups")
		m := NewWithCodec("p", &memCodec{stored: groups})
		if err := m.Load(); err != nil {
			rt.Fatalf("load: %v", err)
		}
		target := rapid.IntRange(0, len(groups)-1).Draw(rt, "group")
		for m.GroupCursor() != target {
			m.Advance()
		}
		m.Enter()
		n := groups[target].Len()
		start := m.EntryCursor()
		for i := 0; i < n; i++ {
			m.Advance()
			if m.EntryCursor() < 0 || m.EntryCursor() >= n {
				rt.Fatalf("entry cursor %d out of range", m.EntryCursor())
			}
		}
		if m.EntryCursor() != start {
			rt.Fatalf("advance cycle: expected %d, got %d", start, m.EntryCursor())
		}
		for i := 0; i < n; i++ {
			m.Retreat()
		}
		if m.EntryCursor() != start || m.GroupCursor() != target {
			rt.Fatalf("retreat cycle: expected %d/%d, got %d/%d", target, start, m.GroupCursor(), m.EntryCursor())
		}
	})
}
