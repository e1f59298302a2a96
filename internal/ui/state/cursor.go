package state

func wrapNext(cursor, n int) int {
	if n <= 0 {
		return 0
	}
	return (cursor + 1) % n
}

func wrapPrev(cursor, n int) int {
	if n <= 0 {
		return 0
	}
	if cursor <= 0 {
		return n - 1
	}
	return cursor - 1
}

// clampCursors restores the cursor invariant after the group list changed.
func (m *Model) clampCursors() {
	if len(m.groups) == 0 {
		m.groupCursor = 0
		m.entryCursor = 0
		m.screen = ScreenMain
		return
	}
	if m.groupCursor < 0 {
		m.groupCursor = 0
	}
	if m.groupCursor >= len(m.groups) {
		m.groupCursor = len(m.groups) - 1
	}
	m.clampEntryCursor()
}

// clampEntryCursor keeps the entry cursor within the current group. The
// position survives leaving and re-entering a group as long as it fits.
func (m *Model) clampEntryCursor() {
	n := m.currentEntryCount()
	if n == 0 || m.entryCursor < 0 {
		m.entryCursor = 0
		return
	}
	if m.entryCursor >= n {
		m.entryCursor = n - 1
	}
}
