// Package catalog defines the entry groups a user browses and selects from.
package catalog

// Entry is one selectable command together with its descriptions.
type Entry struct {
	Command   string `json:"command"`
	ShortInfo string `json:"short_info"`
	LongInfo  string `json:"long_info"`
}

// Group clusters related entries under a description. Entry order is display
// order.
type Group struct {
	Description string  `json:"description"`
	Entries     []Entry `json:"entries"`
}

// NewGroup builds a group. No validation is performed; a group without
// entries is legal but cannot be entered.
func NewGroup(description string, entries []Entry) Group {
	return Group{Description: description, Entries: entries}
}

// Len returns the number of entries in the group.
func (g Group) Len() int {
	return len(g.Entries)
}

// Entry returns the entry at idx and whether idx was in range.
func (g Group) Entry(idx int) (Entry, bool) {
	if idx < 0 || idx >= len(g.Entries) {
		return Entry{}, false
	}
	return g.Entries[idx], true
}

// CloneGroups copies the group slice and each group's entries.
func CloneGroups(groups []Group) []Group {
	if groups == nil {
		return nil
	}
	dup := make([]Group, len(groups))
	for i, g := range groups {
		entries := make([]Entry, len(g.Entries))
		copy(entries, g.Entries)
		dup[i] = Group{Description: g.Description, Entries: entries}
	}
	return dup
}
