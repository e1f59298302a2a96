package state

import (
	"errors"
	"strings"

	"github.com/atomicstack/cheatmenu/internal/catalog"
	"github.com/atomicstack/cheatmenu/internal/logging/events"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

var (
	// ErrNoGroupMatch is returned by Focus when no description matches.
	ErrNoGroupMatch = errors.New("no group matches")
	// ErrEmptyGroup is returned by Focus when the best match has no entries.
	ErrEmptyGroup = errors.New("group has no entries")
)

// Focus moves the group cursor to the group whose description best matches
// query and opens it. A matching group without entries stays highlighted on
// the main screen and yields ErrEmptyGroup. Focus is a no-op returning
// ErrNoGroupMatch until the model is Loaded.
func (m *Model) Focus(query string) error {
	if m.running != Loaded {
		return ErrNoGroupMatch
	}
	idx := BestGroupIndex(m.groups, query)
	if idx < 0 {
		return ErrNoGroupMatch
	}
	m.screen = ScreenMain
	m.groupCursor = idx
	m.clampEntryCursor()
	events.UI.Focus(query, idx)
	if m.currentEntryCount() == 0 {
		return ErrEmptyGroup
	}
	m.Enter()
	return nil
}

// BestGroupIndex ranks group descriptions against query. Exact, prefix and
// substring matches win over fuzzy ones. It returns -1 without a match.
func BestGroupIndex(groups []catalog.Group, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(groups) == 0 {
		return -1
	}
	lower := strings.ToLower(trimmed)
	for i, g := range groups {
		if strings.EqualFold(strings.TrimSpace(g.Description), trimmed) {
			return i
		}
	}
	for i, g := range groups {
		if strings.HasPrefix(strings.ToLower(g.Description), lower) {
			return i
		}
	}
	for i, g := range groups {
		if strings.Contains(strings.ToLower(g.Description), lower) {
			return i
		}
	}
	labels := make([]string, len(groups))
	for i, g := range groups {
		labels[i] = g.Description
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(groups) {
		return -1
	}
	return best.OriginalIndex
}
