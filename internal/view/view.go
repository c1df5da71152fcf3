// Package view assembles ranked results into a flat renderable item
// sequence and manages the scroll window and selection over it.
package view

import (
	"strings"

	"github.com/JakeRoggenbuck/hyperfind/internal/models"
	"github.com/JakeRoggenbuck/hyperfind/internal/ranking"
	"github.com/JakeRoggenbuck/hyperfind/internal/usage"
)

// Section titles for the idle-mode grouping.
const (
	FrequentTitle = "Frequently Used"
	AllAppsTitle  = "All Apps"
)

// State owns the item sequence plus the scroll offset and selection over it.
//
// Offset is the absolute index of the first visible item. Selected is the
// absolute index of the selected item, -1 when nothing is selected; when set
// it always points at an entry item, never a header.
type State struct {
	Items    []models.ViewItem
	Offset   int
	Selected int

	maxVisible int
}

// NewState creates an empty state capped at maxVisible selectable entries
// per window.
func NewState(maxVisible int) *State {
	if maxVisible < 1 {
		maxVisible = 1
	}
	return &State{Selected: -1, maxVisible: maxVisible}
}

// BuildItems turns (catalog, query, usage) into the flat item sequence.
//
// With a non-empty query the sequence is just the ranked matches. With an
// empty query it is the two-section idle layout: up to maxFrequent entries
// with usage history under a "Frequently Used" header, then the rest of the
// catalog, in its name-ascending order, under "All Apps". Every catalog
// entry appears exactly once across the two sections.
func BuildItems(catalog []*models.AppEntry, query string, u usage.Map, maxFrequent int) []models.ViewItem {
	if strings.TrimSpace(query) != "" {
		ranked := ranking.Rank(catalog, query, u)
		items := make([]models.ViewItem, 0, len(ranked))
		for _, r := range ranked {
			items = append(items, models.EntryItem(r.Entry))
		}
		return items
	}

	frequent := ranking.Frequent(catalog, u)
	if len(frequent) > maxFrequent {
		frequent = frequent[:maxFrequent]
	}

	items := make([]models.ViewItem, 0, len(catalog)+2)
	promoted := make(map[string]bool, len(frequent))
	if len(frequent) > 0 {
		items = append(items, models.HeaderItem(FrequentTitle))
		for _, r := range frequent {
			items = append(items, models.EntryItem(r.Entry))
			promoted[r.Entry.ID] = true
		}
	}

	items = append(items, models.HeaderItem(AllAppsTitle))
	for _, e := range catalog {
		if promoted[e.ID] {
			continue
		}
		items = append(items, models.EntryItem(e))
	}

	return items
}

// SetItems replaces the item sequence, resetting the window to the top and
// selecting the first entry item (or nothing when there is none).
func (s *State) SetItems(items []models.ViewItem) {
	s.Items = items
	s.Offset = 0
	s.Selected = firstSelectable(items)
}

// SelectedEntry returns the selected application, or nil.
func (s *State) SelectedEntry() *models.AppEntry {
	if s.Selected < 0 || s.Selected >= len(s.Items) {
		return nil
	}
	return s.Items[s.Selected].Entry
}

// MoveSelection moves the selection one entry in the given direction
// (+1 down, -1 up), skipping headers. Past either end it is a no-op.
func (s *State) MoveSelection(direction int) {
	if s.Selected < 0 {
		s.Selected = firstSelectable(s.Items)
		s.EnsureVisible()
		return
	}

	if next := nextSelectable(s.Items, s.Selected, direction); next >= 0 {
		s.Selected = next
		s.EnsureVisible()
	}
}

// EnsureVisible scrolls the window just enough to contain the selection:
// up in one jump, down one row at a time so it never overshoots. Headers
// inside the scanned range do not count against the entry cap.
func (s *State) EnsureVisible() {
	if s.Selected < 0 || len(s.Items) == 0 || len(s.Items) <= s.maxVisible {
		s.Offset = 0
		return
	}

	if s.Selected < s.Offset {
		s.Offset = s.Selected
		return
	}

	for {
		last := s.lastVisible()
		if last < 0 || s.Selected <= last {
			return
		}
		s.Offset++
	}
}

// VisibleIndices returns the absolute indices of the items in the current
// window: starting at Offset, until the sequence ends or maxVisible entry
// items have been included. A header directly after the last counted entry
// is excluded; the cap is on entries, not rows.
func (s *State) VisibleIndices() []int {
	var visible []int
	entries := 0
	for i := s.Offset; i < len(s.Items); i++ {
		if entries >= s.maxVisible {
			break
		}
		visible = append(visible, i)
		if s.Items[i].Selectable() {
			entries++
		}
	}
	return visible
}

// VisibleEntryAt resolves the nth entry of the current window (0-based,
// headers not counted) to its absolute item index, or -1.
func (s *State) VisibleEntryAt(n int) int {
	if n < 0 {
		return -1
	}
	for _, idx := range s.VisibleIndices() {
		if !s.Items[idx].Selectable() {
			continue
		}
		if n == 0 {
			return idx
		}
		n--
	}
	return -1
}

// lastVisible returns the absolute index of the last item in the window
// starting at Offset, or -1 for an empty window.
func (s *State) lastVisible() int {
	last := -1
	entries := 0
	for i := s.Offset; i < len(s.Items); i++ {
		if s.Items[i].Selectable() {
			if entries >= s.maxVisible {
				break
			}
			entries++
		}
		last = i
		if entries >= s.maxVisible {
			break
		}
	}
	return last
}

func firstSelectable(items []models.ViewItem) int {
	for i, item := range items {
		if item.Selectable() {
			return i
		}
	}
	return -1
}

func nextSelectable(items []models.ViewItem, start, direction int) int {
	for i := start + direction; i >= 0 && i < len(items); i += direction {
		if items[i].Selectable() {
			return i
		}
	}
	return -1
}
