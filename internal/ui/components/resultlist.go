package components

import (
	"fmt"
	"strings"

	"github.com/JakeRoggenbuck/hyperfind/internal/models"
	"github.com/JakeRoggenbuck/hyperfind/internal/ui"
	"github.com/JakeRoggenbuck/hyperfind/internal/usage"
	"github.com/JakeRoggenbuck/hyperfind/internal/view"
)

// ResultList renders the visible slice of a view state.
type ResultList struct {
	Width     int
	ShowUsage bool
}

// NewResultList creates a result list renderer.
func NewResultList() *ResultList {
	return &ResultList{Width: 60}
}

// Render draws the current window of the state: headers, entries, and
// scroll markers when rows exist beyond either edge of the window.
func (l *ResultList) Render(s *view.State, u usage.Map) string {
	var b strings.Builder

	visible := s.VisibleIndices()
	if len(visible) == 0 {
		b.WriteString(ui.MutedStyle.Render("  No matches"))
		return b.String()
	}

	if s.Offset > 0 {
		b.WriteString(ui.MutedStyle.Render("  ↑ more"))
		b.WriteString("\n")
	}

	for i, idx := range visible {
		item := s.Items[idx]
		switch item.Kind {
		case models.KindHeader:
			b.WriteString(ui.SectionStyle.Render(item.Title))
		case models.KindEntry:
			b.WriteString(l.renderEntry(item.Entry, u, idx == s.Selected))
		}
		if i < len(visible)-1 {
			b.WriteString("\n")
		}
	}

	if visible[len(visible)-1] < len(s.Items)-1 {
		b.WriteString("\n")
		b.WriteString(ui.MutedStyle.Render("  ↓ more"))
	}

	return b.String()
}

// renderEntry renders a single application row. Styling is applied after
// truncation so escape sequences are never cut in half.
func (l *ResultList) renderEntry(e *models.AppEntry, u usage.Map, selected bool) string {
	name := e.Name
	suffix := ""
	if l.ShowUsage {
		suffix = usageSuffix(e, u)
	}

	maxName := l.Width - 4 - len(suffix)
	if maxName < 10 {
		maxName = 10
	}
	if len(name) > maxName {
		name = name[:maxName-3] + "..."
	}

	if selected {
		label := name
		if suffix != "" {
			label = fmt.Sprintf("%s  %s", name, suffix)
		}
		return ui.SelectedItemStyle.Width(l.Width - 2).Render(label)
	}
	if suffix != "" {
		return ui.ItemStyle.Render(name) + " " + ui.UsageStyle.Render(suffix)
	}
	return ui.ItemStyle.Render(name)
}

func usageSuffix(e *models.AppEntry, u usage.Map) string {
	count := uint64(0)
	if rec, ok := u[e.ID]; ok {
		count = rec.Count
	}
	return fmt.Sprintf("(%d uses)", count)
}
