package catalog

import (
	"sort"
	"strings"

	"github.com/JakeRoggenbuck/hyperfind/internal/models"
)

// Load assembles the full catalog: scanned desktop entries plus the user's
// custom entries, deduplicated by identity (scanned entries win) and sorted
// ascending by case-insensitive name.
func Load(customPath string) []*models.AppEntry {
	entries := Scan()

	custom, err := LoadCustom(customPath)
	if err != nil {
		debugLog("Ignoring custom entries: %v", err)
	}

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		seen[e.ID] = true
	}
	for _, e := range custom {
		if seen[e.ID] {
			debugLog("Custom entry %s shadowed by a scanned one", e.ID)
			continue
		}
		seen[e.ID] = true
		entries = append(entries, e)
	}

	Sort(entries)
	return entries
}

// Sort orders entries ascending by case-insensitive name, with raw name and
// identity as final tiebreaks so the order is total.
func Sort(entries []*models.AppEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		al, bl := strings.ToLower(entries[i].Name), strings.ToLower(entries[j].Name)
		if al != bl {
			return al < bl
		}
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].ID < entries[j].ID
	})
}
