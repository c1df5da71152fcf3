package models

import "strings"

// Origin says where a catalog entry came from.
type Origin int

const (
	// OriginScanned means the entry was found in an XDG applications directory
	OriginScanned Origin = iota
	// OriginCustom means the entry was defined in the user's apps.yaml
	OriginCustom
)

// AppEntry is one launchable application from the catalog.
// The catalog is built once at startup and never mutated.
type AppEntry struct {
	ID       string // Stable identity used for usage tracking
	Name     string // Display name, never empty
	Icon     string // Icon name from the desktop entry, may be empty
	Exec     string // Raw Exec line, may contain field codes
	Terminal bool   // Whether the desktop entry asks for a terminal
	Origin   Origin
}

// LowerName returns the display name lowered for ordering and matching.
func (e *AppEntry) LowerName() string {
	return strings.ToLower(e.Name)
}

// ItemKind discriminates the two view item variants.
type ItemKind int

const (
	// KindHeader is a non-selectable section title
	KindHeader ItemKind = iota
	// KindEntry is a selectable application row
	KindEntry
)

// ViewItem is either a section header or an application row.
// Exactly one of Title/Entry is meaningful, depending on Kind.
type ViewItem struct {
	Kind  ItemKind
	Title string
	Entry *AppEntry
}

// HeaderItem builds a non-selectable header item.
func HeaderItem(title string) ViewItem {
	return ViewItem{Kind: KindHeader, Title: title}
}

// EntryItem builds a selectable entry item.
func EntryItem(e *AppEntry) ViewItem {
	return ViewItem{Kind: KindEntry, Entry: e}
}

// Selectable reports whether the item can hold the selection.
func (v ViewItem) Selectable() bool {
	return v.Kind == KindEntry
}
