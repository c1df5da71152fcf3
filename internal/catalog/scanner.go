// Package catalog discovers launchable applications and launches them.
//
// Entries come from two places: .desktop files in the XDG applications
// directories, and user-defined entries in apps.yaml. The assembled catalog
// is built once at startup and treated as immutable.
package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/JakeRoggenbuck/hyperfind/internal/models"
	"gopkg.in/ini.v1"
)

// DebugMode enables debug logging
var DebugMode = false

// debugLog logs a message if debug mode is enabled
func debugLog(format string, args ...interface{}) {
	if DebugMode {
		fmt.Fprintf(os.Stderr, "[CATALOG] "+format+"\n", args...)
	}
}

const desktopSection = "Desktop Entry"

var iniOpts = ini.LoadOptions{
	IgnoreInlineComment: true,
}

// DataDirs returns the XDG data directories to scan, most specific first.
func DataDirs() []string {
	var dirs []string

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	dirs = append(dirs, dataHome)

	dataDirs := os.Getenv("XDG_DATA_DIRS")
	if dataDirs == "" {
		dataDirs = "/usr/local/share:/usr/share"
	}
	for _, d := range strings.Split(dataDirs, ":") {
		if d != "" {
			dirs = append(dirs, d)
		}
	}

	return dirs
}

// Scan walks the applications directories and parses every .desktop file
// into a catalog entry. Earlier directories win when the same desktop-file
// id appears more than once, matching XDG precedence. Entries the desktop
// file marks as hidden, and entries with no usable name or command, are
// skipped.
func Scan() []*models.AppEntry {
	return scanDirs(DataDirs())
}

func scanDirs(dataDirs []string) []*models.AppEntry {
	var entries []*models.AppEntry
	seen := map[string]bool{}

	for _, dataDir := range dataDirs {
		appsDir := filepath.Join(dataDir, "applications")
		walkErr := filepath.WalkDir(appsDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Missing or unreadable directories are normal; skip them.
				return fs.SkipDir
			}
			if d.IsDir() || !strings.HasSuffix(path, ".desktop") {
				return nil
			}

			id := desktopID(appsDir, path)
			if seen[id] {
				debugLog("Skipping shadowed entry %s from %s", id, path)
				return nil
			}

			entry, err := parseDesktopFile(path, id)
			if err != nil {
				debugLog("Skipping %s: %v", path, err)
				return nil
			}
			if entry == nil {
				return nil
			}

			seen[id] = true
			entries = append(entries, entry)
			return nil
		})
		if walkErr != nil {
			debugLog("Walk of %s stopped: %v", appsDir, walkErr)
		}
	}

	debugLog("Scanned %d desktop entries", len(entries))
	return entries
}

// desktopID derives the XDG desktop-file id: the path relative to the
// applications directory with separators replaced by dashes.
func desktopID(appsDir, path string) string {
	rel, err := filepath.Rel(appsDir, path)
	if err != nil {
		return filepath.Base(path)
	}
	return strings.ReplaceAll(rel, string(os.PathSeparator), "-")
}

// parseDesktopFile reads a single .desktop file. It returns (nil, nil) for
// entries that parse fine but should not be listed.
func parseDesktopFile(path, id string) (*models.AppEntry, error) {
	file, err := ini.LoadSources(iniOpts, path)
	if err != nil {
		return nil, fmt.Errorf("parse desktop file: %w", err)
	}

	sec, err := file.GetSection(desktopSection)
	if err != nil {
		return nil, fmt.Errorf("no [%s] section", desktopSection)
	}

	if typ := sec.Key("Type").String(); typ != "" && typ != "Application" {
		return nil, nil
	}
	if sec.Key("NoDisplay").MustBool(false) || sec.Key("Hidden").MustBool(false) {
		return nil, nil
	}

	name := strings.TrimSpace(sec.Key("Name").String())
	if name == "" {
		return nil, nil
	}
	execLine := strings.TrimSpace(sec.Key("Exec").String())
	if execLine == "" {
		return nil, nil
	}

	return &models.AppEntry{
		ID:       id,
		Name:     name,
		Icon:     sec.Key("Icon").String(),
		Exec:     execLine,
		Terminal: sec.Key("Terminal").MustBool(false),
		Origin:   models.OriginScanned,
	}, nil
}
