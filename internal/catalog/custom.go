package catalog

import (
	"os"
	"strings"

	"github.com/JakeRoggenbuck/hyperfind/internal/models"
	"gopkg.in/yaml.v3"
)

// CustomEntry is the YAML structure for a user-defined launcher entry.
type CustomEntry struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Exec     string `yaml:"exec"`
	Icon     string `yaml:"icon"`
	Terminal bool   `yaml:"terminal"`
}

// customFile is the root YAML structure.
type customFile struct {
	Apps []CustomEntry `yaml:"apps"`
}

// LoadCustom reads user-defined entries from the given YAML file. A missing
// file is not an error; a malformed one is, so the caller can log it. Rows
// without a usable name or command are dropped silently.
func LoadCustom(path string) ([]*models.AppEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var file customFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	var entries []*models.AppEntry
	for _, def := range file.Apps {
		name := strings.TrimSpace(def.Name)
		execLine := strings.TrimSpace(def.Exec)
		if name == "" || execLine == "" {
			continue
		}

		id := strings.TrimSpace(def.ID)
		if id == "" {
			id = name
		}

		entries = append(entries, &models.AppEntry{
			ID:       id,
			Name:     name,
			Icon:     strings.TrimSpace(def.Icon),
			Exec:     execLine,
			Terminal: def.Terminal,
			Origin:   models.OriginCustom,
		})
	}

	return entries, nil
}
