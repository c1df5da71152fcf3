package usage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// Store persists the usage map as a JSON file.
//
// The file is a cache, not a source of truth: Load degrades to an empty map
// on any failure, and Save is best-effort. The in-memory map stays
// authoritative for the running process either way.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
// An empty path uses DefaultPath.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{path: path}
}

// DefaultPath returns the usage file location, honoring XDG_DATA_HOME.
func DefaultPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "hyperfind", "usage.json")
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted usage map. A missing, unreadable, or malformed
// file yields an empty map, never an error.
func (s *Store) Load() Map {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Map{}
	}

	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return Map{}
	}
	if m == nil {
		return Map{}
	}
	return m
}

// Save writes the full usage map, creating parent directories as needed.
// Writes are serialized across launcher instances with an advisory lock.
func (s *Store) Save(m Map) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create usage dir: %w", err)
	}

	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode usage: %w", err)
	}

	lock := flock.New(s.path + ".lock")
	if err := lock.Lock(); err == nil {
		defer lock.Unlock()
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write usage: %w", err)
	}
	return nil
}
