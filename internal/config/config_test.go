package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.MaxVisible != 10 {
		t.Errorf("Expected MaxVisible 10, got %d", cfg.MaxVisible)
	}
	if cfg.MaxFrequent != 5 {
		t.Errorf("Expected MaxFrequent 5, got %d", cfg.MaxFrequent)
	}
	if cfg.ShowUsage {
		t.Error("ShowUsage should default to false")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Missing file should not be an error: %v", err)
	}
	if cfg.MaxVisible != 10 {
		t.Errorf("Missing file should yield defaults, got MaxVisible %d", cfg.MaxVisible)
	}
}

func TestLoad_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hyperfind.json")
	if err := os.WriteFile(path, []byte(`{"show_usage": true}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.ShowUsage {
		t.Error("show_usage should be read from file")
	}
	if cfg.MaxVisible != 10 || cfg.MaxFrequent != 5 {
		t.Errorf("Unset fields should keep defaults, got %d/%d", cfg.MaxVisible, cfg.MaxFrequent)
	}
}

func TestLoad_MalformedFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hyperfind.json")
	if err := os.WriteFile(path, []byte(`{"max_visible": `), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err == nil {
		t.Error("Malformed file should surface the parse error")
	}
	if cfg == nil || cfg.MaxVisible != 10 {
		t.Error("Malformed file should still yield usable defaults")
	}
}

func TestLoad_ClampsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hyperfind.json")
	if err := os.WriteFile(path, []byte(`{"max_visible": -3}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MaxVisible != 10 {
		t.Errorf("Negative max_visible should clamp to default, got %d", cfg.MaxVisible)
	}
}

func TestCustomAppsPath(t *testing.T) {
	cfg := Default()
	if got := cfg.CustomAppsPath(); filepath.Base(got) != "apps.yaml" {
		t.Errorf("Default custom apps path should end in apps.yaml, got %s", got)
	}

	cfg.AppsConfig = "/tmp/mine.yaml"
	if got := cfg.CustomAppsPath(); got != "/tmp/mine.yaml" {
		t.Errorf("Explicit apps_config should win, got %s", got)
	}
}
