package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Tracker.Journal != nil || len(cfg.Packages) != 0 {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfigDecodesTrackerAndPackages(t *testing.T) {
	path := writeConfig(t, `
[tracker]
journal = false
workers = 2
db-path = "/tmp/journal.db"

[[packages]]
code = "RUN"
data = [15000, 1, 75]

[[packages]]
code = "WLK"
data = [9000, 1, 75, 180]
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Tracker.Journal == nil || *cfg.Tracker.Journal {
		t.Fatalf("expected journal=false, got %v", cfg.Tracker.Journal)
	}
	if cfg.Tracker.Workers == nil || *cfg.Tracker.Workers != 2 {
		t.Fatalf("expected workers=2, got %v", cfg.Tracker.Workers)
	}
	if cfg.Tracker.DBPath == nil || *cfg.Tracker.DBPath != "/tmp/journal.db" {
		t.Fatalf("unexpected db path: %v", cfg.Tracker.DBPath)
	}
	if len(cfg.Packages) != 2 {
		t.Fatalf("expected 2 packages, got %d", len(cfg.Packages))
	}
	if cfg.Packages[1].Code != "WLK" || len(cfg.Packages[1].Data) != 4 || cfg.Packages[1].Data[3] != 180 {
		t.Fatalf("unexpected package: %+v", cfg.Packages[1])
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "[tracker]\njournl = true\n")
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestLoadConfigRejectsPackageWithoutCode(t *testing.T) {
	path := writeConfig(t, "[[packages]]\ndata = [1, 2, 3]\n")
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for package without code")
	}
}

func TestDefaultPathsFollowXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "fittrack", "config.toml") {
		t.Fatalf("unexpected config path: %s", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/data", "fittrack", "journal.db") {
		t.Fatalf("unexpected db path: %s", got)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
