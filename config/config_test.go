package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults %+v", cfg, Default())
	}
	if cfg.Catalog.File != "items.json" || cfg.Icons.Dir != "icons" || cfg.Icons.Error != "icon.png" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Logging.Level != "" {
		t.Errorf("logging should be off by default, got %q", cfg.Logging.Level)
	}
}

func TestLoad_Overrides(t *testing.T) {
	dir := writeConfig(t, `
catalog:
  file: data/products.yaml
icons:
  dir: art/
  error: warn.png
logging:
  level: DEBUG
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Catalog.File != "data/products.yaml" {
		t.Errorf("catalog.file = %q", cfg.Catalog.File)
	}
	if cfg.Icons.Dir != "art" {
		t.Errorf("icons.dir = %q, want trailing slash trimmed", cfg.Icons.Dir)
	}
	if cfg.Icons.Error != "warn.png" {
		t.Errorf("icons.error = %q", cfg.Icons.Error)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging.level = %q, want lower-cased", cfg.Logging.Level)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "icons:\n  error: oops.png\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Catalog.File != "items.json" || cfg.Icons.Dir != "icons" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.Icons.Error != "oops.png" {
		t.Errorf("icons.error = %q", cfg.Icons.Error)
	}
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("ITEMSEARCH_TEST_CATALOG", "from-env.json")

	cfg, err := Load(writeConfig(t, `
catalog:
  file: ${ITEMSEARCH_TEST_CATALOG}
icons:
  dir: ${ITEMSEARCH_TEST_UNSET:-fallback}
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Catalog.File != "from-env.json" {
		t.Errorf("catalog.file = %q", cfg.Catalog.File)
	}
	if cfg.Icons.Dir != "fallback" {
		t.Errorf("icons.dir = %q", cfg.Icons.Dir)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		wantErr  error
	}{
		{name: "not yaml", contents: "catalog: [unclosed", wantErr: ErrInvalidConfig},
		{name: "wrong shape", contents: "catalog: 5\n", wantErr: ErrInvalidConfig},
		{name: "bad level", contents: "logging:\n  level: verbose\n", wantErr: ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.contents))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error %v does not wrap ErrInvalidConfig", err)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error %v does not wrap %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_UnreadableFile(t *testing.T) {
	dir := t.TempDir()
	// A directory where the file should be cannot be read.
	if err := os.Mkdir(filepath.Join(dir, FileName), 0o755); err != nil {
		t.Fatal(err)
	}

	_, err := Load(dir)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("got %v, want ErrInvalidConfig", err)
	}
}

func TestCatalogPath(t *testing.T) {
	cfg := Default()
	if got := cfg.CatalogPath("/wf"); got != filepath.Join("/wf", "items.json") {
		t.Errorf("CatalogPath() = %q", got)
	}

	cfg.Catalog.File = "/data/items.json"
	if got := cfg.CatalogPath("/wf"); got != "/data/items.json" {
		t.Errorf("CatalogPath() = %q, want absolute path untouched", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name        string
		wantLevel   slog.Level
		wantEnabled bool
		wantErr     bool
	}{
		{name: "", wantEnabled: false},
		{name: "debug", wantLevel: slog.LevelDebug, wantEnabled: true},
		{name: "INFO", wantLevel: slog.LevelInfo, wantEnabled: true},
		{name: "warn", wantLevel: slog.LevelWarn, wantEnabled: true},
		{name: "error", wantLevel: slog.LevelError, wantEnabled: true},
		{name: "trace", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("level="+tt.name, func(t *testing.T) {
			level, enabled, err := ParseLevel(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidLogLevel) {
					t.Fatalf("got %v, want ErrInvalidLogLevel", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if level != tt.wantLevel || enabled != tt.wantEnabled {
				t.Errorf("ParseLevel(%q) = %v, %v; want %v, %v", tt.name, level, enabled, tt.wantLevel, tt.wantEnabled)
			}
		})
	}
}
