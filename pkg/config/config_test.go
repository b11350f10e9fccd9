package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "icongen.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cwd, _ := os.Getwd()
	if cfg.Paths.Root != cwd {
		t.Errorf("Expected root %s, got %s", cwd, cfg.Paths.Root)
	}
	if want := filepath.Join(cwd, "assets", "echonote.png"); cfg.Paths.MainIcon != want {
		t.Errorf("Expected main icon %s, got %s", want, cfg.Paths.MainIcon)
	}
	if cfg.Variants.Source != "stable" {
		t.Errorf("Expected source variant 'stable', got '%s'", cfg.Variants.Source)
	}
	if len(cfg.Variants.Copies) != 2 || cfg.Variants.Copies[0] != "nightly" || cfg.Variants.Copies[1] != "pro" {
		t.Errorf("Expected copies [nightly pro], got %v", cfg.Variants.Copies)
	}
	if cfg.Padding.MacOS != 0.10 {
		t.Errorf("Expected macOS padding 0.10, got %v", cfg.Padding.MacOS)
	}
	if cfg.MenuBar.Size != 160 || cfg.MenuBar.CropHeight != 900 || cfg.MenuBar.Margin != 20 {
		t.Errorf("Unexpected menu bar defaults: %+v", cfg.MenuBar)
	}
	if len(cfg.Tables.IOS) != 18 {
		t.Errorf("Expected 18 iOS entries, got %d", len(cfg.Tables.IOS))
	}
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
paths:
  root: repo
  main_icon: art/logo.png
variants:
  source: beta
  copies: []
padding:
  macos: 0.2
icns:
  compiler: native
logging:
  level: debug
  format: json
tables:
  ico: [16, 32]
`)

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	root := filepath.Join(filepath.Dir(path), "repo")
	if cfg.Paths.Root != root {
		t.Errorf("Expected root %s, got %s", root, cfg.Paths.Root)
	}
	if want := filepath.Join(root, "art", "logo.png"); cfg.Paths.MainIcon != want {
		t.Errorf("Expected main icon %s, got %s", want, cfg.Paths.MainIcon)
	}
	if want := filepath.Join(root, "plugins", "tray", "icons"); cfg.Paths.TrayIconsDir != want {
		t.Errorf("Expected tray dir %s, got %s", want, cfg.Paths.TrayIconsDir)
	}
	if cfg.Variants.Source != "beta" || len(cfg.Variants.Copies) != 0 {
		t.Errorf("Unexpected variants: %+v", cfg.Variants)
	}
	if cfg.Padding.MacOS != 0.2 {
		t.Errorf("Expected padding 0.2, got %v", cfg.Padding.MacOS)
	}
	if cfg.ICNS.Compiler != "native" {
		t.Errorf("Expected compiler 'native', got '%s'", cfg.ICNS.Compiler)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Unexpected logging config: %+v", cfg.Logging)
	}
	if len(cfg.Tables.ICO) != 2 {
		t.Errorf("Expected ICO override with 2 sizes, got %v", cfg.Tables.ICO)
	}
	if len(cfg.Tables.Android) != 5 {
		t.Errorf("Expected default Android table, got %d entries", len(cfg.Tables.Android))
	}
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"padding too large", "padding:\n  macos: 0.5\n", "padding.macos"},
		{"unknown compiler", "icns:\n  compiler: magick\n", "icns.compiler"},
		{"copy equals source", "variants:\n  copies: [stable]\n", "source variant"},
		{"nested variant", "variants:\n  source: a/b\n", "variants.source"},
		{"bad table size", "tables:\n  ios:\n    - {name: a.png, size: 0}\n", "invalid size"},
		{"table path escape", "tables:\n  desktop:\n    - {name: ../a.png, size: 16}\n", "invalid filename"},
		{"ico too large", "tables:\n  ico: [512]\n", "tables.ico"},
		{"zero menu bar size", "menu_bar:\n  size: 0\n", "menu_bar.size"},
		{"negative margin", "menu_bar:\n  margin: -1\n", "menu_bar.margin"},
		{"empty main icon", "paths:\n  main_icon: \"\"\n", "paths.main_icon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content), "")
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error mentioning %q, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), ""); err == nil {
		t.Error("Expected error for missing file")
	}
	if _, err := Load(writeConfig(t, "paths: [unclosed"), ""); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoad_ExplicitZeroValues(t *testing.T) {
	path := writeConfig(t, `
padding:
  macos: 0
menu_bar:
  margin: 0
watch:
  debounce_ms: 0
`)

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Padding.MacOS != 0 {
		t.Errorf("Expected padding 0 from file, got %v", cfg.Padding.MacOS)
	}
	if cfg.MenuBar.Margin != 0 {
		t.Errorf("Expected margin 0 from file, got %d", cfg.MenuBar.Margin)
	}
	if cfg.Watch.DebounceMS != 0 {
		t.Errorf("Expected debounce 0 from file, got %d", cfg.Watch.DebounceMS)
	}
	if cfg.MenuBar.Size != 160 || cfg.MenuBar.CropHeight != 900 {
		t.Errorf("Expected untouched menu bar keys to keep defaults, got %+v", cfg.MenuBar)
	}
}

func TestLoad_RootOverride(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, "paths:\n  root: elsewhere\n")

	cfg, err := Load(path, root)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Paths.Root != root {
		t.Errorf("Expected root %s, got %s", root, cfg.Paths.Root)
	}
	if want := filepath.Join(root, "apps", "desktop", "src-tauri", "icons"); cfg.Paths.IconsDir != want {
		t.Errorf("Expected icons dir %s, got %s", want, cfg.Paths.IconsDir)
	}
}
