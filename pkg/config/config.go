package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"icongen/pkg/sizes"
)

// Config holds the application configuration
type Config struct {
	Paths    PathsConfig    `yaml:"paths"`
	Variants VariantsConfig `yaml:"variants"`
	Padding  PaddingConfig  `yaml:"padding"`
	MenuBar  MenuBarConfig  `yaml:"menu_bar"`
	ICNS     ICNSConfig     `yaml:"icns"`
	Watch    WatchConfig    `yaml:"watch"`
	Logging  LoggingConfig  `yaml:"logging"`
	Tables   sizes.Tables   `yaml:"tables"`
}

// PathsConfig holds source images and output directories.
// Relative paths are resolved against Root.
type PathsConfig struct {
	Root         string `yaml:"root"`           // Repository root (default: current directory)
	MainIcon     string `yaml:"main_icon"`      // General logo master
	MenuBarIcon  string `yaml:"menu_bar_icon"`  // Menu bar master with a caption to crop away
	IconsDir     string `yaml:"icons_dir"`      // Parent of the per-variant directories
	TrayIconsDir string `yaml:"tray_icons_dir"` // Destination of tray_default.png
}

// VariantsConfig holds the distribution channels
type VariantsConfig struct {
	Source string   `yaml:"source"` // Variant that is generated (default: stable)
	Copies []string `yaml:"copies"` // Variants that receive a verbatim copy
}

// PaddingConfig holds safe margins as a fraction of the canvas per side
type PaddingConfig struct {
	MacOS float64 `yaml:"macos"` // default: 0.10
}

// MenuBarConfig holds the tray icon extraction settings
type MenuBarConfig struct {
	CropHeight int `yaml:"crop_height"` // Rows kept from the top, excludes the caption (default: 900)
	Margin     int `yaml:"margin"`      // Pixels kept around the located content (default: 20)
	Size       int `yaml:"size"`        // Output size (default: 160)
}

// ICNSConfig selects the .icns compiler
type ICNSConfig struct {
	Compiler string `yaml:"compiler"` // auto, iconutil, native (default: auto)
}

// WatchConfig holds watch mode settings
type WatchConfig struct {
	DebounceMS int `yaml:"debounce_ms"` // default: 500
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`  // Log level: debug, info, warn, error (default: info)
	Format string `yaml:"format"` // Log format: text, json (default: text)
}

// defaults returns the built-in configuration. Load decodes the file on top of
// it, so keys present in the file win even when set to zero.
func defaults() Config {
	return Config{
		Paths: PathsConfig{
			MainIcon:     filepath.Join("assets", "echonote.png"),
			MenuBarIcon:  filepath.Join("assets", "echonote-1.png"),
			IconsDir:     filepath.Join("apps", "desktop", "src-tauri", "icons"),
			TrayIconsDir: filepath.Join("plugins", "tray", "icons"),
		},
		Variants: VariantsConfig{
			Source: "stable",
			Copies: []string{"nightly", "pro"},
		},
		Padding: PaddingConfig{MacOS: 0.10},
		MenuBar: MenuBarConfig{
			CropHeight: 900,
			Margin:     20,
			Size:       160,
		},
		ICNS:    ICNSConfig{Compiler: "auto"},
		Watch:   WatchConfig{DebounceMS: 500},
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Tables:  sizes.Default(),
	}
}

// Load reads path when it is set and uses built-in defaults otherwise.
// A non-empty root overrides paths.root.
func Load(path, root string) (*Config, error) {
	config := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}

		// A relative root is relative to the config file, not the caller's cwd
		if config.Paths.Root != "" && !filepath.IsAbs(config.Paths.Root) {
			config.Paths.Root = filepath.Join(filepath.Dir(path), config.Paths.Root)
		}
	}

	if root != "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve root %s: %w", root, err)
		}
		config.Paths.Root = abs
	}

	if err := config.finalize(); err != nil {
		return nil, err
	}
	return &config, nil
}

// finalize resolves paths and validates
func (c *Config) finalize() error {
	if c.Paths.Root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		c.Paths.Root = cwd
	}

	for name, p := range map[string]*string{
		"main_icon":      &c.Paths.MainIcon,
		"menu_bar_icon":  &c.Paths.MenuBarIcon,
		"icons_dir":      &c.Paths.IconsDir,
		"tray_icons_dir": &c.Paths.TrayIconsDir,
	} {
		if *p == "" {
			return fmt.Errorf("paths.%s must not be empty", name)
		}
		*p = c.resolve(*p)
	}

	return c.validate()
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Paths.Root, p)
}

func (c *Config) validate() error {
	if c.Padding.MacOS < 0 || c.Padding.MacOS >= 0.5 {
		return fmt.Errorf("padding.macos must be in [0, 0.5), got %v", c.Padding.MacOS)
	}
	if c.MenuBar.CropHeight <= 0 || c.MenuBar.Size <= 0 {
		return fmt.Errorf("menu_bar.crop_height and menu_bar.size must be positive")
	}
	if c.MenuBar.Margin < 0 {
		return fmt.Errorf("menu_bar.margin must not be negative")
	}
	if c.Watch.DebounceMS < 0 {
		return fmt.Errorf("watch.debounce_ms must not be negative")
	}

	switch c.ICNS.Compiler {
	case "auto", "iconutil", "native":
	default:
		return fmt.Errorf("icns.compiler must be auto, iconutil or native, got %q", c.ICNS.Compiler)
	}

	if !validVariant(c.Variants.Source) {
		return fmt.Errorf("variants.source %q is not a valid directory name", c.Variants.Source)
	}
	for _, v := range c.Variants.Copies {
		if !validVariant(v) {
			return fmt.Errorf("variants.copies entry %q is not a valid directory name", v)
		}
		if v == c.Variants.Source {
			return fmt.Errorf("variants.copies must not contain the source variant %q", v)
		}
	}

	for _, e := range allEntries(c.Tables) {
		if e.Size <= 0 {
			return fmt.Errorf("tables: %s has invalid size %d", e.Name, e.Size)
		}
		if e.Name == "" || filepath.Base(e.Name) != e.Name {
			return fmt.Errorf("tables: invalid filename %q", e.Name)
		}
	}
	for _, s := range c.Tables.ICO {
		if s <= 0 || s > 256 {
			return fmt.Errorf("tables.ico: size %d out of range 1..256", s)
		}
	}
	for _, d := range c.Tables.Android {
		if d.Launcher <= 0 || d.Foreground <= 0 {
			return fmt.Errorf("tables.android: %s has invalid sizes", d.Name)
		}
		if !validVariant(d.Name) {
			return fmt.Errorf("tables.android: invalid density name %q", d.Name)
		}
	}

	return nil
}

func allEntries(t sizes.Tables) []sizes.Entry {
	var all []sizes.Entry
	all = append(all, t.Desktop...)
	all = append(all, t.WindowsSquare...)
	all = append(all, t.MacIconset...)
	all = append(all, t.IOS...)
	return all
}

// validVariant accepts a single, non-special path element
func validVariant(name string) bool {
	return name != "" && name != "." && name != ".." && filepath.Base(name) == name
}
