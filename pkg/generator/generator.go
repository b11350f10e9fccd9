package generator

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"time"

	"icongen/pkg/canvas"
	"icongen/pkg/config"
	"icongen/pkg/icns"
	"icongen/pkg/render"
)

// Generator derives the full icon set from the master images
type Generator struct {
	config   config.Config
	compiler icns.Compiler
	logger   *slog.Logger
}

// New creates a new generator instance
func New(cfg config.Config, compiler icns.Compiler, logger *slog.Logger) *Generator {
	return &Generator{
		config:   cfg,
		compiler: compiler,
		logger:   logger.With("component", "generator"),
	}
}

type step struct {
	name string
	run  func(context.Context) error
}

// Run executes every phase in order and stops at the first fatal error.
// A failing icns compiler is not fatal.
func (g *Generator) Run(ctx context.Context) error {
	start := time.Now()
	g.logger.Info("Icon generation started",
		"main_icon", g.config.Paths.MainIcon,
		"menu_bar_icon", g.config.Paths.MenuBarIcon,
		"variant", g.config.Variants.Source,
		"compiler", g.compiler.Name())

	steps := []step{
		{"menu bar icon", g.GenerateMenuBarIcon},
		{"desktop icons", g.GenerateDesktopIcons},
		{"icns", g.GenerateICNS},
		{"ico", g.GenerateICO},
		{"android icons", g.GenerateAndroid},
		{"ios icons", g.GenerateIOS},
		{"variant copies", g.CopyToVariants},
	}

	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.run(ctx); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}

	g.logger.Info("Icon generation complete", "duration", time.Since(start).Round(time.Millisecond))
	return nil
}

// VariantDir returns the directory of the generated (source) variant
func (g *Generator) VariantDir() string {
	return filepath.Join(g.config.Paths.IconsDir, g.config.Variants.Source)
}

// MenuBarIconPath returns where the tray icon is written
func (g *Generator) MenuBarIconPath() string {
	return filepath.Join(g.config.Paths.TrayIconsDir, "tray_default.png")
}

// loadLogo reads the general logo and crops it to a square around its content
func (g *Generator) loadLogo() (*image.NRGBA, error) {
	src, err := render.Load(g.config.Paths.MainIcon)
	if err != nil {
		return nil, err
	}

	logo, err := canvas.CropToContent(src, canvas.LogoBackground)
	if err != nil {
		return nil, fmt.Errorf("failed to crop %s: %w", g.config.Paths.MainIcon, err)
	}

	g.logger.Debug("Cropped logo to content",
		"source_size", fmt.Sprintf("%dx%d", src.Bounds().Dx(), src.Bounds().Dy()),
		"cropped_size", logo.Bounds().Dx())
	return logo, nil
}

// loadPaddedLogo is loadLogo with the macOS safe margin applied
func (g *Generator) loadPaddedLogo() (*image.NRGBA, *image.NRGBA, error) {
	logo, err := g.loadLogo()
	if err != nil {
		return nil, nil, err
	}
	padded, err := canvas.Pad(logo, g.config.Padding.MacOS)
	if err != nil {
		return nil, nil, err
	}
	return logo, padded, nil
}
