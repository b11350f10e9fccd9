package generator

import (
	"context"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"

	"icongen/pkg/canvas"
	"icongen/pkg/render"
)

// knockOutThreshold is the channel value above which menu bar pixels turn transparent
const knockOutThreshold = 240

// GenerateMenuBarIcon extracts the tray icon from the menu bar master.
// The artwork sits in the left half; the caption below CropHeight is dropped.
func (g *Generator) GenerateMenuBarIcon(ctx context.Context) error {
	g.logger.Info("Processing menu bar icon")
	cfg := g.config.MenuBar

	src, err := render.Load(g.config.Paths.MenuBarIcon)
	if err != nil {
		return err
	}
	b := src.Bounds()
	g.logger.Debug("Menu bar source", "width", b.Dx(), "height", b.Dy())

	region := imaging.Crop(src, image.Rect(0, 0, b.Dx()/2, min(cfg.CropHeight, b.Dy())))

	rect, err := canvas.Bounds(region, canvas.MenuBarBackground)
	if err != nil {
		return fmt.Errorf("failed to locate icon in %s: %w", g.config.Paths.MenuBarIcon, err)
	}
	g.logger.Debug("Icon bounds", "min", rect.Min, "max", rect.Max)

	rect = canvas.Expand(rect, cfg.Margin, region.Bounds())
	icon := canvas.KnockOutWhite(imaging.Crop(region, rect), knockOutThreshold)
	final := render.Resize(canvas.Square(icon), cfg.Size)

	if err := os.MkdirAll(g.config.Paths.TrayIconsDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", g.config.Paths.TrayIconsDir, err)
	}
	path := g.MenuBarIconPath()
	if err := render.WritePNG(final, path); err != nil {
		return err
	}

	g.logger.Info("Generated menu bar icon", "path", path, "size", cfg.Size)
	return nil
}
