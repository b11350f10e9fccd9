package generator

import (
	"context"
	"fmt"
	"os"

	"icongen/pkg/render"
)

// GenerateDesktopIcons writes the padded desktop PNGs and the unpadded Windows
// square logos into the source variant directory
func (g *Generator) GenerateDesktopIcons(ctx context.Context) error {
	dir := g.VariantDir()
	g.logger.Info("Generating desktop icons", "variant", g.config.Variants.Source)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	logo, padded, err := g.loadPaddedLogo()
	if err != nil {
		return err
	}

	if err := render.Table(padded, g.config.Tables.Desktop, dir, g.logger); err != nil {
		return err
	}
	if err := render.Table(logo, g.config.Tables.WindowsSquare, dir, g.logger); err != nil {
		return err
	}

	g.logger.Info("Generated desktop icons",
		"padded", len(g.config.Tables.Desktop),
		"unpadded", len(g.config.Tables.WindowsSquare),
		"padding", g.config.Padding.MacOS)
	return nil
}
