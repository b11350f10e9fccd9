package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"icongen/pkg/fsutil"
)

// CopyToVariants replaces every copy variant with the source variant's tree
func (g *Generator) CopyToVariants(ctx context.Context) error {
	src := g.VariantDir()
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("source variant %s: %w", g.config.Variants.Source, err)
	}

	g.logger.Info("Copying icons to other variants", "count", len(g.config.Variants.Copies))

	for _, variant := range g.config.Variants.Copies {
		if err := ctx.Err(); err != nil {
			return err
		}

		dst := filepath.Join(g.config.Paths.IconsDir, variant)
		err := fsutil.ReplaceDir(dst, func(staging string) error {
			return fsutil.CopyTree(src, staging)
		})
		if err != nil {
			return fmt.Errorf("failed to copy to %s: %w", variant, err)
		}

		g.logger.Info("Copied variant", "variant", variant)
	}
	return nil
}
