package generator

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"

	ico "github.com/sergeymakinen/go-ico"

	"icongen/pkg/fsutil"
	"icongen/pkg/render"
)

// GenerateICNS builds icon.iconset and hands it to the compiler. On compiler
// failure the iconset is left in place for inspection and the run continues.
func (g *Generator) GenerateICNS(ctx context.Context) error {
	g.logger.Info("Generating macOS icns", "compiler", g.compiler.Name())

	_, padded, err := g.loadPaddedLogo()
	if err != nil {
		return err
	}

	dir := g.VariantDir()
	iconset := filepath.Join(dir, "icon.iconset")
	if err := fsutil.ResetDir(iconset); err != nil {
		return err
	}
	if err := render.Table(padded, g.config.Tables.MacIconset, iconset, g.logger); err != nil {
		return err
	}

	out := filepath.Join(dir, "icon.icns")
	diag, err := g.compiler.Compile(ctx, iconset, out)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		g.logger.Error("Failed to generate icns, keeping iconset for inspection",
			"error", err,
			"stderr", diag,
			"iconset", iconset)
		return nil
	}

	if err := os.RemoveAll(iconset); err != nil {
		return fmt.Errorf("failed to remove %s: %w", iconset, err)
	}

	g.logger.Info("Generated icns", "path", out)
	return nil
}

// GenerateICO writes icon.ico with every configured size, largest frame first
func (g *Generator) GenerateICO(ctx context.Context) error {
	g.logger.Info("Generating Windows ico")

	logo, err := g.loadLogo()
	if err != nil {
		return err
	}

	frameSizes := append([]int(nil), g.config.Tables.ICO...)
	sort.Sort(sort.Reverse(sort.IntSlice(frameSizes)))

	frames := make([]image.Image, 0, len(frameSizes))
	for _, size := range frameSizes {
		frames = append(frames, render.Resize(logo, size))
	}

	var buf bytes.Buffer
	if err := ico.EncodeAll(&buf, frames); err != nil {
		return fmt.Errorf("failed to encode ico: %w", err)
	}

	if err := os.MkdirAll(g.VariantDir(), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", g.VariantDir(), err)
	}
	path := filepath.Join(g.VariantDir(), "icon.ico")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	g.logger.Info("Generated ico", "path", path, "sizes", frameSizes)
	return nil
}

// GenerateAndroid rebuilds the android/ tree with one mipmap directory per density
func (g *Generator) GenerateAndroid(ctx context.Context) error {
	g.logger.Info("Generating Android icons")

	logo, err := g.loadLogo()
	if err != nil {
		return err
	}

	return fsutil.ReplaceDir(filepath.Join(g.VariantDir(), "android"), func(staging string) error {
		for _, d := range g.config.Tables.Android {
			densityDir := filepath.Join(staging, d.Name)
			if err := os.MkdirAll(densityDir, 0755); err != nil {
				return fmt.Errorf("failed to create %s: %w", densityDir, err)
			}

			// The round launcher is currently the same artwork as the square one
			launcher := render.Resize(logo, d.Launcher)
			for _, name := range []string{"ic_launcher.png", "ic_launcher_round.png"} {
				if err := render.WritePNG(launcher, filepath.Join(densityDir, name)); err != nil {
					return err
				}
			}

			foreground := render.Resize(logo, d.Foreground)
			if err := render.WritePNG(foreground, filepath.Join(densityDir, "ic_launcher_foreground.png")); err != nil {
				return err
			}

			g.logger.Info("Generated density",
				"density", d.Name,
				"launcher", d.Launcher,
				"foreground", d.Foreground)
		}
		return nil
	})
}

// GenerateIOS rebuilds the ios/ tree from the iOS size table
func (g *Generator) GenerateIOS(ctx context.Context) error {
	g.logger.Info("Generating iOS icons")

	logo, err := g.loadLogo()
	if err != nil {
		return err
	}

	err = fsutil.ReplaceDir(filepath.Join(g.VariantDir(), "ios"), func(staging string) error {
		return render.Table(logo, g.config.Tables.IOS, staging, g.logger)
	})
	if err != nil {
		return err
	}

	g.logger.Info("Generated iOS icons", "count", len(g.config.Tables.IOS))
	return nil
}
