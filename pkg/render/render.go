package render

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"icongen/pkg/sizes"

	// Master images may also be WebP
	_ "golang.org/x/image/webp"
)

// Load opens a source image from disk and returns it as NRGBA
func Load(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source image %s: %w", path, err)
	}
	return imaging.Clone(img), nil
}

// Resize scales img to a size x size square with the Lanczos filter
func Resize(img image.Image, size int) *image.NRGBA {
	return imaging.Resize(img, size, size, imaging.Lanczos)
}

// WritePNG encodes img as PNG at path, replacing any existing file
func WritePNG(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Table renders one PNG per entry into dir and stops at the first failure
func Table(img image.Image, entries []sizes.Entry, dir string, logger *slog.Logger) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	for _, e := range entries {
		if e.Size <= 0 {
			return fmt.Errorf("invalid size %d for %s", e.Size, e.Name)
		}
		if err := WritePNG(Resize(img, e.Size), filepath.Join(dir, e.Name)); err != nil {
			return err
		}
		logger.Debug("Generated", "file", e.Name, "size", e.Size)
	}

	return nil
}
