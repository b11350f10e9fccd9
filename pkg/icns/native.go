package icns

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/jackmordaunt/icns/v3"
)

// NativeCompiler encodes .icns files in-process. It picks the largest PNG of the
// iconset and lets the encoder derive every resolution from it.
type NativeCompiler struct {
	logger *slog.Logger
}

// NewNativeCompiler creates an in-process compiler
func NewNativeCompiler(logger *slog.Logger) *NativeCompiler {
	return &NativeCompiler{
		logger: logger.With("component", "icns-native"),
	}
}

// Name returns the compiler name
func (c *NativeCompiler) Name() string {
	return KindNative
}

// Compile writes outputPath from the largest image found in iconsetDir
func (c *NativeCompiler) Compile(ctx context.Context, iconsetDir, outputPath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	src, name, err := largestPNG(iconsetDir)
	if err != nil {
		return err.Error(), err
	}
	c.logger.Debug("Encoding icns", "source", name, "size", src.Bounds().Dx())

	if err := writeICNS(outputPath, src); err != nil {
		return err.Error(), err
	}
	return "", nil
}

// writeICNS encodes img to outputPath. No output file survives a failure.
func writeICNS(outputPath string, img image.Image) error {
	var buf bytes.Buffer
	if err := icns.Encode(&buf, img); err != nil {
		os.Remove(outputPath)
		return fmt.Errorf("failed to encode icns: %w", err)
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		os.Remove(outputPath)
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	return nil
}

func largestPNG(dir string) (image.Image, string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read iconset %s: %w", dir, err)
	}

	var best image.Image
	var bestName string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".png") {
			continue
		}
		img, err := imaging.Open(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, "", fmt.Errorf("failed to read %s: %w", e.Name(), err)
		}
		if best == nil || img.Bounds().Dx() > best.Bounds().Dx() {
			best, bestName = img, e.Name()
		}
	}

	if best == nil {
		return nil, "", fmt.Errorf("iconset %s contains no PNG files", dir)
	}
	return best, bestName, nil
}
