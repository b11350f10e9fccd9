package tray

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	ico "github.com/sergeymakinen/go-ico"
)

func writeTrayPNG(t *testing.T, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tray_default.png")
	if err := imaging.Save(imaging.New(size, size, color.NRGBA{0, 0, 0, 255}), path); err != nil {
		t.Fatalf("Failed to write tray icon: %v", err)
	}
	return path
}

func TestIconBytes_PNGPassthrough(t *testing.T) {
	path := writeTrayPNG(t, 160)

	data, err := iconBytes(path, "darwin")
	if err != nil {
		t.Fatalf("iconBytes failed: %v", err)
	}
	want, _ := os.ReadFile(path)
	if !bytes.Equal(data, want) {
		t.Error("Expected PNG bytes unchanged on darwin")
	}
}

func TestIconBytes_WindowsICO(t *testing.T) {
	path := writeTrayPNG(t, 160)

	data, err := iconBytes(path, "windows")
	if err != nil {
		t.Fatalf("iconBytes failed: %v", err)
	}
	images, err := ico.DecodeAll(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Expected ico data: %v", err)
	}
	if len(images) != 1 || images[0].Bounds().Dx() != 160 {
		t.Errorf("Expected a single 160px frame, got %d frames", len(images))
	}
}

func TestIconBytes_WindowsLargeIconIsFitted(t *testing.T) {
	path := writeTrayPNG(t, 512)

	data, err := iconBytes(path, "windows")
	if err != nil {
		t.Fatalf("iconBytes failed: %v", err)
	}
	cfg, err := ico.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Expected ico data: %v", err)
	}
	if cfg.Width != maxICOSize || cfg.Height != maxICOSize {
		t.Errorf("Expected frame fitted to %d, got %dx%d", maxICOSize, cfg.Width, cfg.Height)
	}
}

func TestIconBytes_Missing(t *testing.T) {
	if _, err := iconBytes(filepath.Join(t.TempDir(), "missing.png"), "linux"); err == nil {
		t.Error("Expected error for missing icon")
	}
}
