package tray

import (
	"bytes"
	"fmt"
	"os"

	"github.com/disintegration/imaging"
	ico "github.com/sergeymakinen/go-ico"
)

// maxICOSize is the largest frame an .ico directory entry can describe
const maxICOSize = 256

// iconBytes reads the generated tray PNG in the form systray expects on goos.
// Windows only accepts ICO data, everywhere else takes PNG as is.
func iconBytes(path, goos string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tray icon: %w", err)
	}
	if goos != "windows" {
		return data, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode tray icon: %w", err)
	}
	if img.Bounds().Dx() > maxICOSize || img.Bounds().Dy() > maxICOSize {
		img = imaging.Fit(img, maxICOSize, maxICOSize, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := ico.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to wrap tray icon as ico: %w", err)
	}
	return buf.Bytes(), nil
}
