package canvas

import (
	"errors"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ErrNoContent is returned when every pixel of an image counts as background
var ErrNoContent = errors.New("image has no non-background content")

// Background decides which pixels surround the actual artwork.
// A pixel is background when its alpha is at most MinAlpha, or when all of its
// color channels are strictly above White.
type Background struct {
	MinAlpha uint8
	White    uint8
}

var (
	// LogoBackground matches transparent or almost pure white pixels
	LogoBackground = Background{MinAlpha: 10, White: 250}

	// MenuBarBackground treats anything with a channel below 240 as content.
	// Alpha is ignored since the menu bar master is fully opaque.
	MenuBarBackground = Background{MinAlpha: 0, White: 239}
)

// IsBackground reports whether c is a background pixel
func (b Background) IsBackground(c color.NRGBA) bool {
	if b.MinAlpha > 0 && c.A <= b.MinAlpha {
		return true
	}
	return c.R > b.White && c.G > b.White && c.B > b.White
}

// Bounds returns the smallest rectangle, in img's coordinate space, that contains
// every non-background pixel. The rectangle's Max is exclusive.
func Bounds(img image.Image, bg Background) (image.Rectangle, error) {
	src := imaging.Clone(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()

	minX, minY, maxX, maxY := w, h, -1, -1
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		for x := 0; x < w; x++ {
			p := row[x*4 : x*4+4]
			if bg.IsBackground(color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}) {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			maxY = y
		}
	}

	if maxX < 0 {
		return image.Rectangle{}, ErrNoContent
	}

	origin := img.Bounds().Min
	return image.Rect(minX, minY, maxX+1, maxY+1).Add(origin), nil
}

// Expand grows r by margin pixels on every side, clamped to within
func Expand(r image.Rectangle, margin int, within image.Rectangle) image.Rectangle {
	return r.Inset(-margin).Intersect(within)
}
