package canvas

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

var transparent = color.NRGBA{}

// CropToContent crops img to its non-background content and centers the result
// on a transparent square canvas
func CropToContent(img image.Image, bg Background) (*image.NRGBA, error) {
	rect, err := Bounds(img, bg)
	if err != nil {
		return nil, err
	}
	return Square(imaging.Crop(img, rect)), nil
}

// Square centers img on a transparent canvas whose side is the larger of its
// width and height
func Square(img image.Image) *image.NRGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	side := max(w, h)

	dst := imaging.New(side, side, transparent)
	return imaging.Paste(dst, img, image.Pt((side-w)/2, (side-h)/2))
}

// Pad shrinks the content of a square canvas to side*(1-2p) and re-centers it on
// a transparent canvas of the original size. p must be in [0, 0.5).
func Pad(img image.Image, p float64) (*image.NRGBA, error) {
	if p < 0 || p >= 0.5 {
		return nil, fmt.Errorf("padding fraction %.3f out of range [0, 0.5)", p)
	}

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	contentSize := int(float64(w) * (1 - 2*p))
	if contentSize < 1 {
		return nil, fmt.Errorf("padding %.3f leaves no room for content on a %dx%d canvas", p, w, h)
	}

	content := imaging.Resize(img, contentSize, contentSize, imaging.Lanczos)
	offset := (w - contentSize) / 2

	dst := imaging.New(w, h, transparent)
	return imaging.Paste(dst, content, image.Pt(offset, offset)), nil
}

// KnockOutWhite returns a copy of img where every pixel whose channels are all
// above threshold becomes fully transparent
func KnockOutWhite(img image.Image, threshold uint8) *image.NRGBA {
	dst := imaging.Clone(img)
	for i := 0; i+3 < len(dst.Pix); i += 4 {
		if dst.Pix[i] > threshold && dst.Pix[i+1] > threshold && dst.Pix[i+2] > threshold {
			dst.Pix[i+3] = 0
		}
	}
	return dst
}
