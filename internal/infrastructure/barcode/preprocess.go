package barcode

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

const (
	// Phone photos are downscaled to this bound before the retry passes.
	maxScanSide = 1600

	contrastBoost = 40
	sharpenSigma  = 1.0

	// quiet zone added around the image, as a share of its longer side
	quietZoneRatio = 0.1
)

// variant is one pass over the uploaded image. pure passes decode with the
// PURE_BARCODE hint, which reads the module grid directly and skips finder
// pattern detection.
type variant struct {
	name  string
	pure  bool
	apply func(image.Image) image.Image
}

var variants = []variant{
	{name: "raw", apply: identity},
	// clean rendered codes whose finder patterns the detector misses
	{name: "pure", pure: true, apply: identity},
	{name: "quiet-zone", apply: func(img image.Image) image.Image {
		return withQuietZone(imaging.Grayscale(fit(img)))
	}},
	{name: "grayscale-contrast", apply: func(img image.Image) image.Image {
		return imaging.AdjustContrast(imaging.Grayscale(fit(img)), contrastBoost)
	}},
	{name: "sharpen", apply: func(img image.Image) image.Image {
		return imaging.Sharpen(imaging.Grayscale(fit(img)), sharpenSigma)
	}},
	// light-on-dark codes, e.g. screenshots taken in dark mode
	{name: "invert", apply: func(img image.Image) image.Image {
		return imaging.Invert(fit(img))
	}},
}

func identity(img image.Image) image.Image {
	return img
}

func fit(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxScanSide && b.Dy() <= maxScanSide {
		return img
	}

	return imaging.Fit(img, maxScanSide, maxScanSide, imaging.Lanczos)
}

// withQuietZone centres img on a white canvas with a margin on every side.
// Codes cropped tight to their modules need it to be located.
func withQuietZone(img image.Image) image.Image {
	b := img.Bounds()

	margin := int(float64(max(b.Dx(), b.Dy())) * quietZoneRatio)
	if margin < 1 {
		margin = 1
	}

	canvas := imaging.New(b.Dx()+2*margin, b.Dy()+2*margin, color.White)

	return imaging.PasteCenter(canvas, img)
}
