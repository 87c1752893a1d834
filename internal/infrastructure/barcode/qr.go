package barcode

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/andreyxaxa/GreenPass-Analyzer/pkg/types/errs"
	"github.com/disintegration/imaging"
	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"

	// webp uploads
	_ "golang.org/x/image/webp"
)

// MaxPixels bounds width*height of an upload. The header is checked before
// any pixel data is decoded.
const MaxPixels = 40_000_000

type QRScanner struct {
	hints     map[gozxing.DecodeHintType]interface{}
	pureHints map[gozxing.DecodeHintType]interface{}
}

func New() *QRScanner {
	return &QRScanner{
		hints: map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_TRY_HARDER: true,
		},
		pureHints: map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_TRY_HARDER:   true,
			gozxing.DecodeHintType_PURE_BARCODE: true,
		},
	}
}

// Scan returns the text of the first QR code found in the image. When the
// raw image yields nothing, preprocessed variants are tried in order.
func (s *QRScanner) Scan(ctx context.Context, data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("QRScanner - Scan: empty image: %w", errs.ErrUnsupportedImage)
	}

	img, err := decodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("QRScanner - Scan - decodeImage: %w", err)
	}

	var lastErr error

	for _, v := range variants {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("QRScanner - Scan: %w", err)
		}

		hints := s.hints
		if v.pure {
			hints = s.pureHints
		}

		text, decErr := s.decode(v.apply(img), hints)
		if decErr == nil {
			return text, nil
		}
		lastErr = fmt.Errorf("%s: %w", v.name, decErr)
	}

	return nil, fmt.Errorf("QRScanner - Scan: %w", lastErr)
}

func (s *QRScanner) decode(img image.Image, hints map[gozxing.DecodeHintType]interface{}) ([]byte, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("gozxing.NewBinaryBitmapFromImage: %w: %v", errs.ErrUnsupportedImage, err)
	}

	// gozxing readers keep internal state, so one per call.
	result, err := qrcode.NewQRCodeReader().Decode(bmp, hints)
	if err != nil {
		return nil, fmt.Errorf("reader.Decode: %w: %v", errs.ErrNoBarcodeFound, err)
	}

	text := result.GetText()
	if text == "" {
		return nil, fmt.Errorf("empty barcode: %w", errs.ErrNoBarcodeFound)
	}

	return []byte(text), nil
}

func decodeImage(data []byte) (image.Image, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("image.DecodeConfig: %w: %v", errs.ErrUnsupportedImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("image has no pixels: %w", errs.ErrUnsupportedImage)
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, fmt.Errorf("image is %dx%d, more than %d pixels: %w",
			cfg.Width, cfg.Height, MaxPixels, errs.ErrUnsupportedImage)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("imaging.Decode: %w: %v", errs.ErrUnsupportedImage, err)
	}

	return img, nil
}
