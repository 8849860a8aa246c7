package usecase

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

const (
	proofContentType  = "image/jpeg"
	proofJPEGQuality  = 85
	defaultProofMaxPx = 1600
	// 40 megapixels decode to about 160 MiB of RGBA.
	defaultProofMaxPixels = 40_000_000
)

// normalizeProof decodes an uploaded proof, applies its EXIF orientation,
// shrinks it to fit maxPx x maxPx and re-encodes it as JPEG. Images whose
// header declares more than maxPixels are rejected before decoding.
func normalizeProof(raw []byte, maxPx, maxPixels int) ([]byte, error) {
	if maxPx <= 0 {
		maxPx = defaultProofMaxPx
	}
	if maxPixels <= 0 {
		maxPixels = defaultProofMaxPixels
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProofImage, err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > int64(maxPixels) {
		return nil, fmt.Errorf("%dx%d: %w", cfg.Width, cfg.Height, ErrProofTooManyPixels)
	}

	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProofImage, err)
	}

	b := img.Bounds()
	if b.Dx() > maxPx || b.Dy() > maxPx {
		img = imaging.Fit(img, maxPx, maxPx, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(proofJPEGQuality)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
