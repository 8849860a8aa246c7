package usecase

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/jpeg"
	"image/png"
	"testing"
)

// grayPNG encodes a blank grayscale image. Blank rows compress to almost
// nothing, so the upload stays small whatever the dimensions.
func grayPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, image.NewGray(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// pngHeader returns the signature and IHDR chunk of an 8-bit grayscale PNG.
// It carries no pixel data.
func pngHeader(w, h uint32) []byte {
	data := make([]byte, 13)
	binary.BigEndian.PutUint32(data[0:], w)
	binary.BigEndian.PutUint32(data[4:], h)
	data[8] = 8

	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(data)))
	chunk := append([]byte("IHDR"), data...)
	buf.Write(chunk)
	_ = binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk))
	return buf.Bytes()
}

func TestNormalizeProof(t *testing.T) {
	t.Run("downscales large images to the bounding box", func(t *testing.T) {
		out, err := normalizeProof(pngProof(t, 400, 100), 200, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		img, err := jpeg.Decode(bytes.NewReader(out))
		if err != nil {
			t.Fatalf("output is not a jpeg: %v", err)
		}
		if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 50 {
			t.Fatalf("expected 200x50, got %dx%d", b.Dx(), b.Dy())
		}
	})

	t.Run("keeps small images at their size", func(t *testing.T) {
		out, err := normalizeProof(pngProof(t, 30, 20), 0, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		img, err := jpeg.Decode(bytes.NewReader(out))
		if err != nil {
			t.Fatalf("output is not a jpeg: %v", err)
		}
		if b := img.Bounds(); b.Dx() != 30 || b.Dy() != 20 {
			t.Fatalf("expected 30x20, got %dx%d", b.Dx(), b.Dy())
		}
	})

	t.Run("rejects non images", func(t *testing.T) {
		_, err := normalizeProof([]byte("%PDF-1.4"), 100, 0)
		if !errors.Is(err, ErrInvalidProofImage) {
			t.Fatalf("expected ErrInvalidProofImage, got %v", err)
		}
	})

	t.Run("rejects compressed images above the pixel limit", func(t *testing.T) {
		raw := grayPNG(t, 3000, 3000)
		if len(raw) >= defaultProofMaxBytes {
			t.Fatalf("expected a small upload, got %d bytes", len(raw))
		}
		_, err := normalizeProof(raw, 0, 4_000_000)
		if !errors.Is(err, ErrProofTooManyPixels) || !errors.Is(err, ErrPayloadTooLarge) {
			t.Fatalf("expected ErrProofTooManyPixels, got %v", err)
		}
	})

	t.Run("checks the header before decoding", func(t *testing.T) {
		// 12000x12000 is above the default limit; the truncated body would
		// fail as an invalid image if decoding were attempted.
		_, err := normalizeProof(pngHeader(12000, 12000), 0, 0)
		if !errors.Is(err, ErrProofTooManyPixels) {
			t.Fatalf("expected ErrProofTooManyPixels, got %v", err)
		}
	})

	t.Run("accepts images at the pixel limit", func(t *testing.T) {
		if _, err := normalizeProof(grayPNG(t, 100, 100), 0, 10_000); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
