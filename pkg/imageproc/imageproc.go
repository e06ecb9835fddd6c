package imageproc

import (
	"bytes"
	"fmt"
	"io"

	"github.com/disintegration/imaging"

	// Uploads may arrive as WebP; registers the decoder.
	_ "golang.org/x/image/webp"
)

const (
	// MaxDimension bounds both sides of a processed image.
	MaxDimension = 800

	jpegQuality = 85
)

// Process normalizes an uploaded profile image: decode (JPEG, PNG or
// WebP), scale down to fit within MaxDimension on both sides keeping
// aspect ratio (never enlarging), and re-encode as JPEG. Returns the
// encoded bytes.
func Process(r io.Reader) ([]byte, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > MaxDimension || bounds.Dy() > MaxDimension {
		img = imaging.Fit(img, MaxDimension, MaxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality))
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
