package imageproc

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProcess_ScalesDownToFit(t *testing.T) {
	processed, err := Process(bytes.NewReader(pngBytes(t, 1600, 900)))
	assert.NoError(t, err)

	img, format, err := image.Decode(bytes.NewReader(processed))
	assert.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 450, img.Bounds().Dy())
}

func TestProcess_NeverEnlarges(t *testing.T) {
	processed, err := Process(bytes.NewReader(pngBytes(t, 100, 50)))
	assert.NoError(t, err)

	img, format, err := image.Decode(bytes.NewReader(processed))
	assert.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())
}

func TestProcess_ConvertsPNGToJPEG(t *testing.T) {
	processed, err := Process(bytes.NewReader(pngBytes(t, 200, 200)))
	assert.NoError(t, err)

	_, format, err := image.Decode(bytes.NewReader(processed))
	assert.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

func TestProcess_RejectsNonImageData(t *testing.T) {
	_, err := Process(strings.NewReader("definitely not an image"))
	assert.Error(t, err)
}
