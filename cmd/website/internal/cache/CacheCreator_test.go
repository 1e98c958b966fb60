package cache

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	return img
}

func TestFitWithin(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		wantWidth  int
		wantHeight int
	}{
		{name: "landscape", width: 800, height: 600, wantWidth: 400, wantHeight: 300},
		{name: "portrait", width: 600, height: 1200, wantWidth: 200, wantHeight: 400},
		{name: "square", width: 1000, height: 1000, wantWidth: 400, wantHeight: 400},
		{name: "already small", width: 120, height: 80, wantWidth: 120, wantHeight: 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fitWithin(solidImage(tt.width, tt.height), thumbnailMaxSize)

			assert.Equal(t, tt.wantWidth, got.Bounds().Dx())
			assert.Equal(t, tt.wantHeight, got.Bounds().Dy())
		})
	}
}

func TestResizeReader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solidImage(900, 300)))

	img, err := resizeReader(&buf, thumbnailMaxSize)
	require.NoError(t, err)

	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 133, img.Bounds().Dy())
}

func TestResizeReader_NotAnImage(t *testing.T) {
	_, err := resizeReader(bytes.NewBufferString("definitely not an image"), thumbnailMaxSize)
	assert.Error(t, err)
}
