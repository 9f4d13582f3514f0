package appicon

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradient_Endpoints(t *testing.T) {
	assert := assert.New(t)

	top := color.NRGBA{R: 51, G: 153, B: 230, A: 255}
	bottom := color.NRGBA{R: 102, G: 204, B: 255, A: 255}

	assert.Equal(top, gradientAt(top, bottom, 0, 1024))

	last := gradientAt(top, bottom, 1023, 1024)
	assert.InDelta(bottom.R, last.R, 1)
	assert.InDelta(bottom.G, last.G, 1)
	assert.InDelta(bottom.B, last.B, 1)
	assert.Equal(uint8(255), last.A)
}

func TestGradient_Monotonic(t *testing.T) {
	// One channel rising, one falling and one constant.
	top := color.NRGBA{R: 10, G: 200, B: 90, A: 255}
	bottom := color.NRGBA{R: 240, G: 20, B: 90, A: 255}

	const h = 300
	img := image.NewRGBA(image.Rect(0, 0, 3, h))
	fillGradient(img, top, bottom)

	prev := img.RGBAAt(1, 0)
	assert.Equal(t, color.RGBA{R: 10, G: 200, B: 90, A: 255}, prev)
	for y := 1; y < h; y++ {
		c := img.RGBAAt(1, y)
		assert.GreaterOrEqual(t, c.R, prev.R, "row %d", y)
		assert.LessOrEqual(t, c.G, prev.G, "row %d", y)
		assert.Equal(t, uint8(90), c.B, "row %d", y)
		assert.Equal(t, c, img.RGBAAt(0, y), "row %d is not uniform", y)
		prev = c
	}
}
