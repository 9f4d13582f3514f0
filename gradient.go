package appicon

import (
	"image"
	"image/color"
)

// gradientAt returns the color of row y in a vertical gradient of the given height.
// The channels are linearly interpolated on y/height and truncated, so row 0 is
// exactly the top color and the last row approaches the bottom one.
func gradientAt(top, bottom color.NRGBA, y, height int) color.NRGBA {
	t := float64(y) / float64(height)
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return color.NRGBA{
		R: lerp(top.R, bottom.R),
		G: lerp(top.G, bottom.G),
		B: lerp(top.B, bottom.B),
		A: 0xff,
	}
}

// fillGradient paints the whole image with an opaque vertical gradient, one scanline at a time.
func fillGradient(dst *image.RGBA, top, bottom color.NRGBA) {
	b := dst.Bounds()
	h := b.Dy()
	row := make([]uint8, b.Dx()*4)

	for y := 0; y < h; y++ {
		c := gradientAt(top, bottom, y, h)
		for i := 0; i < len(row); i += 4 {
			row[i+0] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = c.A
		}
		off := dst.PixOffset(b.Min.X, b.Min.Y+y)
		copy(dst.Pix[off:off+len(row)], row)
	}
}
