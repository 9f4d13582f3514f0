// Package imop implements the Porter-Duff composition operations
// used for mixing a graphic element with its backdrop.
// The image/draw core package implements only the source-over-destination
// and the source operations, this package covers the rest of them.
//
// The icon composer uses it to cut the rounded corners out of the canvas
// (destination-in against a mask) and to lay the badge shadow under the canvas.
package imop

import (
	"fmt"
	"image"
	"math"

	"github.com/nativetranslator/appicon/utils"
)

// The supported composite operations.
const (
	Copy    = "copy"
	SrcOver = "src_over"
	DstOver = "dst_over"
	SrcIn   = "src_in"
	DstIn   = "dst_in"
	SrcOut  = "src_out"
	DstOut  = "dst_out"
	SrcAtop = "src_atop"
	DstAtop = "dst_atop"
	Xor     = "xor"
)

var ops = []string{Copy, SrcOver, DstOver, SrcIn, DstIn, SrcOut, DstOut, SrcAtop, DstAtop, Xor}

// Bitmap holds the result of a composite operation.
type Bitmap struct {
	Img *image.NRGBA
}

// NewBitmap allocates a transparent bitmap.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: image.NewNRGBA(rect),
	}
}

// Composite holds the currently active composite operation.
type Composite struct {
	current string
}

// InitOp initializes a new Composite using the source-over operation.
func InitOp() *Composite {
	return &Composite{current: SrcOver}
}

// Set activates one of the supported composite operations.
func (op *Composite) Set(cop string) error {
	if !utils.Contains(ops, cop) {
		return fmt.Errorf("unsupported composite operation: %q", cop)
	}
	op.current = cop
	return nil
}

// Get returns the currently active composite operation.
func (op *Composite) Get() string {
	return op.current
}

// Draw composites src over the backdrop and stores the result into bitmap.
// The three images are walked over the intersection of their bounds, relative to their origin.
// A nil bitmap composites in place, into the backdrop.
func (op *Composite) Draw(bitmap *Bitmap, src, backdrop *image.NRGBA) {
	if bitmap == nil {
		bitmap = &Bitmap{Img: backdrop}
	}
	sb, bb, db := src.Bounds(), backdrop.Bounds(), bitmap.Img.Bounds()
	dx := utils.Min(sb.Dx(), utils.Min(bb.Dx(), db.Dx()))
	dy := utils.Min(sb.Dy(), utils.Min(bb.Dy(), db.Dy()))

	for y := 0; y < dy; y++ {
		si := src.PixOffset(sb.Min.X, sb.Min.Y+y)
		bi := backdrop.PixOffset(bb.Min.X, bb.Min.Y+y)
		di := bitmap.Img.PixOffset(db.Min.X, db.Min.Y+y)

		for x := 0; x < dx; x++ {
			s := src.Pix[si : si+4 : si+4]
			b := backdrop.Pix[bi : bi+4 : bi+4]
			d := bitmap.Img.Pix[di : di+4 : di+4]

			as := float64(s[3]) / 255
			ab := float64(b[3]) / 255

			// Fs and Fb are the Porter-Duff fractions of the source and the backdrop.
			var fs, fb float64
			switch op.current {
			case Copy:
				fs, fb = 1, 0
			case SrcOver:
				fs, fb = 1, 1-as
			case DstOver:
				fs, fb = 1-ab, 1
			case SrcIn:
				fs, fb = ab, 0
			case DstIn:
				fs, fb = 0, as
			case SrcOut:
				fs, fb = 1-ab, 0
			case DstOut:
				fs, fb = 0, 1-as
			case SrcAtop:
				fs, fb = ab, 1-as
			case DstAtop:
				fs, fb = 1-ab, as
			case Xor:
				fs, fb = 1-ab, 1-as
			}

			ao := as*fs + ab*fb
			if ao == 0 {
				d[0], d[1], d[2], d[3] = 0, 0, 0, 0
			} else {
				for c := 0; c < 3; c++ {
					co := (as*fs*float64(s[c]) + ab*fb*float64(b[c])) / ao
					d[c] = uint8(utils.Clamp(math.Round(co), 0, 255))
				}
				d[3] = uint8(utils.Clamp(math.Round(ao*255), 0, 255))
			}

			si += 4
			bi += 4
			di += 4
		}
	}
}
