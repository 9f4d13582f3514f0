package appicon

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/bmp"

	"github.com/nativetranslator/appicon/imop"
)

// ErrUnsupportedFormat is returned when an image should be written with an unknown file extension.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// encodeImg encodes an image to a destination of type io.Writer, the encoder being selected by the file extension.
func encodeImg(w io.Writer, ext string, img image.Image) error {
	switch strings.ToLower(ext) {
	case ".png":
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		return enc.Encode(w, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, flatten(img), &jpeg.Options{Quality: 100})
	case ".bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// WriteMaster stores the reference image as is. The encoder is picked by the
// file extension: PNG, JPEG or BMP.
func WriteMaster(path string, img image.Image) error {
	return writeImage(path, img)
}

// writeImage creates (or truncates) the file at path and encodes img into it.
func writeImage(path string, img image.Image) (err error) {
	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".png", ".jpg", ".jpeg", ".bmp":
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("could not close %s: %w", path, cerr)
		}
	}()

	if err := encodeImg(f, ext, img); err != nil {
		// remove the half written image file
		if rerr := os.Remove(path); rerr != nil {
			log.Printf("could not remove %s: %v", path, rerr)
		}
		return fmt.Errorf("could not encode %s: %w", filepath.Base(path), err)
	}
	return nil
}

// flatten lays the image over an opaque white background, for encoders without alpha support.
func flatten(img image.Image) image.Image {
	dst := image.NewRGBA(img.Bounds())
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Over)
	return dst
}

// cutCorners makes the area outside a rounded rectangle of the given corner radius transparent.
func cutCorners(img *image.NRGBA, radius int) {
	b := img.Bounds()
	mask := gg.NewContext(b.Dx(), b.Dy())
	mask.SetColor(color.White)
	mask.DrawRoundedRectangle(0, 0, float64(b.Dx()), float64(b.Dy()), float64(radius))
	mask.Fill()

	op := imop.InitOp()
	// The operation is always supported.
	_ = op.Set(imop.DstIn)
	op.Draw(nil, imgToNRGBA(mask.Image()), img)
}

// copyNRGBA copies the pixels of src over dst.
func copyNRGBA(dst draw.Image, src *image.NRGBA) {
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
}

// imgToNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
// The returned image never shares its pixels with the source.
func imgToNRGBA(img image.Image) *image.NRGBA {
	srcBounds := img.Bounds()
	srcMinX := srcBounds.Min.X
	srcMinY := srcBounds.Min.Y

	dstBounds := srcBounds.Sub(srcBounds.Min)
	dstW := dstBounds.Dx()
	dstH := dstBounds.Dy()
	dst := image.NewNRGBA(dstBounds)

	switch src := img.(type) {
	case *image.NRGBA:
		rowSize := dstW * 4
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			si := src.PixOffset(srcMinX, srcMinY+dstY)
			copy(dst.Pix[di:di+rowSize], src.Pix[si:si+rowSize])
		}
	case *image.RGBA:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			si := src.PixOffset(srcMinX, srcMinY+dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				a := src.Pix[si+3]
				switch a {
				case 0xff:
					copy(dst.Pix[di:di+4], src.Pix[si:si+4])
				case 0:
					dst.Pix[di+0], dst.Pix[di+1], dst.Pix[di+2], dst.Pix[di+3] = 0, 0, 0, 0
				default:
					// undo the alpha premultiplication
					dst.Pix[di+0] = uint8(uint32(src.Pix[si+0]) * 0xff / uint32(a))
					dst.Pix[di+1] = uint8(uint32(src.Pix[si+1]) * 0xff / uint32(a))
					dst.Pix[di+2] = uint8(uint32(src.Pix[si+2]) * 0xff / uint32(a))
					dst.Pix[di+3] = a
				}
				di += 4
				si += 4
			}
		}
	default:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				c := color.NRGBAModel.Convert(img.At(srcMinX+dstX, srcMinY+dstY)).(color.NRGBA)
				dst.Pix[di+0] = c.R
				dst.Pix[di+1] = c.G
				dst.Pix[di+2] = c.B
				dst.Pix[di+3] = c.A
				di += 4
			}
		}
	}

	return dst
}
