package appicon

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// Filter names the resampling kernel used to downscale the reference icon.
type Filter string

// The supported resampling filters. Nearest-neighbour is deliberately absent.
const (
	Lanczos    Filter = "lanczos"
	Box        Filter = "box"
	CatmullRom Filter = "catmullrom"
)

// Filters lists the supported filters, the first one being the default.
var Filters = []Filter{Lanczos, Box, CatmullRom}

// ErrUnknownFilter is returned for a filter name which is not supported.
var ErrUnknownFilter = errors.New("unknown resampling filter")

// ParseFilter converts a filter name to a Filter. An empty name selects Lanczos.
func ParseFilter(name string) (Filter, error) {
	if name == "" {
		return Lanczos, nil
	}
	f := Filter(strings.ToLower(name))
	for _, known := range Filters {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFilter, name)
}

// Resample scales img to a px x px square.
func (f Filter) Resample(img image.Image, px int) (*image.NRGBA, error) {
	if px <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, px)
	}

	switch f {
	case "", Lanczos:
		return imaging.Resize(img, px, px, imaging.Lanczos), nil
	case Box:
		return imaging.Resize(img, px, px, imaging.Box), nil
	case CatmullRom:
		dst := image.NewNRGBA(image.Rect(0, 0, px, px))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
		return dst, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, string(f))
	}
}
