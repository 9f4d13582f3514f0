package appicon

import (
	"fmt"
	"image"
	"os"

	ico "github.com/sergeymakinen/go-ico"
)

// icoSize is the largest image size a Windows icon entry can hold.
const icoSize = 256

// WriteICO downscales img to 256x256 and stores it as a Windows icon file.
func WriteICO(path string, img image.Image, filter Filter) (err error) {
	px := icoSize
	if b := img.Bounds(); b.Dx() < px || b.Dy() < px {
		return fmt.Errorf("%w: the icon needs %dpx, the reference is %dx%d", ErrUpscale, px, b.Dx(), b.Dy())
	}

	res, err := filter.Resample(img, px)
	if err != nil {
		return fmt.Errorf("could not resample the icon: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("unable to create the icon file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("could not close %s: %w", path, cerr)
		}
	}()

	if err := ico.Encode(f, res); err != nil {
		return fmt.Errorf("could not encode the icon: %w", err)
	}
	return nil
}
