package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"strings"

	"github.com/nativetranslator/appicon"
	"github.com/nativetranslator/appicon/utils"
)

const helpBanner = `
┌─┐┌─┐┌─┐┬┌─┐┌─┐┌┐┌
├─┤├─┘├─┘││  │ ││││
┴ ┴┴  ┴  ┴└─┘└─┘┘└┘

App icon set generator.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	size        = flag.Int("size", appicon.ReferenceSize, "Reference icon size in pixels")
	destination = flag.String("out", "AppIcon.appiconset", "Destination directory of the icon set")
	topColor    = flag.String("top", "#3399E6", "Gradient top color")
	bottomColor = flag.String("bottom", "#66CCFF", "Gradient bottom color")
	badgeColor  = flag.String("badge", "#FFFFFF", "Badge and arrow color")
	leftGlyph   = flag.String("left", appicon.DefaultLeftGlyph, "Glyph of the left badge")
	rightGlyph  = flag.String("right", appicon.DefaultRightGlyph, "Glyph of the right badge")
	fontPath    = flag.String("font", "", "Font file used for the glyphs (ttf, otf or ttc)")
	filter      = flag.String("filter", string(appicon.Lanczos), "Resampling filter: "+filterNames())
	rounded     = flag.Bool("rounded", false, "Cut transparent rounded corners")
	shadow      = flag.Bool("shadow", false, "Draw a soft shadow under the badges")
	master      = flag.String("master", "", "Also save the reference image (png, jpg or bmp)")
	icoPath     = flag.String("ico", "", "Also save a 256x256 Windows icon")
)

func main() {
	log.SetFlags(0)
	utils.NoColor = !utils.IsTerminal(os.Stderr)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *size <= 0 {
		flag.Usage()
		log.Fatal(utils.DecorateText("\nPlease provide a positive icon size!", utils.ErrorMessage))
	}

	filt, err := appicon.ParseFilter(*filter)
	if err != nil {
		log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}

	comp := appicon.NewComposer()
	comp.TopColor = mustColor("top", *topColor)
	comp.BottomColor = mustColor("bottom", *bottomColor)
	comp.BadgeColor = mustColor("badge", *badgeColor)
	comp.LeftGlyph = *leftGlyph
	comp.RightGlyph = *rightGlyph
	comp.FontPath = *fontPath
	comp.Rounded = *rounded
	comp.Shadow = *shadow

	exp := &appicon.Exporter{Filter: filt}
	op := &appicon.Ops{
		Size:   *size,
		Dst:    *destination,
		Master: *master,
		Ico:    *icoPath,
		Out:    os.Stderr,
	}

	if _, err := comp.Execute(exp, op); err != nil {
		log.Fatalf(
			utils.DecorateText("\nError generating the icon set: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err), utils.DefaultMessage),
		)
	}
}

// mustColor parses a hex color flag and exits on failure.
func mustColor(name, hex string) color.NRGBA {
	c, err := utils.HexToNRGBA(hex)
	if err != nil {
		log.Fatalf(utils.DecorateText("Invalid -%s flag: %v", utils.ErrorMessage), name, err)
	}
	return c
}

func filterNames() string {
	names := make([]string, 0, len(appicon.Filters))
	for _, f := range appicon.Filters {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
