package appicon

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/nativetranslator/appicon/imop"
)

// ReferenceSize is the resolution the icon is drawn at before being downscaled.
const ReferenceSize = 1024

// ErrInvalidSize is returned when the requested canvas size is not positive.
var ErrInvalidSize = errors.New("icon size must be a positive integer")

// Default icon palette.
var (
	DefaultTopColor    = color.NRGBA{R: 51, G: 153, B: 230, A: 255}
	DefaultBottomColor = color.NRGBA{R: 102, G: 204, B: 255, A: 255}
	DefaultBadgeColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Default badge glyphs, a latin letter translated into a CJK ideograph.
const (
	DefaultLeftGlyph  = "A"
	DefaultRightGlyph = "文"
)

var (
	globeColor = color.NRGBA{R: 255, G: 255, B: 255, A: 128}
	arcColor   = color.NRGBA{R: 255, G: 255, B: 255, A: 100}
	shadowTint = color.NRGBA{A: 51}
)

// Composer options
type Composer struct {
	TopColor    color.NRGBA
	BottomColor color.NRGBA
	BadgeColor  color.NRGBA
	LeftGlyph   string
	RightGlyph  string
	FontPath    string
	Rounded     bool
	Shadow      bool

	fontName string
}

// NewComposer returns a Composer using the default palette and glyphs.
func NewComposer() *Composer {
	return &Composer{
		TopColor:    DefaultTopColor,
		BottomColor: DefaultBottomColor,
		BadgeColor:  DefaultBadgeColor,
		LeftGlyph:   DefaultLeftGlyph,
		RightGlyph:  DefaultRightGlyph,
	}
}

// FontName returns the name of the font used by the last Compose call.
func (c *Composer) FontName() string {
	return c.fontName
}

// Compose draws the icon on a size x size canvas.
// The layers are painted in a fixed order, later ones covering the former:
// gradient background, badge shadow, badges, arrow, glyphs and the globe.
// The rounded corners, when requested, are cut out at the very end.
func (c *Composer) Compose(size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	l := NewLayout(size)
	dc := gg.NewContext(size, size)

	fillGradient(dc.Image().(*image.RGBA), c.TopColor, c.BottomColor)

	if c.Shadow {
		c.drawShadow(dc, l)
	}
	c.drawBadges(dc, l)
	c.drawArrow(dc, l)
	c.drawGlyphs(dc, l)
	c.drawGlobe(dc, l)

	img := imgToNRGBA(dc.Image())
	if c.Rounded {
		cutCorners(img, l.CornerRadius)
	}
	return img, nil
}

// drawBadges draws the two filled circles holding the glyphs.
func (c *Composer) drawBadges(dc *gg.Context, l Layout) {
	r := float64(l.BadgeRadius)

	dc.SetColor(c.BadgeColor)
	dc.DrawCircle(float64(l.LeftX), float64(l.BadgeY), r)
	dc.DrawCircle(float64(l.RightX), float64(l.BadgeY), r)
	dc.Fill()
}

// drawArrow draws the shaft between the badges and the right pointing head.
func (c *Composer) drawArrow(dc *gg.Context, l Layout) {
	y := float64(l.BadgeY)
	x0, x1 := float64(l.ArrowStartX), float64(l.ArrowEndX)
	hw, hs := float64(l.ArrowHalfWidth), float64(l.ArrowHeadSize)

	dc.SetColor(c.BadgeColor)
	if x1 > x0 {
		dc.DrawRectangle(x0, y-hw, x1-x0, 2*hw)
		dc.Fill()
	}

	dc.MoveTo(x1, y-hs)
	dc.LineTo(x1+hs, y)
	dc.LineTo(x1, y+hs)
	dc.ClosePath()
	dc.Fill()
}

// drawGlyphs renders one glyph in the middle of each badge.
func (c *Composer) drawGlyphs(dc *gg.Context, l Layout) {
	points := math.Max(float64(l.FontSize), 1)
	face, name := loadFace(c.FontPath, points, c.LeftGlyph+c.RightGlyph)
	c.fontName = name

	dc.SetFontFace(face)
	dc.SetColor(c.TopColor)
	drawCentered(dc, face, c.LeftGlyph, float64(l.LeftX), float64(l.BadgeY))
	drawCentered(dc, face, c.RightGlyph, float64(l.RightX), float64(l.BadgeY))
}

// drawCentered places the ink bounding box of s at the (x, y) point, on both axes.
func drawCentered(dc *gg.Context, face font.Face, s string, x, y float64) {
	if s == "" {
		return
	}
	b, _ := font.BoundString(face, s)
	midX := float64(b.Min.X+b.Max.X) / 128
	midY := float64(b.Min.Y+b.Max.Y) / 128

	dc.DrawString(s, x-midX, y-midY)
}

// drawGlobe draws the ornamental globe outline and its lower meridian arc.
// Strokes narrower than a pixel are skipped.
func (c *Composer) drawGlobe(dc *gg.Context, l Layout) {
	x, y, r := float64(l.GlobeX), float64(l.GlobeY), float64(l.GlobeRadius)
	if r <= 0 {
		return
	}

	if l.GlobeWidth > 0 {
		dc.SetColor(globeColor)
		dc.SetLineWidth(float64(l.GlobeWidth))
		dc.DrawCircle(x, y, r)
		dc.Stroke()
	}

	if l.ArcWidth > 0 {
		dc.SetColor(arcColor)
		dc.SetLineWidth(float64(l.ArcWidth))
		dc.NewSubPath()
		dc.DrawArc(x, y, r, 0, math.Pi)
		dc.Stroke()
	}
}

// drawShadow lays a soft, slightly lowered silhouette of the badges over the background.
func (c *Composer) drawShadow(dc *gg.Context, l Layout) {
	if l.BadgeRadius <= 0 {
		return
	}
	layer := gg.NewContext(l.Size, l.Size)
	layer.SetColor(shadowTint)

	y := float64(l.BadgeY + l.ShadowOffset)
	layer.DrawCircle(float64(l.LeftX), y, float64(l.BadgeRadius))
	layer.DrawCircle(float64(l.RightX), y, float64(l.BadgeRadius))
	layer.Fill()

	shadow := imaging.Blur(layer.Image(), l.ShadowBlur)

	canvas := dc.Image().(*image.RGBA)
	backdrop := imgToNRGBA(canvas)
	imop.InitOp().Draw(nil, shadow, backdrop)
	copyNRGBA(canvas, backdrop)
}
