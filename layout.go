package appicon

// Layout holds the icon geometry. Every value is derived from the canvas size
// by a fixed ratio and truncated to whole pixels.
type Layout struct {
	Size         int
	CornerRadius int

	CenterX, CenterY int

	BadgeRadius int
	BadgeY      int
	LeftX       int
	RightX      int

	ArrowStartX    int
	ArrowEndX      int
	ArrowHalfWidth int
	ArrowHeadSize  int

	FontSize int

	GlobeX, GlobeY int
	GlobeRadius    int
	GlobeWidth     int
	ArcWidth       int

	ShadowOffset int
	ShadowBlur   float64
}

// ratio returns the truncated fraction r of size.
func ratio(size int, r float64) int {
	return int(float64(size) * r)
}

// NewLayout computes the icon geometry for a size x size canvas.
func NewLayout(size int) Layout {
	l := Layout{
		Size:         size,
		CornerRadius: ratio(size, 0.22),
		CenterX:      size / 2,
		CenterY:      size / 2,
		BadgeRadius:  ratio(size, 0.18),
		FontSize:     ratio(size, 0.25),
		GlobeRadius:  ratio(size, 0.12),
		GlobeWidth:   ratio(size, 0.008),
		ArcWidth:     ratio(size, 0.006),
		ShadowOffset: ratio(size, 0.01),
		ShadowBlur:   float64(size) * 0.02,
	}
	l.BadgeY = l.CenterY - ratio(size, 0.05)
	l.LeftX = l.CenterX - ratio(size, 0.25)
	l.RightX = l.CenterX + ratio(size, 0.25)

	gap := ratio(size, 0.02)
	l.ArrowStartX = l.LeftX + l.BadgeRadius + gap
	l.ArrowEndX = l.RightX - l.BadgeRadius - gap
	l.ArrowHalfWidth = ratio(size, 0.015)
	l.ArrowHeadSize = ratio(size, 0.04)

	l.GlobeX = l.CenterX
	l.GlobeY = l.CenterY + ratio(size, 0.3)

	return l
}
