package appicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayout_ReferenceGeometry(t *testing.T) {
	assert := assert.New(t)

	l := NewLayout(1024)
	assert.Equal(1024, l.Size)
	assert.Equal(225, l.CornerRadius)
	assert.Equal(512, l.CenterX)
	assert.Equal(512, l.CenterY)

	assert.Equal(184, l.BadgeRadius)
	assert.Equal(461, l.BadgeY)
	assert.Equal(256, l.LeftX)
	assert.Equal(768, l.RightX)

	assert.Equal(460, l.ArrowStartX)
	assert.Equal(564, l.ArrowEndX)
	assert.Equal(15, l.ArrowHalfWidth)
	assert.Equal(40, l.ArrowHeadSize)

	assert.Equal(256, l.FontSize)

	assert.Equal(512, l.GlobeX)
	assert.Equal(819, l.GlobeY)
	assert.Equal(122, l.GlobeRadius)
	assert.Equal(8, l.GlobeWidth)
	assert.Equal(6, l.ArcWidth)
}

func TestLayout_BadgesAreSymmetric(t *testing.T) {
	for _, size := range []int{16, 100, 333, 1024, 2048} {
		l := NewLayout(size)
		assert.Equal(t, l.CenterX-l.LeftX, l.RightX-l.CenterX, "size %d", size)
		assert.Less(t, l.BadgeY, l.CenterY+1, "size %d", size)
		assert.Greater(t, l.GlobeY, l.CenterY-1, "size %d", size)
	}
}

func TestLayout_TinyCanvas(t *testing.T) {
	l := NewLayout(1)
	assert.Equal(t, 0, l.BadgeRadius)
	assert.Equal(t, 0, l.GlobeWidth)
	assert.Equal(t, 0, l.FontSize)
}
